// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"artisan-market-api/internal/domain/entity"
)

// ArtistProfileRepository 艺术家画像仓储接口
type ArtistProfileRepository interface {
	// Create 创建画像
	Create(ctx context.Context, profile *entity.ArtistProfile) error

	// GetByID 根据 ID 获取画像
	GetByID(ctx context.Context, id string) (*entity.ArtistProfile, error)

	// GetByUserID 根据用户 ID 获取画像
	GetByUserID(ctx context.Context, userID string) (*entity.ArtistProfile, error)

	// Update 更新画像
	Update(ctx context.Context, profile *entity.ArtistProfile) error

	// Delete 删除画像
	Delete(ctx context.Context, id string) error

	// ListPublished 获取已发布画像列表
	ListPublished(ctx context.Context, pagination Pagination) (*PagedResult[*entity.ArtistProfile], error)
}
