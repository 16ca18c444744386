// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"artisan-market-api/internal/domain/entity"
)

// ArtworkRepository 作品仓储接口
type ArtworkRepository interface {
	// Create 创建作品
	Create(ctx context.Context, artwork *entity.Artwork) error

	// GetByID 根据 ID 获取作品
	GetByID(ctx context.Context, id string) (*entity.Artwork, error)

	// Update 更新作品
	Update(ctx context.Context, artwork *entity.Artwork) error

	// Delete 删除作品
	Delete(ctx context.Context, id string) error

	// ListByArtist 获取艺术家作品列表
	ListByArtist(ctx context.Context, artistID string, pagination Pagination) (*PagedResult[*entity.Artwork], error)

	// ListListed 获取在售作品列表
	ListListed(ctx context.Context, pagination Pagination) (*PagedResult[*entity.Artwork], error)
}
