// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/domain/repository"
)

// ArtistProfileRepository 艺术家画像仓储实现
type ArtistProfileRepository struct {
	client *Client
}

// NewArtistProfileRepository 创建艺术家画像仓储
func NewArtistProfileRepository(client *Client) *ArtistProfileRepository {
	return &ArtistProfileRepository{client: client}
}

// Create 创建画像
func (r *ArtistProfileRepository) Create(ctx context.Context, profile *entity.ArtistProfile) error {
	ctx, span := tracer.Start(ctx, "postgres.ArtistProfileRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(profile).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create artist profile: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取画像
func (r *ArtistProfileRepository) GetByID(ctx context.Context, id string) (*entity.ArtistProfile, error) {
	ctx, span := tracer.Start(ctx, "postgres.ArtistProfileRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var profile entity.ArtistProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get artist profile: %w", err)
	}
	return &profile, nil
}

// GetByUserID 根据用户 ID 获取画像
func (r *ArtistProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.ArtistProfile, error) {
	ctx, span := tracer.Start(ctx, "postgres.ArtistProfileRepository.GetByUserID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var profile entity.ArtistProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get artist profile by user: %w", err)
	}
	return &profile, nil
}

// Update 更新画像
func (r *ArtistProfileRepository) Update(ctx context.Context, profile *entity.ArtistProfile) error {
	ctx, span := tracer.Start(ctx, "postgres.ArtistProfileRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(profile).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update artist profile: %w", err)
	}
	return nil
}

// Delete 删除画像
func (r *ArtistProfileRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.ArtistProfileRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.ArtistProfile{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete artist profile: %w", err)
	}
	return nil
}

// ListPublished 获取已发布画像列表
func (r *ArtistProfileRepository) ListPublished(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.ArtistProfile], error) {
	ctx, span := tracer.Start(ctx, "postgres.ArtistProfileRepository.ListPublished")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.ArtistProfile{}).Where("published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count artist profiles: %w", err)
	}

	var profiles []*entity.ArtistProfile
	if err := query.Order("updated_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&profiles).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list artist profiles: %w", err)
	}

	return repository.NewPagedResult(profiles, total, pagination), nil
}
