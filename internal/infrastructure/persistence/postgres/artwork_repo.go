// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/domain/repository"
)

// ArtworkRepository 作品仓储实现
type ArtworkRepository struct {
	client *Client
}

// NewArtworkRepository 创建作品仓储
func NewArtworkRepository(client *Client) *ArtworkRepository {
	return &ArtworkRepository{client: client}
}

// Create 创建作品
func (r *ArtworkRepository) Create(ctx context.Context, artwork *entity.Artwork) error {
	ctx, span := tracer.Start(ctx, "postgres.ArtworkRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(artwork).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create artwork: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取作品
func (r *ArtworkRepository) GetByID(ctx context.Context, id string) (*entity.Artwork, error) {
	ctx, span := tracer.Start(ctx, "postgres.ArtworkRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var artwork entity.Artwork
	if err := db.First(&artwork, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	return &artwork, nil
}

// Update 更新作品
func (r *ArtworkRepository) Update(ctx context.Context, artwork *entity.Artwork) error {
	ctx, span := tracer.Start(ctx, "postgres.ArtworkRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(artwork).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update artwork: %w", err)
	}
	return nil
}

// Delete 删除作品
func (r *ArtworkRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.ArtworkRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Artwork{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete artwork: %w", err)
	}
	return nil
}

// ListByArtist 获取艺术家作品列表
func (r *ArtworkRepository) ListByArtist(ctx context.Context, artistID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Artwork], error) {
	ctx, span := tracer.Start(ctx, "postgres.ArtworkRepository.ListByArtist")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Artwork{}).Where("artist_id = ?", artistID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count artworks: %w", err)
	}

	var artworks []*entity.Artwork
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&artworks).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	return repository.NewPagedResult(artworks, total, pagination), nil
}

// ListListed 获取在售作品列表
func (r *ArtworkRepository) ListListed(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.Artwork], error) {
	ctx, span := tracer.Start(ctx, "postgres.ArtworkRepository.ListListed")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Artwork{}).Where("status = ?", entity.ArtworkStatusListed)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count listed artworks: %w", err)
	}

	var artworks []*entity.Artwork
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&artworks).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list listed artworks: %w", err)
	}

	return repository.NewPagedResult(artworks, total, pagination), nil
}
