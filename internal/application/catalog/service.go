// Package catalog 提供作品目录管理能力
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/domain/repository"
	"artisan-market-api/internal/infrastructure/persistence/redis"
	apperrors "artisan-market-api/pkg/errors"
	"artisan-market-api/pkg/logger"
)

// listedCacheTTL 在售目录缓存时长
const listedCacheTTL = time.Minute

// Service 目录服务
type Service struct {
	artworkRepo repository.ArtworkRepository
	cache       *redis.Cache
}

// NewService 创建目录服务
func NewService(artworkRepo repository.ArtworkRepository, cache *redis.Cache) *Service {
	return &Service{
		artworkRepo: artworkRepo,
		cache:       cache,
	}
}

// CreateArtworkInput 创建作品入参
type CreateArtworkInput struct {
	Title       string
	Description string
	Medium      string
	Styles      []string
	PriceCents  int64
	Currency    string
	ImageURL    string
}

// CreateArtwork 创建作品
func (s *Service) CreateArtwork(ctx context.Context, artistID string, input CreateArtworkInput) (*entity.Artwork, error) {
	if input.Title == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "artwork title is required")
	}

	artwork := entity.NewArtwork(artistID, input.Title)
	artwork.Description = input.Description
	artwork.Medium = input.Medium
	if len(input.Styles) > 0 {
		artwork.Styles = pq.StringArray(input.Styles)
	}
	artwork.PriceCents = input.PriceCents
	if input.Currency != "" {
		artwork.Currency = input.Currency
	}
	artwork.ImageURL = input.ImageURL

	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create artwork")
	}

	logger.Info(ctx, "作品创建成功", "artwork_id", artwork.ID, "artist_id", artistID)
	return artwork, nil
}

// GetArtwork 获取作品详情
func (s *Service) GetArtwork(ctx context.Context, id string) (*entity.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get artwork")
	}
	if artwork == nil {
		return nil, apperrors.ErrArtworkNotFound
	}
	return artwork, nil
}

// UpdateStatus 变更作品状态（上架、售出、归档）
func (s *Service) UpdateStatus(ctx context.Context, artistID, id string, status entity.ArtworkStatus) (*entity.Artwork, error) {
	artwork, err := s.GetArtwork(ctx, id)
	if err != nil {
		return nil, err
	}
	if artwork.ArtistID != artistID {
		return nil, apperrors.ErrForbidden
	}

	artwork.Status = status
	if err := s.artworkRepo.Update(ctx, artwork); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update artwork")
	}

	s.invalidateListed(ctx)
	return artwork, nil
}

// DeleteArtwork 删除作品
func (s *Service) DeleteArtwork(ctx context.Context, artistID, id string) error {
	artwork, err := s.GetArtwork(ctx, id)
	if err != nil {
		return err
	}
	if artwork.ArtistID != artistID {
		return apperrors.ErrForbidden
	}

	if err := s.artworkRepo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete artwork")
	}

	s.invalidateListed(ctx)
	return nil
}

// ListByArtist 获取艺术家作品列表
func (s *Service) ListByArtist(ctx context.Context, artistID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Artwork], error) {
	result, err := s.artworkRepo.ListByArtist(ctx, artistID, pagination)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list artworks")
	}
	return result, nil
}

// ListListed 获取在售作品列表（经缓存）
func (s *Service) ListListed(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.Artwork], error) {
	key := fmt.Sprintf("catalog:listed:%d:%d", pagination.Page, pagination.PageSize)

	bytes, err := s.cache.GetOrLoadSafe(ctx, key, listedCacheTTL, func() (interface{}, error) {
		return s.artworkRepo.ListListed(ctx, pagination)
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list artworks")
	}

	var result repository.PagedResult[*entity.Artwork]
	if err := json.Unmarshal(bytes, &result); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to decode cached artworks")
	}
	return &result, nil
}

func (s *Service) invalidateListed(ctx context.Context) {
	if err := s.cache.InvalidatePattern(ctx, "catalog:listed:*"); err != nil {
		logger.Warn(ctx, "清理目录缓存失败", "error", err.Error())
	}
}
