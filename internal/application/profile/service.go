// Package profile 提供艺术家画像管理能力
package profile

import (
	"context"

	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/domain/repository"
	"artisan-market-api/internal/infrastructure/messaging"
	"artisan-market-api/internal/infrastructure/persistence/redis"
	apperrors "artisan-market-api/pkg/errors"
	"artisan-market-api/pkg/logger"
)

// Service 画像服务
type Service struct {
	profileRepo repository.ArtistProfileRepository
	drafts      *redis.DraftStore
	cache       *redis.Cache
	producer    *messaging.Producer
	tx          repository.Transactor
}

// NewService 创建画像服务
func NewService(
	profileRepo repository.ArtistProfileRepository,
	drafts *redis.DraftStore,
	cache *redis.Cache,
	producer *messaging.Producer,
	tx repository.Transactor,
) *Service {
	return &Service{
		profileRepo: profileRepo,
		drafts:      drafts,
		cache:       cache,
		producer:    producer,
		tx:          tx,
	}
}

// Get 获取用户的画像
func (s *Service) Get(ctx context.Context, userID string) (*entity.ArtistProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get profile")
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return profile, nil
}

// GetDraft 读取用户暂存的生成草稿，不存在时返回 nil
func (s *Service) GetDraft(ctx context.Context, userID string) (*entity.ProfileDraft, error) {
	draft, err := s.drafts.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to get draft")
	}
	return draft, nil
}

// SaveDraft 将暂存草稿落库为正式画像
// 无既有画像时创建，有则按草稿非空字段合并
func (s *Service) SaveDraft(ctx context.Context, userID string) (*entity.ArtistProfile, error) {
	draft, err := s.drafts.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCacheError, "failed to get draft")
	}
	if draft == nil || draft.IsEmpty() {
		return nil, apperrors.New(apperrors.CodeNotFound, "no generated draft to save")
	}

	var saved *entity.ArtistProfile
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		profile, err := s.profileRepo.GetByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = entity.NewArtistProfile(userID)
			profile.ApplyDraft(draft)
			if err := s.profileRepo.Create(txCtx, profile); err != nil {
				return err
			}
		} else {
			profile.ApplyDraft(draft)
			if err := s.profileRepo.Update(txCtx, profile); err != nil {
				return err
			}
		}
		saved = profile
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save profile")
	}

	// 落库后清理暂存与缓存，失败不回滚画像
	if err := s.drafts.Delete(ctx, userID); err != nil {
		logger.Warn(ctx, "清理草稿暂存失败", "user_id", userID, "error", err.Error())
	}
	if err := s.cache.InvalidateArtist(ctx, userID); err != nil {
		logger.Warn(ctx, "清理画像缓存失败", "user_id", userID, "error", err.Error())
	}
	if _, err := s.producer.PublishProfileSaved(ctx, userID, saved.ID); err != nil {
		logger.Warn(ctx, "画像保存事件发布失败", "user_id", userID, "error", err.Error())
	}

	logger.Info(ctx, "画像保存成功", "user_id", userID, "profile_id", saved.ID)
	return saved, nil
}

// DiscardDraft 放弃暂存草稿
func (s *Service) DiscardDraft(ctx context.Context, userID string) error {
	if err := s.drafts.Delete(ctx, userID); err != nil {
		return apperrors.Wrap(err, apperrors.CodeCacheError, "failed to discard draft")
	}
	return nil
}

// Update 按草稿语义更新画像（手工编辑路径，空字段不覆盖）
func (s *Service) Update(ctx context.Context, userID string, draft *entity.ProfileDraft) (*entity.ArtistProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get profile")
	}
	if profile == nil {
		profile = entity.NewArtistProfile(userID)
		profile.ApplyDraft(draft)
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create profile")
		}
	} else {
		profile.ApplyDraft(draft)
		if err := s.profileRepo.Update(ctx, profile); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update profile")
		}
	}

	if err := s.cache.InvalidateArtist(ctx, userID); err != nil {
		logger.Warn(ctx, "清理画像缓存失败", "user_id", userID, "error", err.Error())
	}
	return profile, nil
}

// SetPublished 发布或下架画像
func (s *Service) SetPublished(ctx context.Context, userID string, published bool) (*entity.ArtistProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to get profile")
	}
	if profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}

	profile.Published = published
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to update profile")
	}
	return profile, nil
}

// ListPublished 获取已发布画像列表
func (s *Service) ListPublished(ctx context.Context, pagination repository.Pagination) (*repository.PagedResult[*entity.ArtistProfile], error) {
	result, err := s.profileRepo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list profiles")
	}
	return result, nil
}
