// Package redis 提供 Redis 缓存实现
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"artisan-market-api/internal/domain/entity"
)

// DraftStore 生成草稿暂存
// 生成结果先落入带 TTL 的暂存区，用户确认保存后才写入画像表
type DraftStore struct {
	client *Client
	ttl    time.Duration
}

// NewDraftStore 创建草稿暂存
func NewDraftStore(client *Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(userID string) string {
	return fmt.Sprintf("profile:draft:%s", userID)
}

// Save 暂存用户的生成草稿
func (s *DraftStore) Save(ctx context.Context, userID string, draft *entity.ProfileDraft) error {
	ctx, span := cacheTracer.Start(ctx, "draftstore.Save",
		trace.WithAttributes(attribute.String("draft.user_id", userID)))
	defer span.End()

	bytes, err := json.Marshal(draft)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.client.rdb.Set(ctx, draftKey(userID), bytes, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Get 读取用户的生成草稿，不存在时返回 nil
func (s *DraftStore) Get(ctx context.Context, userID string) (*entity.ProfileDraft, error) {
	ctx, span := cacheTracer.Start(ctx, "draftstore.Get",
		trace.WithAttributes(attribute.String("draft.user_id", userID)))
	defer span.End()

	bytes, err := s.client.rdb.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if IsNil(err) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft entity.ProfileDraft
	if err := json.Unmarshal(bytes, &draft); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// Delete 删除用户的生成草稿（保存或放弃后）
func (s *DraftStore) Delete(ctx context.Context, userID string) error {
	ctx, span := cacheTracer.Start(ctx, "draftstore.Delete",
		trace.WithAttributes(attribute.String("draft.user_id", userID)))
	defer span.End()

	return s.client.rdb.Del(ctx, draftKey(userID)).Err()
}
