// Package messaging 提供消息流实现
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"artisan-market-api/pkg/metrics"
)

var tracer = otel.Tracer("messaging")

// Producer 消息生产者
type Producer struct {
	client *redis.Client
	maxLen int64
}

// NewProducer 创建消息生产者
func NewProducer(client *redis.Client, maxLen int64) *Producer {
	if maxLen <= 0 {
		maxLen = 100000
	}
	return &Producer{
		client: client,
		maxLen: maxLen,
	}
}

// Publish 发布消息到指定流
func (p *Producer) Publish(ctx context.Context, stream Stream, msg *Message) (string, error) {
	ctx, span := tracer.Start(ctx, "producer.Publish",
		trace.WithAttributes(
			attribute.String("stream", string(stream)),
			attribute.String("message.id", msg.ID),
			attribute.String("message.type", msg.Type),
		))
	defer span.End()

	data, err := json.Marshal(msg)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	result, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: string(stream),
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if err != nil {
		span.RecordError(err)
		metrics.EventsPublished.WithLabelValues(string(stream), "error").Inc()
		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(string(stream), "success").Inc()
	span.SetAttributes(attribute.String("stream.message_id", result))
	return result, nil
}

// PublishProfileGenerated 发布画像生成成功事件
func (p *Producer) PublishProfileGenerated(ctx context.Context, event *ProfileGeneratedEvent) (string, error) {
	msg, err := NewMessage(uuid.NewString(), EventProfileGenerated, event.UserID, event)
	if err != nil {
		return "", err
	}

	msg.SetMetadata("strategy", event.Strategy)
	return p.Publish(ctx, StreamProfileEvents, msg)
}

// PublishProfileGenerationFailed 发布画像生成失败事件
func (p *Producer) PublishProfileGenerationFailed(ctx context.Context, event *ProfileGenerationFailedEvent) (string, error) {
	msg, err := NewMessage(uuid.NewString(), EventProfileGenerationFailed, event.UserID, event)
	if err != nil {
		return "", err
	}

	msg.SetMetadata("strategy", event.Strategy)
	return p.Publish(ctx, StreamProfileEvents, msg)
}

// PublishProfileSaved 发布画像保存事件
func (p *Producer) PublishProfileSaved(ctx context.Context, userID, profileID string) (string, error) {
	msg, err := NewMessage(uuid.NewString(), EventProfileSaved, userID, map[string]string{
		"profile_id": profileID,
	})
	if err != nil {
		return "", err
	}

	return p.Publish(ctx, StreamProfileEvents, msg)
}

// ProfileGeneratedEvent 画像生成成功事件
type ProfileGeneratedEvent struct {
	UserID       string `json:"user_id"`
	Strategy     string `json:"strategy"`
	FieldsFilled int    `json:"fields_filled"`
	Message      string `json:"message"`
}

// ProfileGenerationFailedEvent 画像生成失败事件
type ProfileGenerationFailedEvent struct {
	UserID   string `json:"user_id"`
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
}
