package profilegen

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/pkg/logger"
	"artisan-market-api/pkg/metrics"
)

const strategyManual = "manual_account"

// usernamePattern 手动录入用户名的合法字符集
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._]+$`)

// ManualStrategy 基于手动录入账号资料的画像生成策略
type ManualStrategy struct {
	session   *Session
	client    RemoteClient
	notifier  Notifier
	callbacks Callbacks
	contextID string
	stepDelay time.Duration
}

// NewManualStrategy 创建手动资料生成策略
func NewManualStrategy(client RemoteClient, notifier Notifier, callbacks Callbacks, contextID string, stepDelay time.Duration) *ManualStrategy {
	return &ManualStrategy{
		session:   NewSession(),
		client:    client,
		notifier:  notifier,
		callbacks: callbacks,
		contextID: contextID,
		stepDelay: stepDelay,
	}
}

// Session 返回策略的会话状态机
func (s *ManualStrategy) Session() *Session {
	return s.session
}

// Generate 校验用户名并启动生成管线
// 用户名含字母、数字、点、下划线以外字符时拒绝，会话保持 Idle
func (s *ManualStrategy) Generate(ctx context.Context, data ManualAccountData) {
	ctx = logger.WithContext(ctx, logger.StrategyKey, strategyManual)

	if !usernamePattern.MatchString(data.Username) {
		logger.Warn(ctx, "用户名校验未通过，拒绝生成")
		metrics.ProfileGenerationTotal.WithLabelValues(strategyManual, "rejected").Inc()
		s.notifier.Error(ctx, "That username doesn't look right. Usernames may only contain letters, numbers, dots and underscores.")
		return
	}

	gen := s.session.begin(2)
	go s.run(ctx, gen, data)
}

func (s *ManualStrategy) run(ctx context.Context, gen uint64, data ManualAccountData) {
	start := time.Now()
	status := StatusFailed
	metrics.ActiveGenerations.Inc()
	defer func() {
		metrics.ActiveGenerations.Dec()
		metrics.ProfileGenerationDuration.WithLabelValues(strategyManual).Observe(time.Since(start).Seconds())
		metrics.ProfileGenerationTotal.WithLabelValues(strategyManual, string(status)).Inc()
		s.session.finish(gen, status)
	}()

	if !s.session.advance(gen, "Processing your account details...") {
		return
	}
	pause(ctx, s.stepDelay)
	if !s.session.advance(gen, "Enhancing your profile...") {
		return
	}

	result, err := s.client.GenerateFromManual(ctx, s.contextID, data)
	if err != nil {
		if !s.session.current(gen) {
			return
		}
		logger.Error(ctx, "手动画像生成失败", err)
		s.notifier.Error(ctx, err.Error())
		return
	}

	if !s.session.complete(gen, "Your profile draft is ready.") {
		return
	}

	// 增强结果优先，空字段回填用户录入的原始资料
	draft := FormatDraftWithFallback(result.ProfileData, fallbackDraft(data))
	if s.callbacks.OnProfileGenerated != nil {
		s.callbacks.OnProfileGenerated(ctx, draft)
	}

	filled := draft.FilledFieldCount()
	metrics.ProfileFieldsFilled.WithLabelValues(strategyManual).Observe(float64(filled))
	logger.Info(ctx, "手动画像生成成功", "fields_filled", filled)
	s.notifier.Success(ctx, fmt.Sprintf("Profile generated! We filled in %d fields from your account details. Review and save when ready.", filled))

	if s.callbacks.OnReadyToSave != nil {
		s.callbacks.OnReadyToSave(ctx)
	}
	status = StatusSucceeded
}

// fallbackDraft 将手动录入资料映射为逐字段回填用的草稿
func fallbackDraft(data ManualAccountData) *entity.ProfileDraft {
	draft := &entity.ProfileDraft{
		Name:            strings.TrimSpace(data.DisplayName),
		Bio:             strings.TrimSpace(data.Bio),
		ProfileImageURL: strings.TrimSpace(data.ImageDataURI),
		Techniques:      []string{},
		Styles:          []string{},
		SocialLinks:     []string{},
	}
	if data.Username != "" {
		draft.SocialLinks = []string{"https://instagram.com/" + data.Username}
	}
	return draft
}
