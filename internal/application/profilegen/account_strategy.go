package profilegen

import (
	"context"
	"fmt"
	"time"

	"artisan-market-api/pkg/logger"
	"artisan-market-api/pkg/metrics"
)

const strategyAccount = "connected_account"

// noConnectionMessage 未连接账号时的统一提示
const noConnectionMessage = "No connected Instagram account found. Connect your account in settings, then try again."

// accountSteps 固定三步流程的进度消息
var accountSteps = []string{
	"Connecting to your Instagram account...",
	"Analyzing your recent posts...",
	"Generating your artist profile...",
}

// AccountStrategy 基于已连接社交账号的画像生成策略
type AccountStrategy struct {
	session   *Session
	client    RemoteClient
	identity  IdentityProvider
	notifier  Notifier
	callbacks Callbacks
	stepDelay time.Duration
}

// NewAccountStrategy 创建已连接账号生成策略
func NewAccountStrategy(client RemoteClient, identity IdentityProvider, notifier Notifier, callbacks Callbacks, stepDelay time.Duration) *AccountStrategy {
	return &AccountStrategy{
		session:   NewSession(),
		client:    client,
		identity:  identity,
		notifier:  notifier,
		callbacks: callbacks,
		stepDelay: stepDelay,
	}
}

// Session 返回策略的会话状态机
func (s *AccountStrategy) Session() *Session {
	return s.session
}

// Generate 解析已连接账号身份并启动生成管线
// 无可用身份时快速失败，会话保持 Idle
func (s *AccountStrategy) Generate(ctx context.Context) {
	ctx = logger.WithContext(ctx, logger.StrategyKey, strategyAccount)

	accountID, err := s.identity.ConnectedAccountID(ctx)
	if err != nil || accountID == "" {
		logger.Warn(ctx, "无已连接账号，拒绝生成")
		metrics.ProfileGenerationTotal.WithLabelValues(strategyAccount, "rejected").Inc()
		s.notifier.Error(ctx, noConnectionMessage)
		return
	}

	gen := s.session.begin(len(accountSteps))
	go s.run(ctx, gen, accountID)
}

func (s *AccountStrategy) run(ctx context.Context, gen uint64, accountID string) {
	start := time.Now()
	status := StatusFailed
	metrics.ActiveGenerations.Inc()
	defer func() {
		metrics.ActiveGenerations.Dec()
		metrics.ProfileGenerationDuration.WithLabelValues(strategyAccount).Observe(time.Since(start).Seconds())
		metrics.ProfileGenerationTotal.WithLabelValues(strategyAccount, string(status)).Inc()
		s.session.finish(gen, status)
	}()

	for i, step := range accountSteps {
		if !s.session.advance(gen, step) {
			return
		}
		if i < len(accountSteps)-1 {
			pause(ctx, s.stepDelay)
		}
	}

	result, err := s.client.GenerateFromAccount(ctx, accountID)
	if err != nil {
		if !s.session.current(gen) {
			return
		}
		logger.Error(ctx, "账号画像生成失败", err)
		// 远程侧的"无连接"失败改写为可操作提示，其余原样透传
		if IsNoConnectionError(err) {
			s.notifier.Error(ctx, noConnectionMessage)
		} else {
			s.notifier.Error(ctx, err.Error())
		}
		return
	}

	if !s.session.complete(gen, "Your profile draft is ready.") {
		return
	}

	draft := FormatDraft(result.ProfileData)
	if s.callbacks.OnProfileGenerated != nil {
		s.callbacks.OnProfileGenerated(ctx, draft)
	}

	filled := draft.FilledFieldCount()
	metrics.ProfileFieldsFilled.WithLabelValues(strategyAccount).Observe(float64(filled))
	logger.Info(ctx, "账号画像生成成功", "fields_filled", filled, "posts_analyzed", result.PostsAnalyzed)

	if result.PostsAnalyzed > 0 {
		s.notifier.Success(ctx, fmt.Sprintf("Profile generated from %d of your recent posts. Review and save when ready.", result.PostsAnalyzed))
	} else {
		s.notifier.Success(ctx, "Profile generated from your Instagram account. Review and save when ready.")
	}

	if s.callbacks.OnReadyToSave != nil {
		s.callbacks.OnReadyToSave(ctx)
	}
	status = StatusSucceeded
}
