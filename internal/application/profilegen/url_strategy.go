package profilegen

import (
	"context"
	"fmt"
	"time"

	"artisan-market-api/pkg/logger"
	"artisan-market-api/pkg/metrics"
)

const strategyURL = "url_list"

// URLStrategy 基于公开网页链接的画像生成策略
type URLStrategy struct {
	session   *Session
	client    RemoteClient
	notifier  Notifier
	callbacks Callbacks
	contextID string
	stepDelay time.Duration
}

// NewURLStrategy 创建链接列表生成策略
func NewURLStrategy(client RemoteClient, notifier Notifier, callbacks Callbacks, contextID string, stepDelay time.Duration) *URLStrategy {
	return &URLStrategy{
		session:   NewSession(),
		client:    client,
		notifier:  notifier,
		callbacks: callbacks,
		contextID: contextID,
		stepDelay: stepDelay,
	}
}

// Session 返回策略的会话状态机
func (s *URLStrategy) Session() *Session {
	return s.session
}

// Generate 校验链接并启动生成管线
// 过滤后无合法链接时立即通知失败，会话保持 Idle，不触碰远程端点
func (s *URLStrategy) Generate(ctx context.Context, rawURLs []string) {
	ctx = logger.WithContext(ctx, logger.StrategyKey, strategyURL)

	valid := filterValidURLs(rawURLs)
	if len(valid) == 0 {
		logger.Warn(ctx, "链接校验未通过，拒绝生成", "submitted", len(rawURLs))
		metrics.ProfileGenerationTotal.WithLabelValues(strategyURL, "rejected").Inc()
		s.notifier.Error(ctx, "Please add at least one valid link, like your website or online portfolio.")
		return
	}

	// 每个链接一步 + 收尾生成一步 + 完成一步
	gen := s.session.begin(len(valid) + 2)
	go s.run(ctx, gen, valid)
}

func (s *URLStrategy) run(ctx context.Context, gen uint64, urls []string) {
	start := time.Now()
	status := StatusFailed
	metrics.ActiveGenerations.Inc()
	defer func() {
		metrics.ActiveGenerations.Dec()
		metrics.ProfileGenerationDuration.WithLabelValues(strategyURL).Observe(time.Since(start).Seconds())
		metrics.ProfileGenerationTotal.WithLabelValues(strategyURL, string(status)).Inc()
		s.session.finish(gen, status)
	}()

	for _, u := range urls {
		if !s.session.advance(gen, fmt.Sprintf("Reading your %s profile...", platformLabel(u))) {
			return
		}
		pause(ctx, s.stepDelay)
	}
	if !s.session.advance(gen, "Crafting your artist profile...") {
		return
	}

	result, err := s.client.GenerateFromURLs(ctx, s.contextID, urls)
	if err != nil {
		if !s.session.current(gen) {
			return
		}
		logger.Error(ctx, "链接画像生成失败", err, "url_count", len(urls))
		s.notifier.Error(ctx, ClassifyError(err, urls))
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
	metrics.ProfileFieldsFilled.WithLabelValues(strategyURL).Observe(float64(filled))
	logger.Info(ctx, "链接画像生成成功",
		"fields_filled", filled,
		"processed_urls", result.ProcessedURLs,
		"total_urls", result.TotalURLs,
	)
	s.notifier.Success(ctx, fmt.Sprintf("Profile generated! We filled in %d fields from your links. Review and save when ready.", filled))

	if s.callbacks.OnReadyToSave != nil {
		s.callbacks.OnReadyToSave(ctx)
	}
	status = StatusSucceeded
}
