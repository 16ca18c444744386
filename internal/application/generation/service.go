// Package generation 提供画像自动生成的应用层编排
//
// 为每个已认证用户维护一个 profilegen.Orchestrator，并把生成结果接回
// 系统：草稿暂存、事件发布、身份解析。
package generation

import (
	"context"
	"sync"

	"artisan-market-api/internal/application/profilegen"
	"artisan-market-api/internal/config"
	"artisan-market-api/internal/domain/entity"
	"artisan-market-api/internal/domain/repository"
	"artisan-market-api/internal/infrastructure/messaging"
	"artisan-market-api/internal/infrastructure/persistence/redis"
	"artisan-market-api/pkg/logger"
)

// Service 画像生成应用服务
type Service struct {
	client   profilegen.RemoteClient
	userRepo repository.UserRepository
	drafts   *redis.DraftStore
	producer *messaging.Producer
	opts     profilegen.Options

	mu            sync.Mutex
	orchestrators map[string]*profilegen.Orchestrator
}

// NewService 创建生成应用服务
func NewService(
	client profilegen.RemoteClient,
	userRepo repository.UserRepository,
	drafts *redis.DraftStore,
	producer *messaging.Producer,
	cfg *config.GenerationConfig,
) *Service {
	return &Service{
		client:        client,
		userRepo:      userRepo,
		drafts:        drafts,
		producer:      producer,
		opts:          profilegen.Options{StepDelay: cfg.StepDelay},
		orchestrators: make(map[string]*profilegen.Orchestrator),
	}
}

// orchestratorFor 取或建用户对应的编排器
func (s *Service) orchestratorFor(userID string) *profilegen.Orchestrator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := s.orchestrators[userID]; ok {
		return o
	}

	callbacks := profilegen.Callbacks{
		OnProfileGenerated: func(ctx context.Context, draft *entity.ProfileDraft) {
			if err := s.drafts.Save(ctx, userID, draft); err != nil {
				logger.Error(ctx, "草稿暂存失败", err, "user_id", userID)
			}
		},
		OnReadyToSave: func(ctx context.Context) {
			logger.Info(ctx, "草稿可保存", "user_id", userID)
		},
	}

	o := profilegen.NewOrchestrator(
		s.client,
		&userIdentity{userRepo: s.userRepo, userID: userID},
		&eventNotifier{producer: s.producer, userID: userID},
		userID,
		callbacks,
		s.opts,
	)
	s.orchestrators[userID] = o
	return o
}

// StartFromURLs 链接列表生成入口
// 生成在后台执行，请求上下文结束不中断管线
func (s *Service) StartFromURLs(ctx context.Context, userID string, urls []string) {
	s.orchestratorFor(userID).GenerateFromURLs(detach(ctx), urls)
}

// StartFromConnectedAccount 已连接账号生成入口
func (s *Service) StartFromConnectedAccount(ctx context.Context, userID string) {
	s.orchestratorFor(userID).GenerateFromConnectedAccount(detach(ctx))
}

// StartFromManualData 手动资料生成入口
func (s *Service) StartFromManualData(ctx context.Context, userID string, data profilegen.ManualAccountData) {
	s.orchestratorFor(userID).GenerateFromManualData(detach(ctx), data)
}

// Status 获取用户的合并生成进度
func (s *Service) Status(userID string) profilegen.Progress {
	return s.orchestratorFor(userID).Progress()
}

// Draft 读取用户当前暂存的生成草稿，不存在时返回 nil
func (s *Service) Draft(ctx context.Context, userID string) (*entity.ProfileDraft, error) {
	return s.drafts.Get(ctx, userID)
}

// Watch 订阅用户的合并进度流
func (s *Service) Watch(userID string) (<-chan profilegen.Progress, func()) {
	return s.orchestratorFor(userID).Watch()
}

// detach 保留上下文值但脱离请求的取消链
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// userIdentity 以用户记录中的已连接账号字段解析身份
type userIdentity struct {
	userRepo repository.UserRepository
	userID   string
}

// ConnectedAccountID 返回已连接的社交账号标识，未连接时为空串
func (p *userIdentity) ConnectedAccountID(ctx context.Context) (string, error) {
	user, err := p.userRepo.GetByID(ctx, p.userID)
	if err != nil {
		return "", err
	}
	if user == nil || !user.HasConnectedAccount() {
		return "", nil
	}
	return user.InstagramUserID, nil
}

// eventNotifier 将生成结果通知落到日志与事件流
type eventNotifier struct {
	producer *messaging.Producer
	userID   string
}

// Success 发布生成成功事件
func (n *eventNotifier) Success(ctx context.Context, message string) {
	logger.Info(ctx, "画像生成成功", "user_id", n.userID, "notice", message)
	if n.producer == nil {
		return
	}
	_, err := n.producer.PublishProfileGenerated(ctx, &messaging.ProfileGeneratedEvent{
		UserID:   n.userID,
		Strategy: strategyFrom(ctx),
		Message:  message,
	})
	if err != nil {
		logger.Warn(ctx, "生成事件发布失败", "user_id", n.userID, "error", err.Error())
	}
}

// Error 发布生成失败事件
func (n *eventNotifier) Error(ctx context.Context, message string) {
	logger.Warn(ctx, "画像生成失败", "user_id", n.userID, "notice", message)
	if n.producer == nil {
		return
	}
	_, err := n.producer.PublishProfileGenerationFailed(ctx, &messaging.ProfileGenerationFailedEvent{
		UserID:   n.userID,
		Strategy: strategyFrom(ctx),
		Reason:   message,
	})
	if err != nil {
		logger.Warn(ctx, "失败事件发布失败", "user_id", n.userID, "error", err.Error())
	}
}

// strategyFrom 从上下文取当前策略名
func strategyFrom(ctx context.Context) string {
	if v, ok := ctx.Value(logger.StrategyKey).(string); ok {
		return v
	}
	return ""
}
