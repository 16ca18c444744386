package profilegen

import (
	"context"
	"sync"
	"time"

	"artisan-market-api/internal/domain/entity"
)

// Notifier 生成结果通知出口
// 每次生成调用恰好产生一条成功或失败通知
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// IdentityProvider 解析当前用户已连接的社交账号身份
// 未连接时返回空字符串
type IdentityProvider interface {
	ConnectedAccountID(ctx context.Context) (string, error)
}

// Callbacks 生成成功后的宿主回调
type Callbacks struct {
	// OnProfileGenerated 将规范化草稿交还宿主（暂存、预填表单）
	OnProfileGenerated func(ctx context.Context, draft *entity.ProfileDraft)
	// OnReadyToSave 通知宿主草稿可提交保存
	OnReadyToSave func(ctx context.Context)
}

// Options 编排器可调参数
type Options struct {
	// StepDelay 链接逐条读取与步骤切换间的停顿，零值表示不停顿
	StepDelay time.Duration
}

// Progress 三个策略合并后的对外进度视图
type Progress struct {
	IsGenerating bool   `json:"is_generating"`
	Message      string `json:"message"`
	CurrentStep  int    `json:"current_step"`
	TotalSteps   int    `json:"total_steps"`
}

// Orchestrator 画像自动生成编排器
//
// 持有三个互相独立的生成策略并向外提供统一入口和合并后的进度视图。
// 每个已认证用户对应一个编排器实例。
type Orchestrator struct {
	urls    *URLStrategy
	account *AccountStrategy
	manual  *ManualStrategy
}

// NewOrchestrator 创建编排器
// contextID 标识宿主上下文（用户），随请求透传给远程生成端点
func NewOrchestrator(client RemoteClient, identity IdentityProvider, notifier Notifier, contextID string, callbacks Callbacks, opts Options) *Orchestrator {
	return &Orchestrator{
		urls:    NewURLStrategy(client, notifier, callbacks, contextID, opts.StepDelay),
		account: NewAccountStrategy(client, identity, notifier, callbacks, opts.StepDelay),
		manual:  NewManualStrategy(client, notifier, callbacks, contextID, opts.StepDelay),
	}
}

// GenerateFromURLs 链接列表入口，直通对应策略
func (o *Orchestrator) GenerateFromURLs(ctx context.Context, urls []string) {
	o.urls.Generate(ctx, urls)
}

// GenerateFromConnectedAccount 已连接账号入口，直通对应策略
func (o *Orchestrator) GenerateFromConnectedAccount(ctx context.Context) {
	o.account.Generate(ctx)
}

// GenerateFromManualData 手动资料入口，直通对应策略
func (o *Orchestrator) GenerateFromManualData(ctx context.Context, data ManualAccountData) {
	o.manual.Generate(ctx, data)
}

// IsGenerating 任一策略执行中即为真
func (o *Orchestrator) IsGenerating() bool {
	return o.urls.session.IsRunning() ||
		o.account.session.IsRunning() ||
		o.manual.session.IsRunning()
}

// Progress 合并三个策略的进度
//
// 消息取第一个非空者，步数取第一个执行中策略的步数，固定优先级：
// 链接列表 > 已连接账号 > 手动资料。全部空闲时步数为 (0, 0)。
func (o *Orchestrator) Progress() Progress {
	snaps := [3]Snapshot{
		o.urls.session.Snapshot(),
		o.account.session.Snapshot(),
		o.manual.session.Snapshot(),
	}

	var p Progress
	for _, snap := range snaps {
		if snap.Status == StatusRunning {
			p.IsGenerating = true
			break
		}
	}
	for _, snap := range snaps {
		if snap.Message != "" {
			p.Message = snap.Message
			break
		}
	}
	for _, snap := range snaps {
		if snap.Status == StatusRunning {
			p.CurrentStep = snap.CurrentStep
			p.TotalSteps = snap.TotalSteps
			break
		}
	}
	return p
}

// Watch 订阅合并后的进度流（SSE 推送用）
// 任一策略状态变化都会触发一条合并后的 Progress；返回的 stop 释放订阅
func (o *Orchestrator) Watch() (<-chan Progress, func()) {
	out := make(chan Progress, 16)
	done := make(chan struct{})
	var once sync.Once

	sessions := []*Session{o.urls.session, o.account.session, o.manual.session}
	for _, sess := range sessions {
		ch, cancel := sess.Subscribe()
		go func(ch <-chan Snapshot, cancel func()) {
			defer cancel()
			for {
				select {
				case <-done:
					return
				case _, ok := <-ch:
					if !ok {
						return
					}
					select {
					case out <- o.Progress():
					default:
						// 消费过慢时丢弃，进度视图允许有损
					}
				}
			}
		}(ch, cancel)
	}

	stop := func() {
		once.Do(func() { close(done) })
	}
	return out, stop
}

// pause 可中断的步进停顿
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
