// Package profilegen 提供艺术家画像自动生成编排
//
// 三种互相独立的生成策略（链接列表 / 已连接账号 / 手动账号资料）各自
// 持有一个 Session 状态机，Orchestrator 将三者的状态合并为一个对外观察面。
package profilegen

import (
	"sync"
)

// Status 会话状态
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Snapshot 会话状态快照
type Snapshot struct {
	Status      Status `json:"status"`
	Message     string `json:"message"`
	CurrentStep int    `json:"current_step"`
	TotalSteps  int    `json:"total_steps"`
}

// Session 单个策略的生成会话状态机
//
// 所有状态迁移都经过带锁的内部方法，非法组合（如 Idle 且 currentStep > 0）
// 不可表示。每次调用持有一个递增的 generation 计数：被新调用取代的旧管线
// 的后续写入会被静默丢弃（陈旧响应保护）。
type Session struct {
	mu         sync.Mutex
	generation uint64
	snap       Snapshot
	subs       map[int]chan Snapshot
	nextSubID  int
}

// NewSession 创建空闲会话
func NewSession() *Session {
	return &Session{
		snap: Snapshot{Status: StatusIdle},
		subs: make(map[int]chan Snapshot),
	}
}

// Snapshot 返回当前状态快照
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// IsRunning 检查会话是否在执行中
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Status == StatusRunning
}

// Subscribe 订阅状态快照更新
// 返回只读通道和取消函数；通道带缓冲，消费过慢时丢弃中间快照
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Snapshot, 16)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(existing)
		}
	}
	return ch, cancel
}

// begin 开始新一轮调用：重置进度并进入 Running
// 返回本轮调用的 generation 令牌，后续写入必须携带该令牌
func (s *Session) begin(totalSteps int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.snap = Snapshot{
		Status:      StatusRunning,
		Message:     "",
		CurrentStep: 0,
		TotalSteps:  totalSteps,
	}
	s.publishLocked()
	return s.generation
}

// advance 推进一步并更新进度消息
// 令牌陈旧或步数越界时不写入，返回 false
func (s *Session) advance(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.snap.Status != StatusRunning {
		return false
	}
	if s.snap.CurrentStep >= s.snap.TotalSteps {
		return false
	}
	s.snap.CurrentStep++
	s.snap.Message = message
	s.publishLocked()
	return true
}

// complete 将进度直接推进到终点（成功路径的收尾步）
func (s *Session) complete(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.snap.Status != StatusRunning {
		return false
	}
	s.snap.CurrentStep = s.snap.TotalSteps
	s.snap.Message = message
	s.publishLocked()
	return true
}

// finish 终态复位：进度归零、消息清空、状态落定
// 同一轮调用无论成败只会生效一次；陈旧令牌为空操作
func (s *Session) finish(gen uint64, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.snap.Status != StatusRunning {
		return false
	}
	s.snap = Snapshot{
		Status:      status,
		Message:     "",
		CurrentStep: 0,
		TotalSteps:  0,
	}
	s.publishLocked()
	return true
}

// current 检查令牌是否仍是最新一轮
func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.generation
}

// publishLocked 向所有订阅者广播当前快照（调用方持锁）
func (s *Session) publishLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.snap:
		default:
			// 订阅者消费过慢时丢弃，进度快照允许有损
		}
	}
}
