package profilegen

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeRemote 可编程的远程生成端点桩
type fakeRemote struct {
	mu           sync.Mutex
	urlCalls     int
	accountCalls int
	manualCalls  int
	lastURLs     []string
	lastManual   ManualAccountData
	result       *RemoteResult
	err          error
}

func (f *fakeRemote) GenerateFromURLs(_ context.Context, _ string, urls []string) (*RemoteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlCalls++
	f.lastURLs = urls
	return f.result, f.err
}

func (f *fakeRemote) GenerateFromAccount(_ context.Context, _ string) (*RemoteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCalls++
	return f.result, f.err
}

func (f *fakeRemote) GenerateFromManual(_ context.Context, _ string, data ManualAccountData) (*RemoteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.manualCalls++
	f.lastManual = data
	return f.result, f.err
}

func (f *fakeRemote) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.urlCalls + f.accountCalls + f.manualCalls
}

// recordingNotifier 记录通知并在每条通知后发信号
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
	notified  chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{notified: make(chan struct{}, 8)}
}

func (n *recordingNotifier) Success(_ context.Context, message string) {
	n.mu.Lock()
	n.successes = append(n.successes, message)
	n.mu.Unlock()
	n.notified <- struct{}{}
}

func (n *recordingNotifier) Error(_ context.Context, message string) {
	n.mu.Lock()
	n.failures = append(n.failures, message)
	n.mu.Unlock()
	n.notified <- struct{}{}
}

func (n *recordingNotifier) successMessages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *recordingNotifier) failureMessages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.failures...)
}

func (n *recordingNotifier) waitNotified(t *testing.T) {
	t.Helper()
	select {
	case <-n.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("no notification arrived")
	}
}

// fakeIdentity 可编程的身份提供者桩
type fakeIdentity struct {
	accountID string
	err       error
}

func (f *fakeIdentity) ConnectedAccountID(_ context.Context) (string, error) {
	return f.accountID, f.err
}

// collectUntilTerminal 收集快照直到会话离开 Running
func collectUntilTerminal(t *testing.T, ch <-chan Snapshot) []Snapshot {
	t.Helper()
	var snaps []Snapshot
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-ch:
			snaps = append(snaps, snap)
			if snap.Status != StatusRunning {
				return snaps
			}
		case <-deadline:
			t.Fatalf("session never reached a terminal state, collected %d snapshots", len(snaps))
		}
	}
}
