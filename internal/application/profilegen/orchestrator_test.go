package profilegen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrchestrator(remote RemoteClient, identity IdentityProvider) *Orchestrator {
	return NewOrchestrator(remote, identity, newRecordingNotifier(), "user-1", Callbacks{}, Options{})
}

func TestOrchestratorIdleProgressIsZero(t *testing.T) {
	o := newTestOrchestrator(&fakeRemote{}, &fakeIdentity{})

	p := o.Progress()
	assert.False(t, p.IsGenerating)
	assert.Empty(t, p.Message)
	assert.Equal(t, 0, p.CurrentStep)
	assert.Equal(t, 0, p.TotalSteps)
	assert.False(t, o.IsGenerating())
}

func TestOrchestratorMessagePriority(t *testing.T) {
	o := newTestOrchestrator(&fakeRemote{}, &fakeIdentity{})

	// 手动策略先进入执行态，链接策略后到：消息仍取链接策略
	manualGen := o.manual.session.begin(2)
	require.True(t, o.manual.session.advance(manualGen, "M2"))
	urlGen := o.urls.session.begin(4)
	require.True(t, o.urls.session.advance(urlGen, "M1"))

	p := o.Progress()
	assert.True(t, p.IsGenerating)
	assert.Equal(t, "M1", p.Message)
	assert.Equal(t, 1, p.CurrentStep)
	assert.Equal(t, 4, p.TotalSteps)
}

func TestOrchestratorFallsBackToLowerPriorityMessage(t *testing.T) {
	o := newTestOrchestrator(&fakeRemote{}, &fakeIdentity{})

	gen := o.manual.session.begin(2)
	require.True(t, o.manual.session.advance(gen, "M2"))

	p := o.Progress()
	assert.True(t, p.IsGenerating)
	assert.Equal(t, "M2", p.Message)
	assert.Equal(t, 1, p.CurrentStep)
	assert.Equal(t, 2, p.TotalSteps)
}

func TestOrchestratorEntryPointsDelegate(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{ProfileData: map[string]any{"name": "v"}}}
	notifier := newRecordingNotifier()
	o := NewOrchestrator(remote, &fakeIdentity{accountID: "ig-123"}, notifier, "user-1", Callbacks{}, Options{})

	urlCh, cancelURL := o.urls.session.Subscribe()
	defer cancelURL()
	o.GenerateFromURLs(context.Background(), []string{"https://veramoreno.art"})
	collectUntilTerminal(t, urlCh)

	accountCh, cancelAccount := o.account.session.Subscribe()
	defer cancelAccount()
	o.GenerateFromConnectedAccount(context.Background())
	collectUntilTerminal(t, accountCh)

	manualCh, cancelManual := o.manual.session.Subscribe()
	defer cancelManual()
	o.GenerateFromManualData(context.Background(), ManualAccountData{Username: "vera"})
	collectUntilTerminal(t, manualCh)

	assert.Equal(t, 1, remote.urlCalls)
	assert.Equal(t, 1, remote.accountCalls)
	assert.Equal(t, 1, remote.manualCalls)
}

func TestOrchestratorWatchEmitsMergedProgress(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{ProfileData: map[string]any{"name": "v"}}}
	o := NewOrchestrator(remote, &fakeIdentity{}, newRecordingNotifier(), "user-1", Callbacks{}, Options{})

	ch, stop := o.Watch()
	defer stop()

	o.GenerateFromURLs(context.Background(), []string{"https://veramoreno.art"})

	// 合并流按转发时刻采样，只断言最终收敛到非执行态
	deadline := time.After(2 * time.Second)
	received := 0
	for {
		select {
		case p := <-ch:
			received++
			if !p.IsGenerating {
				assert.GreaterOrEqual(t, received, 1)
				return
			}
		case <-deadline:
			t.Fatal("merged progress stream never settled")
		}
	}
}
