package profilegen

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisan-market-api/internal/domain/entity"
)

func TestURLStrategyProgressIsMonotonic(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{
		ProfileData:   map[string]any{"name": "Vera Moreno", "bio": "ceramicist in Lisbon"},
		ProcessedURLs: 2,
		TotalURLs:     2,
	}}
	notifier := newRecordingNotifier()
	s := NewURLStrategy(remote, notifier, Callbacks{}, "user-1", 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background(), []string{
		"https://veramoreno.art",
		"https://www.behance.net/veramoreno",
	})

	snaps := collectUntilTerminal(t, ch)
	require.GreaterOrEqual(t, len(snaps), 5)

	// 每个链接一步 + 收尾一步 + 完成一步
	for i, snap := range snaps[:len(snaps)-1] {
		assert.Equal(t, StatusRunning, snap.Status)
		assert.Equal(t, 4, snap.TotalSteps)
		if i > 0 {
			assert.GreaterOrEqual(t, snap.CurrentStep, snaps[i-1].CurrentStep)
		}
	}
	assert.Equal(t, 4, snaps[len(snaps)-2].CurrentStep)

	final := snaps[len(snaps)-1]
	assert.Equal(t, StatusSucceeded, final.Status)
	assert.Equal(t, 0, final.CurrentStep)
	assert.Equal(t, 0, final.TotalSteps)
	assert.Empty(t, final.Message)
}

func TestURLStrategyStepMessagesNamePlatforms(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{ProfileData: map[string]any{"name": "v"}}}
	notifier := newRecordingNotifier()
	s := NewURLStrategy(remote, notifier, Callbacks{}, "user-1", 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background(), []string{
		"https://www.instagram.com/vera",
		"https://x.com/vera",
		"https://veramoreno.art/work",
	})

	snaps := collectUntilTerminal(t, ch)
	var messages []string
	for _, snap := range snaps {
		if snap.Message != "" {
			messages = append(messages, snap.Message)
		}
	}
	assert.Contains(t, messages, "Reading your Instagram profile...")
	assert.Contains(t, messages, "Reading your X (Twitter) profile...")
	assert.Contains(t, messages, "Reading your veramoreno.art profile...")
	assert.Contains(t, messages, "Crafting your artist profile...")
}

func TestURLStrategyRejectsWithoutValidURLs(t *testing.T) {
	remote := &fakeRemote{}
	notifier := newRecordingNotifier()
	s := NewURLStrategy(remote, notifier, Callbacks{}, "user-1", 0)

	s.Generate(context.Background(), []string{"", "   ", "not a url", "ftp://archive.example.com"})
	notifier.waitNotified(t)

	assert.Equal(t, 0, remote.totalCalls())
	assert.Equal(t, StatusIdle, s.Session().Snapshot().Status)
	require.Len(t, notifier.failureMessages(), 1)
	assert.Contains(t, notifier.failureMessages()[0], "valid link")
}

func TestURLStrategyDeliversDraftAndNotification(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{ProfileData: map[string]any{
		"name":      "Vera Moreno",
		"specialty": "ceramics",
		"styles":    []any{"wabi-sabi"},
	}}}
	notifier := newRecordingNotifier()

	var mu sync.Mutex
	var delivered *entity.ProfileDraft
	readyCalls := 0
	callbacks := Callbacks{
		OnProfileGenerated: func(_ context.Context, draft *entity.ProfileDraft) {
			mu.Lock()
			delivered = draft
			mu.Unlock()
		},
		OnReadyToSave: func(_ context.Context) {
			mu.Lock()
			readyCalls++
			mu.Unlock()
		},
	}
	s := NewURLStrategy(remote, notifier, callbacks, "user-1", 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background(), []string{"https://veramoreno.art"})
	collectUntilTerminal(t, ch)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, delivered)
	assert.Equal(t, "Vera Moreno", delivered.Name)
	assert.Equal(t, 1, readyCalls)
	require.Len(t, notifier.successMessages(), 1)
	assert.Contains(t, notifier.successMessages()[0], "3 fields")
}

func TestURLStrategyFailureClassifiesMessage(t *testing.T) {
	remote := &fakeRemote{err: errors.New("failed to fetch: status code 503")}
	notifier := newRecordingNotifier()
	s := NewURLStrategy(remote, notifier, Callbacks{}, "user-1", 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background(), []string{"https://www.instagram.com/vera"})
	snaps := collectUntilTerminal(t, ch)

	assert.Equal(t, StatusFailed, snaps[len(snaps)-1].Status)
	require.Len(t, notifier.failureMessages(), 1)
	assert.Contains(t, notifier.failureMessages()[0], "block automated access")
}

func TestAccountStrategyFailsFastWithoutIdentity(t *testing.T) {
	remote := &fakeRemote{}
	notifier := newRecordingNotifier()
	s := NewAccountStrategy(remote, &fakeIdentity{accountID: ""}, notifier, Callbacks{}, 0)

	s.Generate(context.Background())
	notifier.waitNotified(t)

	assert.Equal(t, 0, remote.totalCalls())
	assert.Equal(t, StatusIdle, s.Session().Snapshot().Status)
	require.Len(t, notifier.failureMessages(), 1)
	assert.Contains(t, notifier.failureMessages()[0], "Connect your account")
}

func TestAccountStrategyRunsFixedThreeSteps(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{
		ProfileData:   map[string]any{"name": "Vera Moreno"},
		PostsAnalyzed: 12,
	}}
	notifier := newRecordingNotifier()
	s := NewAccountStrategy(remote, &fakeIdentity{accountID: "ig-123"}, notifier, Callbacks{}, 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background())
	snaps := collectUntilTerminal(t, ch)

	for _, snap := range snaps[:len(snaps)-1] {
		assert.Equal(t, 3, snap.TotalSteps)
	}
	assert.Equal(t, StatusSucceeded, snaps[len(snaps)-1].Status)
	require.Len(t, notifier.successMessages(), 1)
	assert.Contains(t, notifier.successMessages()[0], "12 of your recent posts")
}

func TestAccountStrategyRewritesNoConnectionError(t *testing.T) {
	remote := &fakeRemote{err: &RemoteError{Message: "no connection found for context"}}
	notifier := newRecordingNotifier()
	s := NewAccountStrategy(remote, &fakeIdentity{accountID: "ig-123"}, notifier, Callbacks{}, 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background())
	snaps := collectUntilTerminal(t, ch)

	assert.Equal(t, StatusFailed, snaps[len(snaps)-1].Status)
	require.Len(t, notifier.failureMessages(), 1)
	assert.Equal(t, noConnectionMessage, notifier.failureMessages()[0])
}

func TestManualStrategyUsernameGate(t *testing.T) {
	tests := []struct {
		username string
		accepted bool
	}{
		{"artist.one_2", true},
		{"vera", true},
		{"bad username!", false},
		{"vera@studio", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			remote := &fakeRemote{result: &RemoteResult{ProfileData: map[string]any{"name": "v"}}}
			notifier := newRecordingNotifier()
			s := NewManualStrategy(remote, notifier, Callbacks{}, "user-1", 0)

			ch, cancel := s.Session().Subscribe()
			defer cancel()

			s.Generate(context.Background(), ManualAccountData{Username: tt.username})

			if tt.accepted {
				collectUntilTerminal(t, ch)
				assert.Equal(t, 1, remote.totalCalls())
			} else {
				notifier.waitNotified(t)
				assert.Equal(t, 0, remote.totalCalls())
				assert.Equal(t, StatusIdle, s.Session().Snapshot().Status)
				require.Len(t, notifier.failureMessages(), 1)
				assert.Contains(t, notifier.failureMessages()[0], "letters, numbers, dots and underscores")
			}
		})
	}
}

func TestManualStrategyMergesFallbackData(t *testing.T) {
	remote := &fakeRemote{result: &RemoteResult{ProfileData: map[string]any{
		"name": "Enhanced Vera",
		"bio":  "",
	}}}
	notifier := newRecordingNotifier()

	var mu sync.Mutex
	var delivered *entity.ProfileDraft
	callbacks := Callbacks{
		OnProfileGenerated: func(_ context.Context, draft *entity.ProfileDraft) {
			mu.Lock()
			delivered = draft
			mu.Unlock()
		},
	}
	s := NewManualStrategy(remote, notifier, callbacks, "user-1", 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background(), ManualAccountData{
		Username:    "vera.moreno",
		DisplayName: "Vera Moreno",
		Bio:         "hello from the studio",
	})
	snaps := collectUntilTerminal(t, ch)

	assert.Equal(t, StatusSucceeded, snaps[len(snaps)-1].Status)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, delivered)
	// 增强结果优先，空字段回填手动录入值
	assert.Equal(t, "Enhanced Vera", delivered.Name)
	assert.Equal(t, "hello from the studio", delivered.Bio)
	assert.Equal(t, []string{"https://instagram.com/vera.moreno"}, delivered.SocialLinks)
}

func TestManualStrategyPassesErrorThrough(t *testing.T) {
	remote := &fakeRemote{err: &RemoteError{Message: "enhancement service unavailable"}}
	notifier := newRecordingNotifier()
	s := NewManualStrategy(remote, notifier, Callbacks{}, "user-1", 0)

	ch, cancel := s.Session().Subscribe()
	defer cancel()

	s.Generate(context.Background(), ManualAccountData{Username: "vera"})
	collectUntilTerminal(t, ch)

	require.Len(t, notifier.failureMessages(), 1)
	assert.Equal(t, "enhancement service unavailable", notifier.failureMessages()[0])
}
