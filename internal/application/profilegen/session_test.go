package profilegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionBeginResetsProgress(t *testing.T) {
	s := NewSession()

	gen := s.begin(5)
	require.True(t, s.advance(gen, "step one"))

	snap := s.Snapshot()
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, 1, snap.CurrentStep)
	assert.Equal(t, 5, snap.TotalSteps)
	assert.Equal(t, "step one", snap.Message)
}

func TestSessionAdvanceStopsAtTotal(t *testing.T) {
	s := NewSession()

	gen := s.begin(2)
	assert.True(t, s.advance(gen, "one"))
	assert.True(t, s.advance(gen, "two"))
	assert.False(t, s.advance(gen, "three"))
	assert.Equal(t, 2, s.Snapshot().CurrentStep)
}

func TestSessionStaleGenerationDiscarded(t *testing.T) {
	s := NewSession()

	stale := s.begin(3)
	fresh := s.begin(4)

	// 被取代的管线写入全部落空
	assert.False(t, s.advance(stale, "stale step"))
	assert.False(t, s.complete(stale, "stale done"))
	assert.False(t, s.finish(stale, StatusFailed))

	snap := s.Snapshot()
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, 0, snap.CurrentStep)
	assert.Equal(t, 4, snap.TotalSteps)
	assert.Empty(t, snap.Message)

	assert.True(t, s.advance(fresh, "fresh step"))
}

func TestSessionFinishRunsOnce(t *testing.T) {
	s := NewSession()

	gen := s.begin(1)
	require.True(t, s.advance(gen, "working"))
	require.True(t, s.finish(gen, StatusSucceeded))
	assert.False(t, s.finish(gen, StatusFailed))

	snap := s.Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	assert.Empty(t, snap.Message)
	assert.Equal(t, 0, snap.CurrentStep)
	assert.Equal(t, 0, snap.TotalSteps)
}

func TestSessionSubscribeReceivesSnapshots(t *testing.T) {
	s := NewSession()
	ch, cancel := s.Subscribe()
	defer cancel()

	gen := s.begin(1)
	s.advance(gen, "working")
	s.finish(gen, StatusSucceeded)

	snaps := collectUntilTerminal(t, ch)
	require.Len(t, snaps, 3)
	assert.Equal(t, StatusRunning, snaps[0].Status)
	assert.Equal(t, "working", snaps[1].Message)
	assert.Equal(t, StatusSucceeded, snaps[2].Status)
}
