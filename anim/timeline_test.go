package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanEntry(t *testing.T, from, to float64, d time.Duration) *KeyframeAnimation {
	t.Helper()
	a, err := NewKeyframeAnimation(d, []Keyframe{
		{TimeFraction: 0, Value: from, Easing: Linear},
		{TimeFraction: 1, Value: to, Easing: Linear},
	})
	require.NoError(t, err)
	return a
}

func TestTimelineScrub(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("angle", 0, spanEntry(t, 0, 360, 500*time.Millisecond)))

	tl.Seek(250 * time.Millisecond)
	v, ok := tl.Get("angle")
	require.True(t, ok)
	assert.InDelta(t, 180, v, 1e-9)
}

func TestTimelineUnknownEntry(t *testing.T) {
	tl := NewTimeline()
	_, ok := tl.Get("nope")
	assert.False(t, ok)
}

func TestTimelineDuplicateEntryRejected(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("a", 0, spanEntry(t, 0, 1, time.Second)))

	err := tl.Add("a", time.Second, spanEntry(t, 1, 2, time.Second))
	require.ErrorIs(t, err, ErrDuplicateEntry)

	// The rejection leaves the timeline untouched.
	assert.Equal(t, 1, tl.Len())
	assert.Equal(t, []string{"a"}, tl.EntryIDs())
}

func TestTimelineOffsetEntryInactiveBeforeStart(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("late", 200*time.Millisecond, spanEntry(t, 5, 10, 100*time.Millisecond)))
	tl.Play()

	// Before its offset, the entry reports its initial value.
	tl.Update(0.1)
	v, ok := tl.Get("late")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	// Halfway through its local window.
	tl.Update(0.15)
	v, _ = tl.Get("late")
	assert.InDelta(t, 7.5, v, 1e-9)
}

func TestTimelinePauseHoldsClock(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("x", 0, spanEntry(t, 0, 100, time.Second)))
	tl.Play()
	tl.Update(0.25)
	tl.Pause()
	require.False(t, tl.Playing())

	tl.Update(0.25)
	v, _ := tl.Get("x")
	assert.InDelta(t, 25, v, 1e-9)
}

func TestTimelineLoopWrapPreservesPhase(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("x", 0, spanEntry(t, 0, 100, 500*time.Millisecond)))
	tl.SetLoop(-1)
	tl.Play()

	// One update that crosses the end wraps by the total duration, not to
	// zero.
	tl.Update(0.6)
	v, _ := tl.Get("x")
	assert.InDelta(t, 20, v, 1e-9) // clock = 0.1s of 0.5s -> 20
	assert.True(t, tl.Playing())
}

func TestTimelineFiniteLooping(t *testing.T) {
	const d = 0.5 // one entry spanning 500ms
	tl := NewTimeline()
	require.NoError(t, tl.Add("x", 0, spanEntry(t, 0, 100, 500*time.Millisecond)))
	tl.SetLoop(2)
	tl.Play()

	// Run for 3x the total duration in small steps: two wrap-arounds, then
	// hold at the final value as if looping were off.
	steps := 300
	for i := 0; i < steps; i++ {
		tl.Update(3 * d / float64(steps))
	}
	tl.Update(0.01) // absorb accumulated float error at the final boundary

	require.False(t, tl.Playing())
	v, _ := tl.Get("x")
	assert.Equal(t, 100.0, v)
	assert.InDelta(t, 1.0, tl.Progress(), 1e-9)
}

func TestTimelineSeekRecomputesEntries(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("a", 0, spanEntry(t, 0, 100, time.Second)))
	require.NoError(t, tl.Add("b", 500*time.Millisecond, spanEntry(t, 100, 200, 500*time.Millisecond)))

	tl.Seek(750 * time.Millisecond)

	va, _ := tl.Get("a")
	vb, _ := tl.Get("b")
	assert.InDelta(t, 75, va, 1e-9)
	assert.InDelta(t, 150, vb, 1e-9)
}

func TestTimelinePlayAfterCompletionRestarts(t *testing.T) {
	tl := NewTimeline()
	require.NoError(t, tl.Add("x", 0, spanEntry(t, 0, 100, 100*time.Millisecond)))
	tl.Play()
	tl.Update(1)
	require.False(t, tl.Playing())

	tl.Play()
	require.True(t, tl.Playing())
	v, _ := tl.Get("x")
	assert.Equal(t, 0.0, v)
}

func TestTimelineEmptyIsInactive(t *testing.T) {
	tl := NewTimeline()
	tl.Play()
	tl.Update(1)
	assert.False(t, tl.active())
}
