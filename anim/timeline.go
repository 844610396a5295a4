package anim

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

type timelineEntry struct {
	offset float64 // seconds into the shared clock
	anim   *KeyframeAnimation
}

// Timeline orchestrates named sub-animations against one playhead clock.
// Entries start at their offset; before that they report their initial
// value. Timelines are internally synchronized, so play/pause/seek may be
// called from any goroutine while the scheduler ticks.
type Timeline struct {
	mu        sync.Mutex
	entries   map[string]*timelineEntry
	clock     float64 // seconds
	playing   bool
	loops     int // -1 infinite, 0 none, n extra iterations
	remaining int

	// set when created through a scheduler
	sched   *Scheduler
	schedID uint64
}

// Release deregisters the timeline from its scheduler immediately. It is a
// no-op for standalone timelines.
func (t *Timeline) Release() {
	if t.sched != nil {
		t.sched.remove(t.schedID)
	}
}

// NewTimeline creates an empty, paused timeline. Use Scheduler.NewTimeline
// to get one that is ticked automatically.
func NewTimeline() *Timeline {
	return &Timeline{entries: make(map[string]*timelineEntry)}
}

// Add registers a sub-animation under the given id at a start offset.
// Reusing an id is rejected with ErrDuplicateEntry and leaves the timeline
// untouched.
func (t *Timeline) Add(id string, offset time.Duration, a *KeyframeAnimation) error {
	if a == nil {
		return &ConfigError{Field: "animation", Reason: "must not be nil"}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.entries[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEntry, id)
	}
	t.entries[id] = &timelineEntry{offset: offset.Seconds(), anim: a}
	return nil
}

// Play starts or resumes the clock. A timeline that already ran to
// completion starts over from zero.
func (t *Timeline) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.clock >= t.totalLocked() && t.remaining == 0 {
		t.clock = 0
		t.remaining = t.loops
	}
	t.playing = true
}

// Pause stops the clock; paused timelines do not advance on tick.
func (t *Timeline) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = false
}

// Playing reports whether the clock is advancing.
func (t *Timeline) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Seek sets the clock directly; entry values are derived from the clock, so
// every entry reflects the new position on the next read.
func (t *Timeline) Seek(pos time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := pos.Seconds()
	if c < 0 {
		c = 0
	}
	t.clock = c
}

// SetLoop configures looping: -1 infinite, 0 none, n repeats n more times.
func (t *Timeline) SetLoop(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loops = n
	t.remaining = n
}

// Update advances the clock by dt seconds if playing. When the clock passes
// the last entry's end and loops remain, it wraps by subtracting the total
// duration so accumulated phase is preserved.
func (t *Timeline) Update(dt float64) {
	t.step(dt)
}

func (t *Timeline) step(dt float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing || len(t.entries) == 0 {
		return false
	}

	t.clock += dt
	total := t.totalLocked()
	for t.clock > total {
		if t.remaining == 0 {
			t.clock = total
			t.playing = false
			break
		}
		t.clock -= total
		if t.remaining > 0 {
			t.remaining--
		}
	}
	return t.playing
}

func (t *Timeline) active() bool {
	return t.Playing()
}

// Get returns the entry's current interpolated value, or false for an
// unknown id. Entries whose offset lies ahead of the clock report their
// first keyframe's value.
func (t *Timeline) Get(id string) (float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok {
		return 0, false
	}
	local := t.clock - e.offset
	if local < 0 {
		local = 0
	}
	return e.anim.ValueAt(local), true
}

// Progress returns clock/total on [0,1] for the current iteration.
func (t *Timeline) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := t.totalLocked()
	if total <= 0 {
		return 0
	}
	return clamp01(t.clock / total)
}

// EntryIDs returns the registered ids in lexical order.
func (t *Timeline) EntryIDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of entries.
func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// totalLocked is the furthest entry end. Callers hold t.mu.
func (t *Timeline) totalLocked() float64 {
	total := 0.0
	for _, e := range t.entries {
		if end := e.offset + e.anim.duration; end > total {
			total = end
		}
	}
	return total
}
