// Package anim drives continuous, interruptible changes to numeric values
// over time: RK4-integrated spring physics, keyframe sequences with easing,
// and timelines orchestrating offset sub-animations, all advanced once per
// frame by a Scheduler owned by the host render loop.
package anim

import (
	"sync"
	"weak"
)

// stepper is implemented by every schedulable animation handle. step
// advances by dt seconds; active reports whether another frame is needed.
type stepper interface {
	step(dt float64) bool
	active() bool
}

type schedEntry struct {
	id  uint64
	get func() stepper
}

// Scheduler is the per-application registry of live animations. It holds
// only weak references: when application code drops the last strong handle,
// the entry is evicted on a subsequent tick with no explicit unregistration.
//
// Tick is expected to be called exactly once per rendered frame from the
// host's update pass. Handle mutations (AnimateTo, Play, Seek, ...) may
// arrive from any goroutine at any time; they only adjust target state, and
// the next tick integrates toward it.
type Scheduler struct {
	mu      sync.Mutex
	nextID  uint64
	entries []schedEntry
}

// NewScheduler creates an empty scheduler. The application owns it and
// passes it to whatever creates animations; there is no process-wide
// instance.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) schedule(get func() stepper) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.entries = append(s.entries, schedEntry{id: s.nextID, get: get})
	return s.nextID
}

func (s *Scheduler) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Tick advances every registered animation by dt seconds, in registration
// order, evicting entries whose owners have been collected. It returns true
// if any animation still needs another frame; settled springs and completed
// timelines stay registered but stop contributing to this signal.
func (s *Scheduler) Tick(dt float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	anyActive := false
	kept := s.entries[:0]
	for _, e := range s.entries {
		a := e.get()
		if a == nil {
			continue // owner dropped, evict
		}
		if a.step(dt) {
			anyActive = true
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return anyActive
}

// HasActiveAnimations reports whether any registered animation needs another
// frame. The host render loop uses this to idle instead of re-rendering.
func (s *Scheduler) HasActiveAnimations() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if a := e.get(); a != nil && a.active() {
			return true
		}
	}
	return false
}

// Len returns the number of registered animations, including settled ones
// not yet evicted.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// NewValue creates a spring-backed animated value starting at rest at
// initial, registered with the scheduler.
func (s *Scheduler) NewValue(initial float64, config SpringConfig) (*Value, error) {
	spring, err := NewSpringAt(config, initial)
	if err != nil {
		return nil, err
	}
	v := &Value{spring: spring, sched: s}
	w := weak.Make(v)
	v.id = s.schedule(func() stepper {
		if p := w.Value(); p != nil {
			return p
		}
		return nil
	})
	return v, nil
}

// NewKeyframePlayer wraps a keyframe animation in a playback handle
// registered with the scheduler. The player starts paused.
func (s *Scheduler) NewKeyframePlayer(a *KeyframeAnimation) *KeyframePlayer {
	p := &KeyframePlayer{anim: a, iterations: 1, sched: s}
	w := weak.Make(p)
	p.id = s.schedule(func() stepper {
		if v := w.Value(); v != nil {
			return v
		}
		return nil
	})
	return p
}

// NewTimeline creates an empty timeline registered with the scheduler.
func (s *Scheduler) NewTimeline() *Timeline {
	t := NewTimeline()
	t.sched = s
	w := weak.Make(t)
	t.schedID = s.schedule(func() stepper {
		if v := w.Value(); v != nil {
			return v
		}
		return nil
	})
	return t
}
