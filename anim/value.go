package anim

import (
	"sync"
	"time"
)

// Value is a shared handle around a spring. It may be cloned into UI event
// callbacks and mutated from any goroutine; a single per-instance mutex
// covers both those mutations and the scheduler's tick. Reads return the
// last integrated position and never advance time.
type Value struct {
	mu     sync.Mutex
	spring *Spring
	sched  *Scheduler
	id     uint64
}

// AnimateTo retargets the spring without disturbing its motion.
func (v *Value) AnimateTo(target float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.spring.AnimateTo(target)
}

// SetVelocity hands a velocity to the spring, e.g. at the end of a drag.
func (v *Value) SetVelocity(vel float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.spring.SetVelocity(vel)
}

// SetImmediate jumps to a value with no animation.
func (v *Value) SetImmediate(x float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.spring.SnapTo(x)
}

// Value returns the current position.
func (v *Value) Value() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.spring.Value()
}

// Velocity returns the current velocity.
func (v *Value) Velocity() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.spring.Velocity()
}

// Target returns the value the spring is heading for.
func (v *Value) Target() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.spring.Target()
}

// IsSettled reports whether the spring is at rest at its target.
func (v *Value) IsSettled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.spring.IsSettled()
}

// Animating reports whether the spring still needs frames.
func (v *Value) Animating() bool {
	return !v.IsSettled()
}

// Release deregisters the value from its scheduler immediately. Dropping
// every reference has the same effect one collection later.
func (v *Value) Release() {
	v.sched.remove(v.id)
}

func (v *Value) step(dt float64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.spring.Update(dt)
	return !v.spring.IsSettled()
}

func (v *Value) active() bool {
	return v.Animating()
}

// KeyframePlayer runs a keyframe animation under the scheduler with play,
// pause, seek and iteration control. Like Value it is safe to mutate from
// outside the tick loop.
type KeyframePlayer struct {
	mu         sync.Mutex
	anim       *KeyframeAnimation
	playing    bool
	iterations int // -1 infinite, n plays n times; default 1
	completed  int
	pingPong   bool
	reversed   bool
	sched      *Scheduler
	id         uint64
}

// Play starts or resumes playback. A finished player starts over.
func (p *KeyframePlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.anim.Done() && !p.moreIterationsLocked() {
		p.completed = 0
		p.reversed = false
		p.anim.Restart()
	}
	p.playing = true
}

// Pause halts playback, keeping the current position.
func (p *KeyframePlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

// Restart rewinds to the beginning and plays.
func (p *KeyframePlayer) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed = 0
	p.reversed = false
	p.anim.Restart()
	p.playing = true
}

// Seek jumps to a position without playing through intermediate values.
func (p *KeyframePlayer) Seek(t time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.anim.Seek(t)
}

// SetIterations configures how many times the animation plays: -1 loops
// forever.
func (p *KeyframePlayer) SetIterations(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.iterations = n
}

// SetPingPong reverses direction on every other iteration.
func (p *KeyframePlayer) SetPingPong(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pingPong = enabled
}

// Value returns the current interpolated value, mirrored when on a reversed
// ping-pong pass.
func (p *KeyframePlayer) Value() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw := p.anim.Value()
	if p.reversed {
		first := p.anim.frames[0].Value
		last := p.anim.frames[len(p.anim.frames)-1].Value
		return first + last - raw
	}
	return raw
}

// Progress returns the current pass's progress on [0,1].
func (p *KeyframePlayer) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reversed {
		return 1 - p.anim.Progress()
	}
	return p.anim.Progress()
}

// Playing reports whether the player is advancing.
func (p *KeyframePlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Release deregisters the player from its scheduler immediately.
func (p *KeyframePlayer) Release() {
	p.sched.remove(p.id)
}

func (p *KeyframePlayer) step(dt float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return false
	}
	p.anim.Update(dt)
	if p.anim.Done() {
		p.completed++
		if p.moreIterationsLocked() {
			if p.pingPong {
				p.reversed = !p.reversed
			}
			p.anim.Restart()
		} else {
			p.playing = false
		}
	}
	return p.playing
}

func (p *KeyframePlayer) active() bool {
	return p.Playing()
}

func (p *KeyframePlayer) moreIterationsLocked() bool {
	return p.iterations < 0 || p.completed < p.iterations
}
