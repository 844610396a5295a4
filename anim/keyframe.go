package anim

import "time"

// Keyframe is a fixed sample on an animation curve. TimeFraction positions
// it within the animation's duration on [0,1]. The easing shapes the segment
// leaving this keyframe.
type Keyframe struct {
	TimeFraction float64
	Value        float64
	Easing       EasingKind
}

// KeyframeAnimation interpolates through an ordered sequence of keyframes
// over a fixed duration. It is not synchronized; timelines and players guard
// it with their own locks.
type KeyframeAnimation struct {
	frames   []Keyframe
	duration float64 // seconds
	elapsed  float64
}

// NewKeyframeAnimation validates and builds an animation. Fractions must be
// strictly increasing, starting at exactly 0 and ending at exactly 1.
func NewKeyframeAnimation(duration time.Duration, frames []Keyframe) (*KeyframeAnimation, error) {
	if duration <= 0 {
		return nil, &ConfigError{Field: "duration", Reason: "must be positive"}
	}
	if len(frames) < 2 {
		return nil, &ConfigError{Field: "keyframes", Reason: "need at least two"}
	}
	if frames[0].TimeFraction != 0 {
		return nil, &ConfigError{Field: "keyframes", Reason: "first fraction must be 0"}
	}
	if frames[len(frames)-1].TimeFraction != 1 {
		return nil, &ConfigError{Field: "keyframes", Reason: "last fraction must be 1"}
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].TimeFraction <= frames[i-1].TimeFraction {
			return nil, &ConfigError{Field: "keyframes", Reason: "fractions must be strictly increasing"}
		}
	}

	kept := make([]Keyframe, len(frames))
	copy(kept, frames)
	return &KeyframeAnimation{frames: kept, duration: duration.Seconds()}, nil
}

// Duration returns the animation's fixed duration.
func (a *KeyframeAnimation) Duration() time.Duration {
	return time.Duration(a.duration * float64(time.Second))
}

// Update advances the elapsed time by dt seconds, clamped to the duration,
// and returns the interpolated value.
func (a *KeyframeAnimation) Update(dt float64) float64 {
	a.elapsed += dt
	if a.elapsed < 0 {
		a.elapsed = 0
	}
	if a.elapsed > a.duration {
		a.elapsed = a.duration
	}
	return a.ValueAt(a.elapsed)
}

// ValueAt samples the curve at an elapsed time without touching playback
// state. The boundaries are exact: 0 returns the first keyframe's value,
// anything at or past the duration returns the last.
func (a *KeyframeAnimation) ValueAt(elapsed float64) float64 {
	p := clamp01(elapsed / a.duration)
	if p <= 0 {
		return a.frames[0].Value
	}
	if p >= 1 {
		return a.frames[len(a.frames)-1].Value
	}

	for i := 0; i < len(a.frames)-1; i++ {
		k0, k1 := a.frames[i], a.frames[i+1]
		if p <= k1.TimeFraction {
			lp := (p - k0.TimeFraction) / (k1.TimeFraction - k0.TimeFraction)
			return Lerp(k0.Value, k1.Value, k0.Easing.Apply(lp))
		}
	}
	return a.frames[len(a.frames)-1].Value
}

// Value returns the value at the current elapsed time.
func (a *KeyframeAnimation) Value() float64 {
	return a.ValueAt(a.elapsed)
}

// Seek jumps the elapsed time directly; intermediate values are never
// observed as played.
func (a *KeyframeAnimation) Seek(t time.Duration) {
	e := t.Seconds()
	if e < 0 {
		e = 0
	}
	if e > a.duration {
		e = a.duration
	}
	a.elapsed = e
}

// Restart rewinds the elapsed time to zero.
func (a *KeyframeAnimation) Restart() {
	a.elapsed = 0
}

// Done reports whether the elapsed time has reached the duration.
func (a *KeyframeAnimation) Done() bool {
	return a.elapsed >= a.duration
}

// Progress returns elapsed/duration on [0,1].
func (a *KeyframeAnimation) Progress() float64 {
	return clamp01(a.elapsed / a.duration)
}
