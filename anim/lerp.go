package anim

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ColorKeyframe is a fixed colour sample on an animation curve.
type ColorKeyframe struct {
	TimeFraction float64
	Color        colorful.Color
	Easing       EasingKind
}

// ColorAnimation interpolates through colour keyframes over a fixed
// duration, blending in HCL space so hues sweep perceptually instead of
// through grey. Like KeyframeAnimation it is unsynchronized and advanced by
// whoever owns it.
type ColorAnimation struct {
	frames   []ColorKeyframe
	duration float64 // seconds
	elapsed  float64
	looping  bool
}

// NewColorAnimation validates and builds a colour track under the same
// keyframe rules as NewKeyframeAnimation.
func NewColorAnimation(duration time.Duration, frames []ColorKeyframe) (*ColorAnimation, error) {
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

	kept := make([]ColorKeyframe, len(frames))
	copy(kept, frames)
	return &ColorAnimation{frames: kept, duration: duration.Seconds()}, nil
}

// SetLooping makes the track wrap instead of holding its final colour.
func (a *ColorAnimation) SetLooping(looping bool) {
	a.looping = looping
}

// Update advances by dt seconds and returns the current colour.
func (a *ColorAnimation) Update(dt float64) colorful.Color {
	a.elapsed += dt
	if a.elapsed < 0 {
		a.elapsed = 0
	}
	if a.elapsed > a.duration {
		if a.looping {
			a.elapsed = math.Mod(a.elapsed, a.duration)
		} else {
			a.elapsed = a.duration
		}
	}
	return a.ValueAt(a.elapsed)
}

// ValueAt samples the track at an elapsed time without advancing it.
func (a *ColorAnimation) ValueAt(elapsed float64) colorful.Color {
	p := clamp01(elapsed / a.duration)
	if p <= 0 {
		return a.frames[0].Color
	}
	if p >= 1 {
		return a.frames[len(a.frames)-1].Color
	}

	for i := 0; i < len(a.frames)-1; i++ {
		k0, k1 := a.frames[i], a.frames[i+1]
		if p <= k1.TimeFraction {
			lp := (p - k0.TimeFraction) / (k1.TimeFraction - k0.TimeFraction)
			return k0.Color.BlendHcl(k1.Color, k0.Easing.Apply(lp))
		}
	}
	return a.frames[len(a.frames)-1].Color
}

// Value returns the colour at the current elapsed time.
func (a *ColorAnimation) Value() colorful.Color {
	return a.ValueAt(a.elapsed)
}
