package anim

import (
	"fmt"
	"log"
	"math"

	"github.com/fogleman/ease"
)

type easingFn int

const (
	easeLinear easingFn = iota
	easeIn
	easeOut
	easeInOut
	easeBezier
)

// EasingKind selects the interpolation curve applied between two keyframes.
// The zero value is linear. Bezier kinds carry their control points so the
// whole set dispatches through a single switch in Apply.
type EasingKind struct {
	fn             easingFn
	x1, y1, x2, y2 float64
}

// The named easing kinds. EaseIn/EaseOut/EaseInOut are the cubic variants.
var (
	Linear    = EasingKind{fn: easeLinear}
	EaseIn    = EasingKind{fn: easeIn}
	EaseOut   = EasingKind{fn: easeOut}
	EaseInOut = EasingKind{fn: easeInOut}
)

// CubicBezier builds an easing from four control scalars, as in CSS timing
// functions. The x components are clamped to [0,1] so the curve stays
// solvable for progress.
func CubicBezier(x1, y1, x2, y2 float64) EasingKind {
	return EasingKind{fn: easeBezier, x1: clamp01(x1), y1: y1, x2: clamp01(x2), y2: y2}
}

// Apply maps a normalised progress p to an eased progress. p is clamped to
// [0,1] and every kind returns exactly 0 at p=0 and 1 at p=1.
func (k EasingKind) Apply(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	switch k.fn {
	case easeIn:
		return ease.InCubic(p)
	case easeOut:
		return ease.OutCubic(p)
	case easeInOut:
		return ease.InOutCubic(p)
	case easeBezier:
		return k.bezier(p)
	default:
		return p
	}
}

const (
	bezierIterations = 8
	bezierEpsilon    = 1e-6
)

// bezier solves the curve's x component for t with Newton-Raphson, then
// returns the y component at that t. If the solve fails to converge within
// the iteration budget it falls back to linear so a degenerate curve
// degrades visually rather than misbehaving.
func (k EasingKind) bezier(p float64) float64 {
	cx := 3 * k.x1
	bx := 3*(k.x2-k.x1) - cx
	ax := 1 - cx - bx
	cy := 3 * k.y1
	by := 3*(k.y2-k.y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleDX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	t := p
	for i := 0; i < bezierIterations; i++ {
		x := sampleX(t) - p
		if math.Abs(x) < bezierEpsilon {
			return ((ay*t+by)*t + cy) * t
		}
		d := sampleDX(t)
		if math.Abs(d) < 1e-9 {
			break
		}
		t = clamp01(t - x/d)
	}

	log.Printf("cubic-bezier(%g,%g,%g,%g) did not converge at p=%g, using linear",
		k.x1, k.y1, k.x2, k.y2, p)
	return p
}

func (k EasingKind) String() string {
	switch k.fn {
	case easeIn:
		return "ease-in"
	case easeOut:
		return "ease-out"
	case easeInOut:
		return "ease-in-out"
	case easeBezier:
		return fmt.Sprintf("cubic-bezier(%g,%g,%g,%g)", k.x1, k.y1, k.x2, k.y2)
	default:
		return "linear"
	}
}

// ParseEasing maps the config-file names onto the named kinds.
func ParseEasing(s string) (EasingKind, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	}
	return EasingKind{}, fmt.Errorf("unknown easing %q", s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
