package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingBoundaries(t *testing.T) {
	kinds := []EasingKind{
		Linear,
		EaseIn,
		EaseOut,
		EaseInOut,
		CubicBezier(0.25, 0.1, 0.25, 1.0),
	}

	for _, k := range kinds {
		assert.Equal(t, 0.0, k.Apply(0), "%s at 0", k)
		assert.Equal(t, 1.0, k.Apply(1), "%s at 1", k)
		// Out-of-range progress clamps.
		assert.Equal(t, 0.0, k.Apply(-3), "%s below 0", k)
		assert.Equal(t, 1.0, k.Apply(7), "%s above 1", k)
	}
}

func TestEasingShapes(t *testing.T) {
	// Ease-in starts slow, ease-out starts fast, in-out is symmetric.
	assert.Less(t, EaseIn.Apply(0.25), 0.25)
	assert.Greater(t, EaseOut.Apply(0.25), 0.25)
	assert.InDelta(t, 0.5, EaseInOut.Apply(0.5), 1e-9)
	assert.InDelta(t, 1.0, EaseInOut.Apply(0.25)+EaseInOut.Apply(0.75), 1e-9)
}

func TestBezierMatchesLinearDiagonal(t *testing.T) {
	// Control points on the diagonal reduce the curve to identity.
	k := CubicBezier(0.25, 0.25, 0.75, 0.75)
	for p := 0.0; p <= 1.0; p += 0.05 {
		assert.InDelta(t, p, k.Apply(p), 1e-4, "p=%v", p)
	}
}

func TestBezierMonotoneAndBounded(t *testing.T) {
	k := CubicBezier(0.42, 0.0, 0.58, 1.0)
	prev := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		v := k.Apply(p)
		assert.GreaterOrEqual(t, v, prev-1e-9, "p=%v", p)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
}

func TestBezierFallbackAtStationaryPoint(t *testing.T) {
	// With control x's of 1 and 0 the curve's x component is
	// 4t^3 - 6t^2 + 3t, whose derivative 3(2t-1)^2 vanishes at t = 0.5.
	// Just off the midpoint the solver's derivative guard trips before the
	// residual is within tolerance, so the curve degrades to linear.
	k := CubicBezier(1, 0, 0, 1)
	p := 0.500005
	assert.Equal(t, p, k.Apply(p))

	// The exact boundaries never go through the solver.
	assert.Equal(t, 0.0, k.Apply(0))
	assert.Equal(t, 1.0, k.Apply(1))
}

func TestBezierClampsControlX(t *testing.T) {
	// x components outside [0,1] would make x(t) unsolvable; they clamp.
	k := CubicBezier(-2, 0, 5, 1)
	v := k.Apply(0.5)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestParseEasing(t *testing.T) {
	for name, want := range map[string]EasingKind{
		"":            Linear,
		"linear":      Linear,
		"ease-in":     EaseIn,
		"ease-out":    EaseOut,
		"ease-in-out": EaseInOut,
	} {
		got, err := ParseEasing(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseEasing("bounce")
	require.Error(t, err)
}
