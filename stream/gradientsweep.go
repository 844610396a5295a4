package stream

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/project-blinc/blinc-animation/anim"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table. At or
// past the last keypoint it keeps the caller's saturation and luminance
// rather than falling back to fixed values.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// At (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// A GradientSweep is a Scene that cycles a hue gradient along the strip.
// The phase comes from an infinitely looping timeline entry rather than a
// hand-advanced counter, so seeking and pausing the timeline scrub the
// sweep.
type GradientSweep struct {
	gradient    GradientTable
	numPixels   int
	trailLength int
	timeline    *anim.Timeline
}

// NewGradientSweep registers a looping phase timeline on the scheduler and
// returns the scene.
func NewGradientSweep(sched *anim.Scheduler, gradient GradientTable, numPixels, trailLength int,
	sweep time.Duration, easing anim.EasingKind) (*GradientSweep, error) {

	phase, err := anim.NewKeyframeAnimation(sweep, []anim.Keyframe{
		{TimeFraction: 0, Value: 0, Easing: easing},
		{TimeFraction: 1, Value: 1, Easing: easing},
	})
	if err != nil {
		return nil, err
	}

	tl := sched.NewTimeline()
	if err := tl.Add("phase", 0, phase); err != nil {
		return nil, err
	}
	tl.SetLoop(-1)
	tl.Play()

	g := new(GradientSweep)
	g.gradient = gradient
	g.numPixels = numPixels
	g.trailLength = trailLength
	g.timeline = tl

	return g, nil
}

// CalculateFrame creates a new Frame instance.
func (g *GradientSweep) CalculateFrame(dt float64) *Frame {
	f := NewFrame(g.numPixels)
	saturation := 1.0
	luminance := 0.05
	phase, _ := g.timeline.Get("phase")
	for i := 0; i < g.numPixels; i++ {
		t := math.Mod(float64(i)/float64(g.trailLength)+phase, 1.0)
		f.Set(i, g.gradient.GetColor(t, saturation, luminance))
	}

	return f
}
