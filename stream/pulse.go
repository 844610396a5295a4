package stream

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/project-blinc/blinc-animation/anim"
	"github.com/project-blinc/blinc-animation/util"
)

// A Pulse is a Scene that breathes the whole strip. Luminance rides a
// spring that is retargeted every time it settles, so the breathing keeps
// the natural deceleration of the oscillator; the base hue drifts through a
// looping colour track.
type Pulse struct {
	numPixels int
	luminance *anim.Value
	colours   *anim.ColorAnimation
	lut       []float64
	low, high float64
}

// NewPulse registers the luminance spring on the scheduler and returns the
// scene.
func NewPulse(sched *anim.Scheduler, numPixels int, spring anim.SpringConfig) (*Pulse, error) {
	p := new(Pulse)
	p.numPixels = numPixels
	p.low = 0.04
	p.high = 0.3
	p.lut = util.GenerateLut(numPixels)

	lum, err := sched.NewValue(p.low, spring)
	if err != nil {
		return nil, err
	}
	p.luminance = lum
	lum.AnimateTo(p.high)

	pink, _ := colorful.Hex("#ff69b4")
	teal, _ := colorful.Hex("#20b2aa")
	amber, _ := colorful.Hex("#ffbf00")
	colours, err := anim.NewColorAnimation(20*time.Second, []anim.ColorKeyframe{
		{TimeFraction: 0, Color: pink, Easing: anim.EaseInOut},
		{TimeFraction: 0.4, Color: teal, Easing: anim.EaseInOut},
		{TimeFraction: 0.7, Color: amber, Easing: anim.EaseInOut},
		{TimeFraction: 1, Color: pink, Easing: anim.EaseInOut},
	})
	if err != nil {
		return nil, err
	}
	colours.SetLooping(true)
	p.colours = colours

	return p, nil
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(dt float64) *Frame {
	if p.luminance.IsSettled() {
		// Bounce between the two luminance targets.
		if p.luminance.Target() >= p.high {
			p.luminance.AnimateTo(p.low)
		} else {
			p.luminance.AnimateTo(p.high)
		}
	}

	base := p.colours.Update(dt)
	h, c, _ := base.Hcl()
	l := p.luminance.Value()

	f := NewFrame(p.numPixels)
	for i := 0; i < p.numPixels; i++ {
		f.Set(i, colorful.Hcl(h, c, l*p.lut[i]))
	}

	return f
}
