package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-blinc/blinc-animation/anim"
)

// solidScene renders a single colour; enough to tell scenes apart in a
// blended frame.
type solidScene struct {
	colour colorful.Color
}

func (s *solidScene) CalculateFrame(dt float64) *Frame {
	f := NewFrame(8)
	f.Fill(s.colour)
	return f
}

func TestControllerSingleScene(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	sched := anim.NewScheduler()
	c, err := NewController(sched, []Scene{&solidScene{colour: red}}, time.Minute)
	require.NoError(t, err)

	f := c.CalculateFrame(1.0 / 60)
	assert.Equal(t, red, f.At(0))

	// Cycling with a single scene is a no-op.
	c.Cycle()
	assert.False(t, c.Transitioning())
}

func TestControllerCrossfade(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")
	sched := anim.NewScheduler()
	c, err := NewController(sched, []Scene{
		&solidScene{colour: red},
		&solidScene{colour: blue},
	}, time.Minute)
	require.NoError(t, err)

	c.Cycle()
	require.True(t, c.Transitioning())

	// Cycling again mid-fade is ignored.
	c.Cycle()
	require.True(t, c.Transitioning())

	// Drive frames until the fade spring settles and the controller
	// promotes the next scene.
	var f *Frame
	for i := 0; i < 600 && c.Transitioning(); i++ {
		sched.Tick(1.0 / 60)
		f = c.CalculateFrame(1.0 / 60)
	}
	require.False(t, c.Transitioning())

	// The last blended frame is fully on the new scene, and the next one
	// renders it directly.
	assert.InDelta(t, blue.B, f.At(0).B, 1e-6)
	assert.Equal(t, blue, c.CalculateFrame(1.0/60).At(0))

	// The fade value is reset and idle between transitions.
	assert.False(t, sched.HasActiveAnimations())
}
