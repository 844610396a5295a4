package stream

import (
	"log"
	"sync"
	"time"

	"github.com/project-blinc/blinc-animation/anim"
)

// Controller manages scenes and crossfades between them. The transition
// bias is a gentle spring animated 0 -> 1, so a scene cycle triggered
// mid-fade simply retargets without a visible jump.
type Controller struct {
	mu     sync.Mutex
	scenes []Scene
	index  int
	next   int // -1 when no transition in flight
	fade   *anim.Value
	cycle  time.Duration
}

// NewController creates an instance of a Controller.
func NewController(sched *anim.Scheduler, scenes []Scene, cycle time.Duration) (*Controller, error) {
	fade, err := sched.NewValue(0, anim.SpringGentle)
	if err != nil {
		return nil, err
	}

	c := new(Controller)
	c.scenes = scenes
	c.next = -1
	c.fade = fade
	c.cycle = cycle

	return c, nil
}

// CalculateFrame renders the current scene, blending in the next one while
// a transition is in flight.
func (c *Controller) CalculateFrame(dt float64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next < 0 {
		return c.scenes[c.index].CalculateFrame(dt)
	}

	f1 := c.scenes[c.index].CalculateFrame(dt)
	f2 := c.scenes[c.next].CalculateFrame(dt)
	f := f1.Blend(f2, c.fade.Value())

	if c.fade.IsSettled() {
		c.index = c.next
		c.next = -1
		c.fade.SetImmediate(0)
	}

	return f
}

// Cycle starts a crossfade to the next scene. No-op while a transition is
// already running.
func (c *Controller) Cycle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.scenes) < 2 || c.next >= 0 {
		return
	}
	c.next = (c.index + 1) % len(c.scenes)
	log.Printf("scene transition: %d -> %d", c.index, c.next)
	c.fade.AnimateTo(1)
}

// Transitioning reports whether a crossfade is in flight.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next >= 0
}

// Run causes the Controller to cycle through scenes.
func (c *Controller) Run() {
	cycleTimer := time.NewTicker(c.cycle)
	for range cycleTimer.C {
		c.Cycle()
	}
}
