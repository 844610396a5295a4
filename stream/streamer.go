package stream

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/project-blinc/blinc-animation/anim"
)

// Streamer is the host render loop: once per frame it ticks the animation
// scheduler with the measured delta time, renders the controller's frame
// and publishes it over MQTT. A nil client renders without publishing.
type Streamer struct {
	client     mqtt.Client
	sched      *anim.Scheduler
	controller *Controller
	topic      string
	frameRate  float64
}

// NewStreamer builds the scheduler, scenes and controller from config.
func NewStreamer(config Config, client mqtt.Client) (*Streamer, error) {
	sched := anim.NewScheduler()
	numPixels := config.NumPixels()

	gradient := GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquiose
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}

	easing, err := anim.ParseEasing(config.Scenes.SweepEasing)
	if err != nil {
		return nil, err
	}
	sweepMs := config.Scenes.SweepMs
	if sweepMs <= 0 {
		sweepMs = 6000
	}
	sweep, err := NewGradientSweep(sched, gradient, numPixels, 180,
		time.Duration(sweepMs)*time.Millisecond, easing)
	if err != nil {
		return nil, err
	}

	spring, err := SpringPreset(config.Scenes.PulseSpring)
	if err != nil {
		return nil, err
	}
	pulse, err := NewPulse(sched, numPixels, spring)
	if err != nil {
		return nil, err
	}

	cycleSecs := config.Scenes.CycleSecs
	if cycleSecs <= 0 {
		cycleSecs = 30
	}
	controller, err := NewController(sched, []Scene{sweep, pulse},
		time.Duration(cycleSecs*float64(time.Second)))
	if err != nil {
		return nil, err
	}

	s := new(Streamer)
	s.client = client
	s.sched = sched
	s.controller = controller
	s.topic = config.Mqtt.Topics.Stream
	s.frameRate = config.FrameRate()

	return s, nil
}

// Scheduler exposes the animation scheduler, e.g. for the stats API.
func (s *Streamer) Scheduler() *anim.Scheduler {
	return s.sched
}

// SendFrame advances all animations by dt and publishes the rendered frame.
// When nothing needs another frame and no scene transition is in flight, the
// render and publish are skipped so an idle strip costs nothing per tick.
func (s *Streamer) SendFrame(dt float64) {
	s.sched.Tick(dt)
	if !s.sched.HasActiveAnimations() && !s.controller.Transitioning() {
		return
	}
	f := s.controller.CalculateFrame(dt)
	if s.client == nil {
		return
	}
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.topic, 0, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously, cycling scenes in
// the background.
func (s *Streamer) Run() {
	go s.controller.Run()

	interval := time.Duration(float64(time.Second) / s.frameRate)
	publishTimer := time.NewTicker(interval)
	last := time.Now()
	for now := range publishTimer.C {
		dt := now.Sub(last).Seconds()
		last = now
		s.SendFrame(dt)
	}
}
