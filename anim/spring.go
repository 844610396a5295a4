package anim

import "math"

// SpringConfig describes a damped harmonic oscillator.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Presets. Values follow the usual UI spring feel: gentle for page
// transitions, bouncy for playful overshoot, stiff for buttons.
var (
	SpringGentle  = SpringConfig{Stiffness: 120, Damping: 14, Mass: 1}
	SpringDefault = SpringConfig{Stiffness: 170, Damping: 26, Mass: 1}
	SpringBouncy  = SpringConfig{Stiffness: 180, Damping: 12, Mass: 1}
	SpringStiff   = SpringConfig{Stiffness: 400, Damping: 30, Mass: 1}
)

// Validate rejects parameters the integrator cannot handle.
func (c SpringConfig) Validate() error {
	if c.Mass <= 0 {
		return &ConfigError{Field: "mass", Reason: "must be positive"}
	}
	if c.Stiffness <= 0 {
		return &ConfigError{Field: "stiffness", Reason: "must be positive"}
	}
	if c.Damping < 0 {
		return &ConfigError{Field: "damping", Reason: "must not be negative"}
	}
	return nil
}

// CriticalDamping returns the damping at which the spring settles fastest
// without oscillating.
func (c SpringConfig) CriticalDamping() float64 {
	return 2 * math.Sqrt(c.Stiffness*c.Mass)
}

// Underdamped reports whether the spring will overshoot and oscillate.
func (c SpringConfig) Underdamped() bool {
	return c.Damping < c.CriticalDamping()
}

// Overdamped reports whether the spring settles slowly without oscillating.
func (c SpringConfig) Overdamped() bool {
	return c.Damping > c.CriticalDamping()
}

// Settling tolerances and integration step limits. Tunables, not contract:
// being within 0.01 of target with velocity under 0.01/s is imperceptible.
// Steps longer than maxStableStep (a dropped frame) are subdivided into
// substep-sized RK4 steps to preserve stability.
const (
	positionEpsilon = 0.01
	velocityEpsilon = 0.01
	maxStableStep   = 1.0 / 30
	substep         = 1.0 / 120
)

// Spring simulates a damped harmonic oscillator pulling a value toward a
// target. It is not synchronized; wrap it in a Value handle when it is
// mutated from outside the tick loop.
type Spring struct {
	config   SpringConfig
	position float64
	velocity float64
	target   float64
	settled  bool
}

// NewSpring creates a spring at rest at zero.
func NewSpring(config SpringConfig) (*Spring, error) {
	return NewSpringAt(config, 0)
}

// NewSpringAt creates a spring at rest at the given initial value.
func NewSpringAt(config SpringConfig, initial float64) (*Spring, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Spring{config: config, position: initial, target: initial, settled: true}, nil
}

func (s *Spring) Value() float64    { return s.position }
func (s *Spring) Velocity() float64 { return s.velocity }
func (s *Spring) Target() float64   { return s.target }
func (s *Spring) IsSettled() bool   { return s.settled }

// AnimateTo retargets the spring. Position and velocity are left untouched,
// so a spring interrupted mid-flight continues from its current motion.
// Retargeting to the current target is a no-op and does not unsettle.
func (s *Spring) AnimateTo(target float64) {
	if target == s.target {
		return
	}
	s.target = target
	s.settled = false
}

// SetVelocity overrides the velocity directly, e.g. for drag hand-off.
func (s *Spring) SetVelocity(v float64) {
	s.velocity = v
	if v != 0 {
		s.settled = false
	}
}

// SnapTo jumps to a value with no animation.
func (s *Spring) SnapTo(value float64) {
	s.position = value
	s.target = value
	s.velocity = 0
	s.settled = true
}

// Update advances the simulation by dt seconds using RK4 integration and
// returns the new position. A settled spring does not move until it is
// retargeted.
func (s *Spring) Update(dt float64) float64 {
	if s.settled || dt <= 0 {
		return s.position
	}

	steps := 1
	if dt > maxStableStep {
		steps = int(math.Ceil(dt / substep))
	}
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		s.rk4(h)
	}

	if math.Abs(s.position-s.target) < positionEpsilon && math.Abs(s.velocity) < velocityEpsilon {
		s.position = s.target
		s.velocity = 0
		s.settled = true
	}
	return s.position
}

func (s *Spring) rk4(dt float64) {
	k1v := s.accel(s.position, s.velocity)
	k1x := s.velocity

	k2v := s.accel(s.position+k1x*dt*0.5, s.velocity+k1v*dt*0.5)
	k2x := s.velocity + k1v*dt*0.5

	k3v := s.accel(s.position+k2x*dt*0.5, s.velocity+k2v*dt*0.5)
	k3x := s.velocity + k2v*dt*0.5

	k4v := s.accel(s.position+k3x*dt, s.velocity+k3v*dt)
	k4x := s.velocity + k3v*dt

	s.velocity += (k1v + 2*k2v + 2*k3v + k4v) * dt / 6
	s.position += (k1x + 2*k2x + 2*k3x + k4x) * dt / 6
}

func (s *Spring) accel(x, v float64) float64 {
	return (s.config.Stiffness*(s.target-x) - s.config.Damping*v) / s.config.Mass
}
