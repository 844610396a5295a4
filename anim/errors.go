package anim

import (
	"errors"
	"fmt"
)

// ConfigError reports invalid construction parameters for an animation.
// It is only ever returned from constructors, never mid-simulation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("animation config: %s %s", e.Field, e.Reason)
}

// ErrDuplicateEntry is returned when a timeline entry id is reused.
var ErrDuplicateEntry = errors.New("duplicate timeline entry id")
