package stream

import (
	"fmt"

	"github.com/project-blinc/blinc-animation/anim"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Frame struct {
		Rate   float64 `yaml:"rate"`
		Pixels int     `yaml:"pixels"`
	} `yaml:"frame"`
	Scenes struct {
		CycleSecs   float64 `yaml:"cycleSecs"`
		SweepMs     int     `yaml:"sweepMs"`
		SweepEasing string  `yaml:"sweepEasing"`
		PulseSpring string  `yaml:"pulseSpring"`
	} `yaml:"scenes"`
}

func (c Config) FrameRate() float64 {
	if c.Frame.Rate <= 0 {
		return 30
	}
	return c.Frame.Rate
}

func (c Config) NumPixels() int {
	if c.Frame.Pixels <= 0 {
		return 500
	}
	return c.Frame.Pixels
}

// SpringPreset resolves the config-file preset names to spring parameters.
func SpringPreset(name string) (anim.SpringConfig, error) {
	switch name {
	case "gentle":
		return anim.SpringGentle, nil
	case "", "default":
		return anim.SpringDefault, nil
	case "bouncy":
		return anim.SpringBouncy, nil
	case "stiff":
		return anim.SpringStiff, nil
	}
	return anim.SpringConfig{}, fmt.Errorf("unknown spring preset %q", name)
}
