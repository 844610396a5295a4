package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/project-blinc/blinc-animation/anim"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, 30.0, c.FrameRate())
	assert.Equal(t, 500, c.NumPixels())
}

func TestConfigUnmarshal(t *testing.T) {
	doc := `
mqtt:
  url: tcp://localhost:1883
  topics:
    stream: home/leds
frame:
  rate: 60
  pixels: 120
scenes:
  cycleSecs: 45
  sweepEasing: ease-in-out
  pulseSpring: bouncy
`
	var c Config
	require.NoError(t, yaml.Unmarshal([]byte(doc), &c))

	assert.Equal(t, "tcp://localhost:1883", c.Mqtt.URL)
	assert.Equal(t, "home/leds", c.Mqtt.Topics.Stream)
	assert.Equal(t, 60.0, c.FrameRate())
	assert.Equal(t, 120, c.NumPixels())
	assert.Equal(t, 45.0, c.Scenes.CycleSecs)
	assert.Equal(t, "bouncy", c.Scenes.PulseSpring)
}

func TestSpringPreset(t *testing.T) {
	for name, want := range map[string]anim.SpringConfig{
		"":        anim.SpringDefault,
		"default": anim.SpringDefault,
		"gentle":  anim.SpringGentle,
		"bouncy":  anim.SpringBouncy,
		"stiff":   anim.SpringStiff,
	} {
		got, err := SpringPreset(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := SpringPreset("wobbly")
	require.Error(t, err)
}
