package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trackball/internal/gesture"
)

const (
	DefaultWidth     = 800.0
	DefaultHeight    = 600.0
	DefaultSamples   = 120
	DefaultFrameRate = 30
)

type Config struct {
	Screen    ScreenConfig  `yaml:"screen"`
	Gesture   GestureConfig `yaml:"gesture"`
	FrameRate int           `yaml:"frame_rate"`
}

// ScreenConfig is the pointer coordinate range, matching the window the
// samples were captured on.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type GestureConfig struct {
	Name    string  `yaml:"name"`
	Samples int     `yaml:"samples"`
	FromX   float64 `yaml:"from_x"`
	FromY   float64 `yaml:"from_y"`
	ToX     float64 `yaml:"to_x"`
	ToY     float64 `yaml:"to_y"`
	Radius  float64 `yaml:"radius"`
	Turns   float64 `yaml:"turns"`
}

func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Gesture: GestureConfig{
			Name:    "sweep",
			Samples: DefaultSamples,
		},
		FrameRate: DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GestureSpec maps the configured gesture onto a generator spec.
func (c *Config) GestureSpec() gesture.Spec {
	return gesture.Spec{
		Name:    c.Gesture.Name,
		Samples: c.Gesture.Samples,
		FromX:   c.Gesture.FromX,
		FromY:   c.Gesture.FromY,
		ToX:     c.Gesture.ToX,
		ToY:     c.Gesture.ToY,
		Radius:  c.Gesture.Radius,
		Turns:   c.Gesture.Turns,
	}
}
