package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballpit/internal/arena"
)

const (
	DefaultWidth       = 800.0
	DefaultHeight      = 600.0
	DefaultBarHeight   = 90.0
	DefaultFPS         = 60
	DefaultDuration    = 60.0
	DefaultSampleEvery = 6
	DefaultTheme       = "cyberpunk"
	DefaultBackend     = "raylib"
)

var (
	ErrInvalidArena  = errors.New("config: arena dimensions must be positive and leave room above the bar")
	ErrInvalidTiming = errors.New("config: timing values must be positive")
)

type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Timing TimingConfig `yaml:"timing"`
	Seed   int64        `yaml:"seed"`
	Run    RunConfig    `yaml:"run"`
	View   ViewConfig   `yaml:"view"`
}

type ArenaConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BarHeight float64 `yaml:"bar_height"`
}

type TimingConfig struct {
	FPS           int     `yaml:"fps"`
	EventDuration float64 `yaml:"event_duration"`
}

type RunConfig struct {
	Duration    float64 `yaml:"duration"`
	SampleEvery int     `yaml:"sample_every"`
	Scenario    string  `yaml:"scenario"`
}

type ViewConfig struct {
	Theme   string `yaml:"theme"`
	Sound   bool   `yaml:"sound"`
	Backend string `yaml:"backend"`
}

func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			BarHeight: DefaultBarHeight,
		},
		Timing: TimingConfig{
			FPS:           DefaultFPS,
			EventDuration: arena.EventDuration,
		},
		Run: RunConfig{
			Duration:    DefaultDuration,
			SampleEvery: DefaultSampleEvery,
		},
		View: ViewConfig{
			Theme:   DefaultTheme,
			Backend: DefaultBackend,
		},
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
	if err := cfg.Validate(); err != nil {
		return nil, err
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

func (c *Config) Validate() error {
	a := c.Arena
	if a.Width <= 0 || a.Height <= 0 || a.BarHeight < 0 || a.BarHeight >= a.Height {
		return fmt.Errorf("%w: %gx%g bar %g", ErrInvalidArena, a.Width, a.Height, a.BarHeight)
	}
	if c.Timing.FPS <= 0 || c.Timing.EventDuration <= 0 {
		return fmt.Errorf("%w: fps %d, event duration %g", ErrInvalidTiming, c.Timing.FPS, c.Timing.EventDuration)
	}
	if c.Run.Duration <= 0 || c.Run.SampleEvery <= 0 {
		return fmt.Errorf("%w: duration %g, sample every %d", ErrInvalidTiming, c.Run.Duration, c.Run.SampleEvery)
	}
	return nil
}

// Bounds converts the arena section into walls for the simulation.
func (c *Config) Bounds() arena.Bounds {
	return arena.Bounds{
		Width:  c.Arena.Width,
		Height: c.Arena.Height,
		Floor:  c.Arena.BarHeight,
	}
}

// Dt is the fixed frame step.
func (c *Config) Dt() float64 { return 1 / float64(c.Timing.FPS) }
