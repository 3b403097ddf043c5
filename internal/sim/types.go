package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/ballpit/internal/arena"
)

var ErrInvalidConfig = errors.New("sim: invalid run config")

// Metric folds the arena state into a single number over a run.
type Metric interface {
	Name() string
	Observe(a *arena.Arena, t float64)
	Value() float64
	Reset()
}

// Hook runs before every tick. Scenario drivers use it to inject taps and
// events at scripted times.
type Hook func(a *arena.Arena, t float64)

// Condition is checked after every tick. Returning true ends the run.
type Condition func(a *arena.Arena, t float64) bool

// MinBalls holds once the arena has at least n balls.
func MinBalls(n int) Condition {
	return func(a *arena.Arena, _ float64) bool { return a.Len() >= n }
}

type Config struct {
	Dt          float64
	Duration    float64
	Seed        int64
	SampleEvery int
}

func DefaultConfig() Config {
	return Config{
		Dt:          1.0 / 60,
		Duration:    60,
		SampleEvery: 6,
	}
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	if c.SampleEvery <= 0 {
		return fmt.Errorf("%w: sample interval must be positive, got %d", ErrInvalidConfig, c.SampleEvery)
	}
	return nil
}

// Sample is one row of the run timeline.
type Sample struct {
	Time   float64
	Balls  int
	Energy float64
	Event  arena.Event
}

type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	Stats      arena.Stats
	StepsTaken int
	// Stopped is set when a stop condition ended the run early.
	Stopped bool
}

// Series extracts one column of the timeline for plotting.
func (r *Result) Series(field string) []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		switch field {
		case "energy":
			out[i] = s.Energy
		case "time":
			out[i] = s.Time
		default:
			out[i] = float64(s.Balls)
		}
	}
	return out
}
