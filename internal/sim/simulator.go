package sim

import (
	"context"

	"github.com/san-kum/ballpit/internal/arena"
)

// Simulator drives an arena headless at a fixed timestep.
type Simulator struct {
	arena   *arena.Arena
	metrics []Metric
	hooks   []Hook
	stop    Condition
}

func New(a *arena.Arena) *Simulator {
	return &Simulator{
		arena:   a,
		metrics: make([]Metric, 0),
		hooks:   make([]Hook, 0),
	}
}

func (s *Simulator) Arena() *arena.Arena { return s.arena }
func (s *Simulator) AddMetric(m Metric)  { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddHook(h Hook)      { s.hooks = append(s.hooks, h) }

// StopWhen ends runs early once c holds after a tick.
func (s *Simulator) StopWhen(c Condition) { s.stop = c }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration/cfg.Dt + 0.5)
	result := &Result{
		Samples: make([]Sample, 0, steps/cfg.SampleEvery+2),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	result.Samples = append(result.Samples, s.sample(t))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, h := range s.hooks {
			h(s.arena, t)
		}

		s.arena.Tick(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(s.arena, t)
		}
		sampled := result.StepsTaken%cfg.SampleEvery == 0
		if sampled {
			result.Samples = append(result.Samples, s.sample(t))
		}
		if s.stop != nil && s.stop(s.arena, t) {
			if !sampled {
				result.Samples = append(result.Samples, s.sample(t))
			}
			result.Stopped = true
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Stats = s.arena.Stats()
	return result, nil
}

func (s *Simulator) sample(t float64) Sample {
	return Sample{
		Time:   t,
		Balls:  s.arena.Len(),
		Energy: s.arena.KineticEnergy(),
		Event:  s.arena.ActiveEvent(),
	}
}
