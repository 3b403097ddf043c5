package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/san-kum/ballpit/internal/arena"
	"github.com/san-kum/ballpit/internal/sim"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrUnknownKind   = errors.New("automation: unknown ball kind")
	ErrInvalidStep   = errors.New("automation: invalid step")
)

// Action names accepted in scenario files.
const (
	ActionSpawn       = "spawn"
	ActionSpecific    = "specific"
	ActionEvent       = "event"
	ActionRandomEvent = "random_event"
	ActionPause       = "pause"
	ActionResume      = "resume"
	ActionReset       = "reset"
)

// Scenario defines a scripted sequence of arena actions
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single timed action
type ScenarioStep struct {
	At     float64 `yaml:"at"`
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	Kind   string  `yaml:"kind,omitempty"`
	Event  string  `yaml:"event,omitempty"`
}

// LoadScenario loads and validates a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate checks every step without touching an arena.
func (s *Scenario) Validate() error {
	for i, step := range s.Steps {
		if step.At < 0 {
			return fmt.Errorf("step %d: %w: negative time %f", i+1, ErrInvalidStep, step.At)
		}
		if step.Count < 0 {
			return fmt.Errorf("step %d: %w: negative count %d", i+1, ErrInvalidStep, step.Count)
		}
		switch strings.ToLower(step.Action) {
		case ActionSpawn, ActionRandomEvent, ActionPause, ActionResume, ActionReset:
		case ActionSpecific:
			if _, err := arena.ParseVariant(step.Kind); err != nil {
				return fmt.Errorf("step %d: %w: %w", i+1, ErrUnknownKind, err)
			}
		case ActionEvent:
			if _, err := arena.ParseEvent(step.Event); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		default:
			return fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownAction, step.Action)
		}
	}
	return nil
}

// Duration is the time of the last step.
func (s *Scenario) Duration() float64 {
	d := 0.0
	for _, step := range s.Steps {
		if step.At > d {
			d = step.At
		}
	}
	return d
}

// Apply performs one step on a.
func (step ScenarioStep) Apply(a *arena.Arena) error {
	switch strings.ToLower(step.Action) {
	case ActionSpawn:
		x, y := step.X, step.Y
		if x == 0 && y == 0 {
			x, y = a.Bounds().Center()
		}
		for i := 0; i < max(step.Count, 1); i++ {
			a.CreateBallAt(x, y)
		}
	case ActionSpecific:
		v, err := arena.ParseVariant(step.Kind)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnknownKind, err)
		}
		for i := 0; i < max(step.Count, 1); i++ {
			if _, err := a.CreateSpecificBall(v); err != nil {
				return err
			}
		}
	case ActionEvent:
		e, err := arena.ParseEvent(step.Event)
		if err != nil {
			return err
		}
		return a.ForceEvent(e)
	case ActionRandomEvent:
		a.RandomEvent()
	case ActionPause:
		a.SetPaused(true)
	case ActionResume:
		a.SetPaused(false)
	case ActionReset:
		a.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
	return nil
}

// Driver returns a hook that fires each step once, in time order, as soon
// as the run clock reaches it. Steps with equal times keep file order.
func (s *Scenario) Driver() sim.Hook {
	steps := make([]ScenarioStep, len(s.Steps))
	copy(steps, s.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].At < steps[j].At })

	next := 0
	return func(a *arena.Arena, t float64) {
		for next < len(steps) && steps[next].At <= t+1e-9 {
			// validated scenarios never fail here
			_ = steps[next].Apply(a)
			next++
		}
	}
}

// RunScenario plays the scenario on the simulator's arena. The run lasts
// at least cfg.Duration and never stops before the last step.
func RunScenario(ctx context.Context, scenario *Scenario, s *sim.Simulator, cfg sim.Config) (*sim.Result, error) {
	if d := scenario.Duration() + cfg.Dt; d > cfg.Duration {
		cfg.Duration = d
	}
	s.AddHook(scenario.Driver())

	result, err := s.Run(ctx, cfg)
	if err != nil {
		return result, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return result, nil
}
