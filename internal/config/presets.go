package config

import "sort"

var Presets = map[string]*Config{
	"desktop": {
		Arena:  ArenaConfig{Width: 1280, Height: 720, BarHeight: 90},
		Timing: TimingConfig{FPS: 60, EventDuration: 20},
		Run:    RunConfig{Duration: 60, SampleEvery: 6},
		View:   ViewConfig{Theme: "cyberpunk", Backend: "raylib"},
	},
	"phone": {
		Arena:  ArenaConfig{Width: 720, Height: 1520, BarHeight: 90},
		Timing: TimingConfig{FPS: 60, EventDuration: 20},
		Run:    RunConfig{Duration: 60, SampleEvery: 6},
		View:   ViewConfig{Theme: "ocean", Backend: "ebiten"},
	},
	"terminal": {
		Arena:  ArenaConfig{Width: 800, Height: 600, BarHeight: 60},
		Timing: TimingConfig{FPS: 30, EventDuration: 20},
		Run:    RunConfig{Duration: 60, SampleEvery: 3},
		View:   ViewConfig{Theme: "retro", Backend: "raylib"},
	},
	"chaos": {
		Arena:  ArenaConfig{Width: 800, Height: 600, BarHeight: 90},
		Timing: TimingConfig{FPS: 60, EventDuration: 5},
		Run:    RunConfig{Duration: 120, SampleEvery: 6, Scenario: ""},
		View:   ViewConfig{Theme: "cyberpunk", Backend: "raylib"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
