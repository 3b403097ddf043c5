package arena

import "fmt"

// Stats is a read-only snapshot of the arena counters.
type Stats struct {
	Balls           int
	TotalBalls      int
	TotalRainbow    int
	TotalEvolutive  int
	TotalEvents     int
	TotalExplosions int
	Elapsed         float64
	Event           Event
	EventRemaining  float64
	SpeedScale      float64
	Paused          bool
}

func (a *Arena) Stats() Stats {
	return Stats{
		Balls:           len(a.balls),
		TotalBalls:      a.totalBalls,
		TotalRainbow:    a.totalRainbow,
		TotalEvolutive:  a.totalEvolutive,
		TotalEvents:     a.totalEvents,
		TotalExplosions: a.totalExplosions,
		Elapsed:         a.elapsed,
		Event:           a.event,
		EventRemaining:  a.eventTimer,
		SpeedScale:      a.speedScale,
		Paused:          a.paused,
	}
}

// Clock formats the elapsed time as mm:ss.
func (s Stats) Clock() string {
	total := int(s.Elapsed)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Lines renders the stats panel text.
func (s Stats) Lines() []string {
	return []string{
		"STATS",
		"",
		fmt.Sprintf("Total balls: %d", s.TotalBalls),
		fmt.Sprintf("Rainbow balls: %d", s.TotalRainbow),
		fmt.Sprintf("Growing balls: %d", s.TotalEvolutive),
		fmt.Sprintf("Explosions: %d", s.TotalExplosions),
		fmt.Sprintf("Events: %d", s.TotalEvents),
		fmt.Sprintf("Time: %s", s.Clock()),
	}
}
