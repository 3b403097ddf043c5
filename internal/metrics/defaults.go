package metrics

import "github.com/san-kum/ballpit/internal/sim"

// Default returns the metric set attached to headless runs.
func Default(crowdThreshold int) []sim.Metric {
	return []sim.Metric{
		NewPeakBalls(),
		NewEnergy(),
		NewMeanSpeed(),
		NewCrowding(crowdThreshold),
		NewEventTime(),
	}
}
