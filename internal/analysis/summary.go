package analysis

import "math"

type Summary struct {
	Samples int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
	// Period of the strongest non-constant frequency, in seconds. Zero when
	// the series is too short or flat.
	Period float64
}

// Summarize describes values sampled every interval seconds.
func Summarize(values []float64, interval float64) Summary {
	s := Summary{Samples: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Min, s.Max = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(values))

	ss := 0.0
	for _, v := range values {
		d := v - s.Mean
		ss += d * d
	}
	s.StdDev = math.Sqrt(ss / float64(len(values)))

	s.Period = dominantPeriod(values, s.Mean, interval)
	return s
}

func dominantPeriod(values []float64, mean, interval float64) float64 {
	if len(values) < 4 || interval <= 0 {
		return 0
	}
	centered := make([]float64, len(values))
	for i, v := range values {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	best, bestPow := 0, 1e-9
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPow {
			best, bestPow = k, ps[k]
		}
	}
	if best == 0 {
		return 0
	}
	return float64(len(values)) * interval / float64(best)
}
