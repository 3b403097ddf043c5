// Package analysis summarizes recorded timelines.
//
// A [Summary] reports the spread of a series and, through [PowerSpectrum],
// the period of its strongest oscillation:
//
//	s := analysis.Summarize(result.Series("balls"), 0.1)
//	fmt.Println(s.Mean, s.Period)
package analysis
