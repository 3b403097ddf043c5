package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the DFT. Bin k
// is k cycles over the whole series. Any length works, no padding.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	f := fft.FFTReal(data)
	ps := make([]float64, len(f)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(f[i])
	}
	return ps
}
