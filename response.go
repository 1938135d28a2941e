package savgol

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response computes the complex frequency response H(e^{-jw}) of a kernel at
// the given frequency (Hz) and sample rate (Hz).
//
// A smoothing kernel has unit response at DC; a derivative kernel has zero
// DC response.
func Response(kernel []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range kernel {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func MagnitudeDB(kernel []float64, freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Response(kernel, freqHz, sampleRate)))
}

// MagnitudeSpectrum returns |H[k]| for the first fftSize/2+1 bins of an
// fftSize-point FFT of the zero-padded kernel. fftSize must be at least the
// kernel length and is typically a power of two.
func MagnitudeSpectrum(kernel []float64, fftSize int) ([]float64, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if fftSize < len(kernel) {
		return nil, fmt.Errorf("savgol: fft size %d smaller than kernel length %d", fftSize, len(kernel))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("savgol: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, c := range kernel {
		in[i] = complex(c, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("savgol: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}
	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return out, nil
}
