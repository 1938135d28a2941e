package testutil

import (
	"math"
	"math/rand"
)

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates the linear signal slope*i + offset.
func Ramp(slope, offset float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = slope*float64(i) + offset
	}
	return out
}

// Polynomial evaluates the polynomial with the given coefficients (constant
// term first) at i = 0..length-1.
func Polynomial(coeffs []float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		x := float64(i)
		p := 1.0
		for _, c := range coeffs {
			out[i] += c * p
			p *= x
		}
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
