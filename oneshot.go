package savgol

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Legacy error values. The messages are part of the original calling
// convention and are matched verbatim by existing callers; do not reword.
var (
	errCalcHalfWindow    = errors.New("Half-window size must be greater than 0.")
	errCalcPolyNegative  = errors.New("Polynomial order must be a positive integer.")
	errCalcPolyOrder     = errors.New("Polynomial order must be less than the filter window size.")
	errCalcTarget        = errors.New("Target point must be within the filter window.")
	errCalcDerivNegative = errors.New("Derivative order must be a positive integer.")
	errCalcDerivOrder    = errors.New("Derivative order must not exceed the polynomial order.")
	errCalcDataSize      = errors.New("Filter window size must not exceed data size.")
)

// Calc runs a one-shot Savitzky-Golay pass over data and returns a new slice
// of the same length. It keeps the original one-shot calling convention: a
// single kernel is designed for the given target offset within the window
// (targetPoint = halfWindow is the centered case) and slid across the whole
// signal with the target aligned to each output index. Where the window runs
// past the data, samples are clamped to the first or last value.
//
// All failures are reported as returned errors with fixed messages; Calc
// never panics. For the reusable convention with configurable boundary
// handling, use [New] and [Filter.Apply].
func Calc(halfWindow, polyOrder, targetPoint, derivative int, data []float64) ([]float64, error) {
	if halfWindow < 1 {
		return nil, errCalcHalfWindow
	}
	if polyOrder < 0 {
		return nil, errCalcPolyNegative
	}
	w := 2*halfWindow + 1
	if polyOrder >= w {
		return nil, errCalcPolyOrder
	}
	if targetPoint < 0 || targetPoint > 2*halfWindow {
		return nil, errCalcTarget
	}
	if derivative < 0 {
		return nil, errCalcDerivNegative
	}
	if derivative > polyOrder {
		return nil, errCalcDerivOrder
	}
	if len(data) < w {
		return nil, errCalcDataSize
	}

	kernel, err := designKernel(halfWindow, polyOrder, derivative, 1, targetPoint)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(data))
	scratch := make([]float64, w)
	for i := range out {
		start := i - targetPoint
		for o := range scratch {
			scratch[o] = data[extendIndex(start+o, len(data), BoundaryConstant)]
		}
		out[i] = floats.Dot(kernel, scratch)
	}
	return out, nil
}
