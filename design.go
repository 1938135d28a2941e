package savgol

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Design computes the Savitzky-Golay convolution kernel that evaluates the
// deriv-th derivative of a least-squares polynomial fit at the given target
// offset within the window.
//
// The window spans w = 2*halfWindow+1 samples and target is measured from its
// left edge, so target = halfWindow is the centered case. The returned kernel
// has length w; dotting it with w consecutive samples yields the filtered
// value at the target position. Derivative kernels are scaled by
// 1/timeStep^deriv to convert from sample-index units to physical units.
func Design(halfWindow, polyOrder, deriv int, timeStep float64, target int) ([]float64, error) {
	if halfWindow < 1 || halfWindow > MaxHalfWindow {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHalfWindow, halfWindow)
	}
	w := 2*halfWindow + 1
	if polyOrder < 0 || polyOrder > MaxPolyOrder || polyOrder >= w {
		return nil, fmt.Errorf("%w: order %d, window %d", ErrInvalidPolyOrder, polyOrder, w)
	}
	if deriv < 0 || deriv > MaxDerivative || deriv > polyOrder {
		return nil, fmt.Errorf("%w: derivative %d, order %d", ErrInvalidDerivative, deriv, polyOrder)
	}
	if !(timeStep > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeStep, timeStep)
	}
	if target < 0 || target >= w {
		return nil, fmt.Errorf("%w: target %d, window %d", ErrInvalidTarget, target, w)
	}
	return designKernel(halfWindow, polyOrder, deriv, timeStep, target)
}

// designKernel solves the least-squares fit for one target offset. Parameter
// invariants are checked by the callers.
//
// The fit to window samples y has coefficients beta = (AᵀA)⁻¹Aᵀy with
// A[i][j] = (i-target)^j, and the deriv-th derivative of the fitted
// polynomial at the target point is deriv! * beta[deriv]. Since that is
// linear in y, the kernel is A * x with (AᵀA) x = e_deriv, scaled by
// deriv!/timeStep^deriv.
func designKernel(halfWindow, polyOrder, deriv int, timeStep float64, target int) ([]float64, error) {
	w := 2*halfWindow + 1
	terms := polyOrder + 1

	// Design matrix: columns are powers of the offset from the target point.
	a := mat.NewDense(w, terms, nil)
	for i := range w {
		x := float64(i - target)
		p := 1.0
		for j := range terms {
			a.Set(i, j, p)
			p *= x
		}
	}

	// Normal matrix AᵀA, symmetric positive definite for polyOrder < w.
	var ata mat.SymDense
	ata.SymOuterK(1, a.T())

	var chol mat.Cholesky
	if !chol.Factorize(&ata) {
		return nil, fmt.Errorf("savgol: normal matrix not positive definite (half-window %d, order %d)", halfWindow, polyOrder)
	}

	rhs := mat.NewVecDense(terms, nil)
	rhs.SetVec(deriv, 1)
	var sol mat.VecDense
	if err := chol.SolveVecTo(&sol, rhs); err != nil {
		return nil, fmt.Errorf("savgol: normal equations solve: %w", err)
	}

	var k mat.VecDense
	k.MulVec(a, &sol)

	scale := factorial(deriv) / math.Pow(timeStep, float64(deriv))
	kernel := make([]float64, w)
	for i := range kernel {
		kernel[i] = scale * k.AtVec(i)
	}
	return kernel, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
