package savgol

import "fmt"

// Parameter limits accepted by [New] and [Design].
const (
	MaxHalfWindow = 32
	MaxPolyOrder  = 10
	MaxDerivative = 4
)

// Config holds the parameters of a Savitzky-Golay filter. A Config is
// validated once during construction and is immutable afterwards.
type Config struct {
	// HalfWindow is the window radius n; the window spans 2n+1 samples.
	HalfWindow int
	// PolyOrder is the degree of the local fitting polynomial.
	PolyOrder int
	// Derivative is the order of the derivative to estimate (0 = smoothing).
	Derivative int
	// TimeStep is the sample spacing; derivative output is scaled by
	// 1/TimeStep^Derivative.
	TimeStep float64
	// Boundary selects the edge policy for [Filter.Apply].
	Boundary Boundary
}

// Option mutates a Config prior to validation.
type Option func(*Config)

// WithDerivative sets the derivative order to estimate.
func WithDerivative(order int) Option {
	return func(cfg *Config) {
		cfg.Derivative = order
	}
}

// WithTimeStep sets the sample spacing.
func WithTimeStep(dt float64) Option {
	return func(cfg *Config) {
		cfg.TimeStep = dt
	}
}

// WithBoundary sets the edge policy.
func WithBoundary(mode Boundary) Option {
	return func(cfg *Config) {
		cfg.Boundary = mode
	}
}

// DefaultConfig returns a smoothing configuration: derivative 0, unit time
// step, polynomial boundary handling.
func DefaultConfig(halfWindow, polyOrder int) Config {
	return Config{
		HalfWindow: halfWindow,
		PolyOrder:  polyOrder,
		TimeStep:   1,
		Boundary:   BoundaryPolynomial,
	}
}

// WindowSize returns the window length 2n+1.
func (c Config) WindowSize() int {
	return 2*c.HalfWindow + 1
}

// Validate checks all parameter invariants in order and returns the first
// violation. A Config that validates produces a well-posed least-squares
// problem: the normal matrix is positive definite whenever PolyOrder is less
// than the window size.
func (c Config) Validate() error {
	if c.HalfWindow < 1 || c.HalfWindow > MaxHalfWindow {
		return fmt.Errorf("%w: %d", ErrInvalidHalfWindow, c.HalfWindow)
	}
	w := c.WindowSize()
	if c.PolyOrder < 0 || c.PolyOrder > MaxPolyOrder || c.PolyOrder >= w {
		return fmt.Errorf("%w: order %d, window %d", ErrInvalidPolyOrder, c.PolyOrder, w)
	}
	if c.Derivative < 0 || c.Derivative > MaxDerivative || c.Derivative > c.PolyOrder {
		return fmt.Errorf("%w: derivative %d, order %d", ErrInvalidDerivative, c.Derivative, c.PolyOrder)
	}
	if !(c.TimeStep > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTimeStep, c.TimeStep)
	}
	switch c.Boundary {
	case BoundaryPolynomial, BoundaryReflect, BoundaryPeriodic, BoundaryConstant:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBoundary, int(c.Boundary))
	}
	return nil
}
