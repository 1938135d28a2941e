package savgol

import "errors"

// Errors returned by kernel design, filter construction, and application.
var (
	ErrInvalidHalfWindow = errors.New("savgol: half-window size must be in [1, 32]")
	ErrInvalidPolyOrder  = errors.New("savgol: polynomial order must be in [0, 10] and less than the window size")
	ErrInvalidDerivative = errors.New("savgol: derivative order must be in [0, 4] and not exceed the polynomial order")
	ErrInvalidTimeStep   = errors.New("savgol: time step must be positive")
	ErrInvalidBoundary   = errors.New("savgol: unknown boundary mode")
	ErrInvalidTarget     = errors.New("savgol: target offset must be within the window")
	ErrWindowTooLarge    = errors.New("savgol: window size exceeds signal length")
	ErrEmptyKernel       = errors.New("savgol: empty kernel")
	ErrReleased          = errors.New("savgol: filter has been released")
)
