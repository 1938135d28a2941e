package savgol

// Boundary selects how [Filter.Apply] produces output near the signal edges,
// where the sliding window would extend past the available samples.
type Boundary int

const (
	// BoundaryPolynomial keeps the window inside the signal and switches to
	// an asymmetric kernel whose target offset matches the edge position.
	// Only real samples are used; nothing is synthesized.
	BoundaryPolynomial Boundary = iota

	// BoundaryReflect mirrors the signal about its end points without
	// repeating the edge sample: index -k maps to k, index N-1+k to N-1-k.
	BoundaryReflect

	// BoundaryPeriodic wraps indices around, treating the signal as one
	// period of a cyclic sequence.
	BoundaryPeriodic

	// BoundaryConstant clamps out-of-range indices to the first or last
	// sample (edge replication).
	BoundaryConstant
)

// String returns the boundary mode name.
func (b Boundary) String() string {
	switch b {
	case BoundaryPolynomial:
		return "polynomial"
	case BoundaryReflect:
		return "reflect"
	case BoundaryPeriodic:
		return "periodic"
	case BoundaryConstant:
		return "constant"
	}
	return "unknown"
}

// extendIndex maps a possibly out-of-range sample index onto [0, size-1]
// according to the boundary mode. BoundaryPolynomial never synthesizes
// samples and must not reach this function.
func extendIndex(k, size int, mode Boundary) int {
	switch mode {
	case BoundaryReflect:
		if k < 0 {
			return -k
		}
		if k >= size {
			return 2*(size-1) - k
		}
	case BoundaryPeriodic:
		k %= size
		if k < 0 {
			k += size
		}
	case BoundaryConstant:
		if k < 0 {
			return 0
		}
		if k >= size {
			return size - 1
		}
	}
	return k
}
