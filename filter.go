package savgol

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Filter is a reusable Savitzky-Golay filter with precomputed kernels.
//
// A Filter is immutable after construction and safe for concurrent use by
// multiple goroutines, provided [Filter.Release] is not called while an
// apply call is in flight on the same filter. It holds no reference to any
// signal passed to it.
type Filter struct {
	cfg      Config
	window   int
	kernels  [][]float64 // indexed by target offset within the window
	released bool
}

// New creates a filter with the given half-window size and polynomial order.
// Options override the defaults of [DefaultConfig]: derivative 0, time step
// 1, [BoundaryPolynomial] edge handling.
func New(halfWindow, polyOrder int, opts ...Option) (*Filter, error) {
	cfg := DefaultConfig(halfWindow, polyOrder)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a filter from a fully specified configuration.
//
// The centered kernel is always designed; for [BoundaryPolynomial] the full
// table of 2n+1 kernels (one per target offset) is designed as well, so that
// edge positions can be evaluated with an asymmetric fit against real
// samples. On any error no filter is returned.
func NewWithConfig(cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := cfg.WindowSize()
	f := &Filter{
		cfg:     cfg,
		window:  w,
		kernels: make([][]float64, w),
	}

	center, err := designKernel(cfg.HalfWindow, cfg.PolyOrder, cfg.Derivative, cfg.TimeStep, cfg.HalfWindow)
	if err != nil {
		return nil, err
	}
	f.kernels[cfg.HalfWindow] = center

	if cfg.Boundary == BoundaryPolynomial {
		for t := range w {
			if t == cfg.HalfWindow {
				continue
			}
			k, err := designKernel(cfg.HalfWindow, cfg.PolyOrder, cfg.Derivative, cfg.TimeStep, t)
			if err != nil {
				return nil, err
			}
			f.kernels[t] = k
		}
	}
	return f, nil
}

// Config returns the filter configuration.
func (f *Filter) Config() Config {
	return f.cfg
}

// WindowSize returns the window length 2n+1.
func (f *Filter) WindowSize() int {
	return f.window
}

// Kernel returns a copy of the centered kernel, or nil after Release.
func (f *Filter) Kernel() []float64 {
	if f.released {
		return nil
	}
	k := make([]float64, f.window)
	copy(k, f.kernels[f.cfg.HalfWindow])
	return k
}

// Apply filters the signal and returns a new slice of the same length. The
// input is never modified.
//
// Interior positions, where the window fits entirely inside the signal, use
// the centered kernel. Edge positions follow the configured [Boundary]
// policy. Apply fails with [ErrWindowTooLarge] if the signal is shorter than
// the window and with [ErrReleased] after [Filter.Release].
func (f *Filter) Apply(signal []float64) ([]float64, error) {
	if f.released {
		return nil, ErrReleased
	}
	n := f.cfg.HalfWindow
	size := len(signal)
	if size < f.window {
		return nil, fmt.Errorf("%w: window %d, signal %d", ErrWindowTooLarge, f.window, size)
	}

	out := make([]float64, size)
	center := f.kernels[n]
	for i := n; i <= size-1-n; i++ {
		out[i] = floats.Dot(center, signal[i-n:i+n+1])
	}

	if f.cfg.Boundary == BoundaryPolynomial {
		// Shift the window inward and pick the kernel whose target offset
		// matches where the edge position falls within the shifted window.
		for i := range n {
			out[i] = floats.Dot(f.kernels[i], signal[:f.window])
			j := size - 1 - i
			out[j] = floats.Dot(f.kernels[f.window-1-i], signal[size-f.window:])
		}
		return out, nil
	}

	scratch := make([]float64, f.window)
	for i := range n {
		f.fillWindow(scratch, signal, i)
		out[i] = floats.Dot(center, scratch)
		j := size - 1 - i
		f.fillWindow(scratch, signal, j)
		out[j] = floats.Dot(center, scratch)
	}
	return out, nil
}

// ApplyValid filters only the positions whose window is fully interior to
// the signal, returning len(signal)-2n values. Output index k corresponds to
// input index k+n. No boundary policy is involved.
func (f *Filter) ApplyValid(signal []float64) ([]float64, error) {
	if f.released {
		return nil, ErrReleased
	}
	size := len(signal)
	if size < f.window {
		return nil, fmt.Errorf("%w: window %d, signal %d", ErrWindowTooLarge, f.window, size)
	}

	out := make([]float64, size-2*f.cfg.HalfWindow)
	center := f.kernels[f.cfg.HalfWindow]
	for i := range out {
		out[i] = floats.Dot(center, signal[i:i+f.window])
	}
	return out, nil
}

// fillWindow copies the window centered on position pos into dst, remapping
// out-of-range indices per the configured boundary mode.
func (f *Filter) fillWindow(dst, signal []float64, pos int) {
	start := pos - f.cfg.HalfWindow
	for o := range dst {
		dst[o] = signal[extendIndex(start+o, len(signal), f.cfg.Boundary)]
	}
}

// Release frees the kernel table and invalidates the filter: any later
// Apply or ApplyValid call returns [ErrReleased]. Calling Release more than
// once is a no-op.
//
// Release must not run concurrently with an in-flight apply call on the same
// filter; lifetime is single-writer even though content is many-reader.
func (f *Filter) Release() {
	f.kernels = nil
	f.released = true
}
