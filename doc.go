// Package savgol provides Savitzky-Golay smoothing and differentiation
// filters for uniformly sampled one-dimensional signals.
//
// A Savitzky-Golay filter fits a low-order polynomial to a sliding window of
// 2n+1 samples by linear least squares and evaluates the fitted polynomial
// (or one of its derivatives) at a target position inside the window. Because
// the fit is linear in the samples, the whole operation reduces to a dot
// product with a fixed kernel that only depends on the filter parameters, not
// on the data.
//
// The package offers two calling conventions over the same solver:
//
//   - [Filter] precomputes the kernel set once and applies it to any number
//     of signals via [Filter.Apply] and [Filter.ApplyValid]. Four boundary
//     policies control how output is produced where the window extends past
//     the signal ends.
//   - [Calc] is a one-shot pass with an explicit, possibly off-center target
//     offset, kept for compatibility with the original calling convention.
//
// Kernel design is also available directly through [Design], and kernel
// frequency responses can be inspected with [Response] and
// [MagnitudeSpectrum].
package savgol
