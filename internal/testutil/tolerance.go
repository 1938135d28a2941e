package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RMSError returns the root-mean-square difference between got and want over
// the index range [lo, hi).
func RMSError(t *testing.T, got, want []float64, lo, hi int) float64 {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if lo < 0 || hi > len(got) || lo >= hi {
		t.Fatalf("invalid range [%d, %d) for length %d", lo, hi, len(got))
	}
	sum := 0.0
	for i := lo; i < hi; i++ {
		d := got[i] - want[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(hi-lo))
}
