package savgol

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestResponse_SmoothingDCGain(t *testing.T) {
	kernel, err := Design(4, 2, 0, 1, 4)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	h := Response(kernel, 0, 48000)
	if cmplx.Abs(h-1) > 1e-9 {
		t.Fatalf("DC response: got %v, want 1", h)
	}
	if db := MagnitudeDB(kernel, 0, 48000); math.Abs(db) > 1e-6 {
		t.Fatalf("DC magnitude: got %v dB, want 0", db)
	}
}

func TestResponse_DerivativeDCGain(t *testing.T) {
	kernel, err := Design(4, 2, 1, 1, 4)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if h := Response(kernel, 0, 48000); cmplx.Abs(h) > 1e-9 {
		t.Fatalf("DC response: got %v, want 0", h)
	}
}

func TestMagnitudeSpectrum(t *testing.T) {
	smoothing, err := Design(4, 2, 0, 1, 4)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	mag, err := MagnitudeSpectrum(smoothing, 64)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}
	if len(mag) != 33 {
		t.Fatalf("bins: got %d, want 33", len(mag))
	}
	if math.Abs(mag[0]-1) > 1e-9 {
		t.Fatalf("DC bin: got %v, want 1", mag[0])
	}

	deriv, err := Design(4, 2, 1, 1, 4)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	mag, err = MagnitudeSpectrum(deriv, 64)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}
	if mag[0] > 1e-9 {
		t.Fatalf("derivative DC bin: got %v, want 0", mag[0])
	}
}

func TestMagnitudeSpectrum_Errors(t *testing.T) {
	if _, err := MagnitudeSpectrum(nil, 64); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("empty kernel: got error %v, want %v", err, ErrEmptyKernel)
	}

	kernel, err := Design(4, 2, 0, 1, 4)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	if _, err := MagnitudeSpectrum(kernel, 4); err == nil {
		t.Fatal("undersized fft accepted")
	}
}
