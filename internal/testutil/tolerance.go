package testutil

import (
	"math"
	"math/cmplx"
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

// RequireBinsNearlyEqual fails t if two complex spectra differ in length or
// if any bin pair differs by more than eps in modulus.
func RequireBinsNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("bin count mismatch: got %d, want %d", len(got), len(want))
	}
	for k := range got {
		diff := cmplx.Abs(got[k] - want[k])
		if diff > eps {
			t.Fatalf("bin %d: got %v, want %v (diff %v > eps %v)", k, got[k], want[k], diff, eps)
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

// MaxBinDiff returns the maximum per-bin modulus difference between two
// spectra of equal length.
func MaxBinDiff(a, b []complex128) float64 {
	maxDiff := 0.0
	for k := range a {
		d := cmplx.Abs(a[k] - b[k])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
