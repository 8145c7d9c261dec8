package testutil

import (
	"math"
	"testing"
)

func TestMaxBinDiff(t *testing.T) {
	a := []complex128{1 + 1i, 2, 3i}
	b := []complex128{1 + 1i, 2.1, 3i}

	d := MaxBinDiff(a, b)
	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxBinDiff = %v, want 0.1", d)
	}
}

func TestMaxBinDiffIdentical(t *testing.T) {
	a := []complex128{1, 2i, -3}

	if d := MaxBinDiff(a, a); d != 0 {
		t.Fatalf("MaxBinDiff = %v, want 0 for identical spectra", d)
	}
}
