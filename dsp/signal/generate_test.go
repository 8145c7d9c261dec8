package signal

import (
	"math"
	"testing"
)

func TestSineBinAlignment(t *testing.T) {
	g := NewGenerator()

	s, err := g.Sine(1, 1, 4)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	want := []float64{0, 1, 0, -1}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestCosineStartsAtPeak(t *testing.T) {
	g := NewGenerator()

	s, err := g.Cosine(2, 0.5, 16)
	if err != nil {
		t.Fatalf("Cosine() error = %v", err)
	}

	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}

	if math.Abs(s[0]-0.5) > 1e-12 {
		t.Fatalf("s[0] = %v, want 0.5", s[0])
	}
}

func TestSquareValues(t *testing.T) {
	g := NewGenerator()

	s, err := g.Square(2, 1, 32)
	if err != nil {
		t.Fatalf("Square() error = %v", err)
	}

	for i, v := range s {
		if v != 1 && v != -1 {
			t.Fatalf("s[%d] = %v, want +/-1", i, v)
		}
	}
}

func TestSawtoothRange(t *testing.T) {
	g := NewGenerator()

	s, err := g.Sawtooth(1, 1, 32)
	if err != nil {
		t.Fatalf("Sawtooth() error = %v", err)
	}

	if math.Abs(s[0]+1) > 1e-12 {
		t.Fatalf("s[0] = %v, want -1", s[0])
	}

	for i, v := range s {
		if v < -1 || v >= 1 {
			t.Fatalf("s[%d] = %v out of [-1, 1)", i, v)
		}
	}

	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("sawtooth not rising at %d: %v <= %v", i, s[i], s[i-1])
		}
	}
}

func TestTriangleRange(t *testing.T) {
	g := NewGenerator()

	s, err := g.Triangle(1, 1, 64)
	if err != nil {
		t.Fatalf("Triangle() error = %v", err)
	}

	if math.Abs(s[0]+1) > 1e-12 {
		t.Fatalf("s[0] = %v, want -1", s[0])
	}

	if math.Abs(s[32]-1) > 1e-12 {
		t.Fatalf("s[32] = %v, want 1", s[32])
	}

	for i, v := range s {
		if v < -1-1e-12 || v > 1+1e-12 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestCompositeMatchesCosine(t *testing.T) {
	g := NewGenerator()

	want, err := g.Cosine(3, 0.7, 32)
	if err != nil {
		t.Fatalf("Cosine() error = %v", err)
	}

	got, err := g.Composite([]Tone{{Cycles: 3, Amplitude: 0.7}}, 32)
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("composite[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Sine(1, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}

	if _, err := g.Composite(nil, -1); err == nil {
		t.Fatal("expected error for negative samples")
	}

	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	want := []float64{-0.4, 0.2, 0.8}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}

	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target peak")
	}
}
