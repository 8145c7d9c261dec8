package testutil

import (
	"math"
	"math/rand"
)

// BinSine generates a sine wave with an exact number of cycles per window.
//
// With integer cycles the signal is periodic in the window and concentrates
// in spectrum bin `cycles`.
func BinSine(cycles, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// BinCosine generates a cosine wave with an exact number of cycles per window.
func BinCosine(cycles, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
