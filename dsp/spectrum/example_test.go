package spectrum_test

import (
	"fmt"
	"math"

	"github.com/drSigPro/fft-explorer/dsp/fourier"
	"github.com/drSigPro/fft-explorer/dsp/spectrum"
)

func ExampleExtractComponents() {
	// One full cosine cycle over eight samples lands in bin 1.
	samples := make([]float64, 8)
	for i := range samples {
		samples[i] = math.Cos(2 * math.Pi * float64(i) / 8)
	}

	bins := fourier.Transform(samples)

	for _, c := range spectrum.ExtractComponents(bins, len(samples)) {
		fmt.Printf("freq=%d amp=%.2f\n", c.Frequency, c.Amplitude)
	}

	// Output:
	// freq=1 amp=1.00
	// freq=2 amp=0.00
	// freq=3 amp=0.00
}

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{3 + 4i, 0})
	fmt.Printf("%.0f %.0f\n", mag[0], mag[1])

	// Output:
	// 5 0
}
