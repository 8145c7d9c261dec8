package spectrum

import "math"

// Component describes one isolated frequency component of a signal.
//
// Frequency is the spectrum bin index, Amplitude the bin magnitude normalized
// to the original signal scale, and Phase the bin argument in radians.
// Signal holds the component rendered back into the time domain on its own:
// Signal[i] = Amplitude * cos(2*pi*Frequency*i/N + Phase) over the original
// sample count N.
type Component struct {
	Frequency int
	Amplitude float64
	Phase     float64
	Signal    []float64
}

// ExtractComponents decomposes a spectrum into per-frequency components.
//
// Records are produced for bins strictly between DC and Nyquist, i.e.
// k = 1 .. floor(M/2)-1 for a spectrum of length M, in increasing bin order.
// Amplitude is 2*|X[k]|/M, which recovers the time-domain amplitude of a real
// sinusoid concentrated in bin k. sampleCount is the length N of the signal
// the spectrum was computed from and sets the synthesized waveform length; a
// sampleCount <= 0 yields no components.
//
// Zero-energy bins still produce records (amplitude 0, all-zero waveform);
// significance filtering is left to the caller.
func ExtractComponents(bins []complex128, sampleCount int) []Component {
	m := len(bins)
	nyquist := m / 2
	if nyquist < 2 || sampleCount <= 0 {
		return nil
	}

	mags := Magnitude(bins[1:nyquist])
	scale := 2 / float64(m)

	out := make([]Component, 0, nyquist-1)

	for k := 1; k < nyquist; k++ {
		bin := bins[k]

		amp := mags[k-1] * scale
		phase := math.Atan2(imag(bin), real(bin))

		sig := make([]float64, sampleCount)
		step := 2 * math.Pi * float64(k) / float64(sampleCount)
		for i := range sig {
			sig[i] = amp * math.Cos(step*float64(i)+phase)
		}

		out = append(out, Component{
			Frequency: k,
			Amplitude: amp,
			Phase:     phase,
			Signal:    sig,
		})
	}

	return out
}
