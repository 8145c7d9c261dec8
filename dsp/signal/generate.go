package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Tone describes one sinusoidal term of a composite signal.
//
// Cycles is the number of full periods across the generated window, matching
// the spectrum bin index the tone lands on when the window length divides it
// exactly.
type Tone struct {
	Cycles    float64
	Amplitude float64
	Phase     float64
}

// Generator creates deterministic test and demo signals.
//
// Waveform frequencies are expressed in cycles per generated window rather
// than Hz: the analysis pipeline samples at unit intervals, so a tone with
// Cycles=c over N samples concentrates in spectrum bin c.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Sine generates a sine wave with the given number of cycles per window.
func (g *Generator) Sine(cycles, amplitude float64, samples int) ([]float64, error) {
	return g.shape("sine", cycles, samples, func(phase float64) float64 {
		return amplitude * math.Sin(phase)
	})
}

// Cosine generates a cosine wave with the given number of cycles per window.
func (g *Generator) Cosine(cycles, amplitude float64, samples int) ([]float64, error) {
	return g.shape("cosine", cycles, samples, func(phase float64) float64 {
		return amplitude * math.Cos(phase)
	})
}

// Square generates a square wave alternating between +amplitude and -amplitude.
func (g *Generator) Square(cycles, amplitude float64, samples int) ([]float64, error) {
	return g.shape("square", cycles, samples, func(phase float64) float64 {
		if math.Sin(phase) < 0 {
			return -amplitude
		}
		return amplitude
	})
}

// Sawtooth generates a rising sawtooth in [-amplitude, amplitude).
func (g *Generator) Sawtooth(cycles, amplitude float64, samples int) ([]float64, error) {
	return g.shape("sawtooth", cycles, samples, func(phase float64) float64 {
		frac := phase / (2 * math.Pi)
		frac -= math.Floor(frac)
		return amplitude * (2*frac - 1)
	})
}

// Triangle generates a triangle wave in [-amplitude, amplitude].
func (g *Generator) Triangle(cycles, amplitude float64, samples int) ([]float64, error) {
	return g.shape("triangle", cycles, samples, func(phase float64) float64 {
		frac := phase / (2 * math.Pi)
		frac -= math.Floor(frac)
		return amplitude * (1 - 4*math.Abs(frac-0.5))
	})
}

// Composite generates a sum of cosine tones.
func (g *Generator) Composite(tones []Tone, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("composite samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	for _, tone := range tones {
		step := 2 * math.Pi * tone.Cycles / float64(samples)
		for i := range out {
			out[i] += tone.Amplitude * math.Cos(step*float64(i)+tone.Phase)
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func (g *Generator) shape(name string, cycles float64, samples int, f func(phase float64) float64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%s samples must be > 0: %d", name, samples)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * cycles / float64(samples)
	for i := range out {
		out[i] = f(step * float64(i))
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
