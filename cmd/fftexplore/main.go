// Command fftexplore decomposes a generated test signal into its frequency
// components and prints both domains as tables.
//
// Usage:
//
//	fftexplore [flags]
//
// Examples:
//
//	fftexplore -wave sine -cycles 3 -n 32
//	fftexplore -wave square -cycles 2 -n 128 -threshold 0.05
//	fftexplore -wave noise -seed 7 -n 64 -spectrum
//	fftexplore -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/drSigPro/fft-explorer/analyze"
	"github.com/drSigPro/fft-explorer/dsp/core"
	"github.com/drSigPro/fft-explorer/dsp/signal"
)

type waveEntry struct {
	name     string
	generate func(g *signal.Generator, cycles, amplitude float64, samples int) ([]float64, error)
}

var registry = []waveEntry{
	{"sine", func(g *signal.Generator, c, a float64, n int) ([]float64, error) { return g.Sine(c, a, n) }},
	{"cosine", func(g *signal.Generator, c, a float64, n int) ([]float64, error) { return g.Cosine(c, a, n) }},
	{"square", func(g *signal.Generator, c, a float64, n int) ([]float64, error) { return g.Square(c, a, n) }},
	{"sawtooth", func(g *signal.Generator, c, a float64, n int) ([]float64, error) { return g.Sawtooth(c, a, n) }},
	{"triangle", func(g *signal.Generator, c, a float64, n int) ([]float64, error) { return g.Triangle(c, a, n) }},
	{"noise", func(g *signal.Generator, _, a float64, n int) ([]float64, error) { return g.WhiteNoise(a, n) }},
}

func main() {
	n := flag.Int("n", 64, "window length in samples (resolution)")
	wave := flag.String("wave", "sine", "waveform to analyze (use -list to see available)")
	cycles := flag.Float64("cycles", 3, "waveform cycles per window")
	amplitude := flag.Float64("amplitude", 1, "waveform peak amplitude")
	seed := flag.Int64("seed", 1, "random seed for the noise waveform")
	threshold := flag.Float64("threshold", 0.01, "minimum amplitude for a component to be shown")
	maxShown := flag.Int("max", 8, "maximum number of components to show")
	showSpectrum := flag.Bool("spectrum", false, "also print the raw complex spectrum")
	list := flag.Bool("list", false, "list available waveform names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftexplore [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Decomposes a generated signal into frequency components.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fftexplore -wave sine -cycles 3 -n 32\n")
		fmt.Fprintf(os.Stderr, "  fftexplore -wave square -cycles 2 -n 128 -threshold 0.05\n")
		fmt.Fprintf(os.Stderr, "  fftexplore -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entry, ok := resolveWave(*wave)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown waveform %q (use -list to see available)\n", *wave)
		os.Exit(1)
	}

	gen := signal.NewGenerator(signal.WithSeed(*seed))

	samples, err := entry.generate(gen, *cycles, *amplitude, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res := analyze.Signal(samples)

	fmt.Printf("%s: %d samples, %d spectrum bins, %d components\n\n",
		entry.name, len(res.Samples), len(res.Spectrum), len(res.Components))

	if *showSpectrum {
		printSpectrum(res.Spectrum)
	}

	printComponents(res, core.Clamp(*threshold, 0, 1e12), *maxShown)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveWave(name string) (waveEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return waveEntry{}, false
}

func printSpectrum(bins []complex128) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tReal\tImag\n")
	fmt.Fprintf(tw, "---\t----\t----\n")
	for k, b := range bins {
		fmt.Fprintf(tw, "%d\t%+.6f\t%+.6f\n", k, real(b), imag(b))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printComponents(res analyze.Result, threshold float64, maxShown int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [cycles]\tAmplitude\tPhase [rad]\n")
	fmt.Fprintf(tw, "------------------\t---------\t-----------\n")

	shown := 0
	for _, c := range res.Components {
		if c.Amplitude < threshold {
			continue
		}
		if maxShown > 0 && shown >= maxShown {
			break
		}

		fmt.Fprintf(tw, "%d\t%.6f\t%+.6f\n", c.Frequency, c.Amplitude, c.Phase)
		shown++
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	if shown == 0 {
		fmt.Println("(no components above threshold)")
	}
}
