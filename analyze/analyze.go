// Package analyze runs the full decomposition pipeline and coordinates its
// results for interactive callers.
//
// The pipeline itself is pure: [Signal] transforms a sample window and
// extracts its frequency components in one call. [Session] adds the
// bookkeeping an interactive frontend needs when it recomputes on every input
// change, possibly concurrently: each run is tagged with a monotonically
// increasing token and only the latest-issued run may publish its result, so
// a slow stale computation can never overwrite a newer one.
package analyze

import (
	"github.com/drSigPro/fft-explorer/dsp/fourier"
	"github.com/drSigPro/fft-explorer/dsp/spectrum"
)

// Result bundles one pipeline run over a single sample window.
type Result struct {
	Samples    []float64
	Spectrum   []complex128
	Components []spectrum.Component
}

// Signal runs the transform and component extraction over samples.
//
// The input is not retained; Samples in the result aliases the caller's
// slice, while Spectrum and Components are freshly allocated.
func Signal(samples []float64) Result {
	bins := fourier.Transform(samples)

	return Result{
		Samples:    samples,
		Spectrum:   bins,
		Components: spectrum.ExtractComponents(bins, len(samples)),
	}
}
