// Package spectrum provides frequency-domain utilities over complex DFT bins.
//
// The package does not implement the transform itself. It operates on spectra
// produced by dsp/fourier (or any compatible backend) and provides magnitude
// and phase extraction plus the per-bin component decomposition that drives
// the dual-domain visualization: each non-DC bin below Nyquist becomes an
// independent record carrying its normalized amplitude, phase, and an
// isolated time-domain cosine waveform.
package spectrum
