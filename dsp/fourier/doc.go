// Package fourier implements the forward discrete Fourier transform used by
// the explorer pipeline.
//
// The transform follows the negative-exponent convention,
//
//	X[k] = sum_t x[t] * (cos(2*pi*k*t/N) - i*sin(2*pi*k*t/N)),
//
// and picks its strategy by input length: power-of-two lengths run a
// recursive radix-2 decimation-in-time algorithm, all other lengths fall back
// to the direct O(N^2) definition. Both paths are total over any finite real
// input, allocate fresh output, and hold no state.
package fourier
