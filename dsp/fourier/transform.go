package fourier

import "math"

// Transform computes the forward DFT of a real-valued signal.
//
// The returned spectrum has the same length as the input. Power-of-two
// lengths use the recursive radix-2 fast path; any other length is evaluated
// via [DirectTransform]. An empty input yields an empty spectrum.
func Transform(samples []float64) []complex128 {
	n := len(samples)
	switch n {
	case 0:
		return []complex128{}
	case 1:
		return []complex128{complex(samples[0], 0)}
	}

	if n&(n-1) == 0 {
		x := make([]complex128, n)
		for i, v := range samples {
			x[i] = complex(v, 0)
		}

		return radix2(x)
	}

	return DirectTransform(samples)
}

// DirectTransform evaluates the DFT definition term by term in O(N^2).
//
// It serves as the fallback for non-power-of-two lengths and as an
// independent reference for the fast path. Output matches [Transform] within
// floating-point rounding for power-of-two lengths.
func DirectTransform(samples []float64) []complex128 {
	n := len(samples)
	out := make([]complex128, n)

	for k := range out {
		re := 0.0
		im := 0.0

		for t, v := range samples {
			arg := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += v * math.Cos(arg)
			im -= v * math.Sin(arg)
		}

		out[k] = complex(re, im)
	}

	return out
}

// radix2 performs the recursive decimation-in-time FFT.
//
// len(x) must be a power of two; the even/odd split halves the length
// exactly, so the recursion always terminates at a single element.
func radix2(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	half := n / 2

	even := make([]complex128, half)
	odd := make([]complex128, half)

	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = radix2(even)
	odd = radix2(odd)

	out := make([]complex128, n)

	for k := range half {
		angle := -2 * math.Pi * float64(k) / float64(n)
		twiddle := complex(math.Cos(angle), math.Sin(angle))

		t := twiddle * odd[k]
		out[k] = even[k] + t
		out[k+half] = even[k] - t
	}

	return out
}
