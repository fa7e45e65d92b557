package fft

import "math"

// directSpectrumThreshold is the largest real-input size for which the
// half-spectrum is summed directly, avoiding the complex buffer
// allocation entirely.
const directSpectrumThreshold = 256

// SpectrumLen returns the number of non-redundant frequency bins for a
// real input of length n: ⌊n/2⌋+1. Real input has a conjugate-symmetric
// spectrum, so the upper half carries no extra information.
func SpectrumLen(n int) int {
	return n/2 + 1
}

// RealSpectrum transforms the real-valued input and writes the
// non-redundant half of its spectrum.
//
// spectrum receives interleaved real/imaginary pairs and must hold at
// least 2·(⌊n/2⌋+1) values; magnitude receives |X[k]| per bin and must
// hold at least ⌊n/2⌋+1. If either output is too small, ErrBufferTooSmall
// is returned and nothing is written.
//
// Small inputs are summed directly over k ∈ [0, n/2]; larger inputs go
// through a full-length complex buffer and the algorithm selector.
func RealSpectrum(input []float64, spectrum, magnitude []float64) error {
	if input == nil || spectrum == nil || magnitude == nil {
		return ErrNilSlice
	}

	n := len(input)
	bins := SpectrumLen(n)

	if len(spectrum) < 2*bins || len(magnitude) < bins {
		return ErrBufferTooSmall
	}

	if n == 0 {
		spectrum[0], spectrum[1] = 0, 0
		magnitude[0] = 0

		return nil
	}

	if n <= directSpectrumThreshold {
		realSpectrumDirect(input, spectrum, bins)
	} else {
		buf := make([]complex128, n)
		for i, v := range input {
			buf[i] = complex(v, 0)
		}

		if err := Transform(buf); err != nil {
			return err
		}

		for k := 0; k < bins; k++ {
			spectrum[2*k] = real(buf[k])
			spectrum[2*k+1] = imag(buf[k])
		}
	}

	magnitudes(spectrum, magnitude, bins)

	return nil
}

// realSpectrumDirect evaluates the half-spectrum of a small real input by
// direct summation, k restricted to the non-redundant bins.
func realSpectrumDirect(input []float64, spectrum []float64, bins int) {
	n := len(input)

	for k := 0; k < bins; k++ {
		var re, im float64

		for j, v := range input {
			s, c := math.Sincos(-2 * math.Pi * float64((k*j)%n) / float64(n))
			re += v * c
			im += v * s
		}

		spectrum[2*k] = re
		spectrum[2*k+1] = im
	}
}

// magnitudes fills magnitude[k] = sqrt(re²+im²) from the interleaved
// spectrum, four bins per iteration with a scalar tail.
func magnitudes(spectrum, magnitude []float64, bins int) {
	k := 0

	for ; k+4 <= bins; k += 4 {
		r0, i0 := spectrum[2*k], spectrum[2*k+1]
		r1, i1 := spectrum[2*k+2], spectrum[2*k+3]
		r2, i2 := spectrum[2*k+4], spectrum[2*k+5]
		r3, i3 := spectrum[2*k+6], spectrum[2*k+7]

		magnitude[k] = math.Sqrt(r0*r0 + i0*i0)
		magnitude[k+1] = math.Sqrt(r1*r1 + i1*i1)
		magnitude[k+2] = math.Sqrt(r2*r2 + i2*i2)
		magnitude[k+3] = math.Sqrt(r3*r3 + i3*i3)
	}

	for ; k < bins; k++ {
		re, im := spectrum[2*k], spectrum[2*k+1]
		magnitude[k] = math.Sqrt(re*re + im*im)
	}
}
