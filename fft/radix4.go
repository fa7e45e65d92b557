package fft

// transformRadix4 performs the iterative radix-4 Cooley-Tukey transform in
// place. The buffer length must be a power of four.
//
// Each stage merges four quarter-size spectra with three twiddle
// multiplies (W, W², W³) per butterfly instead of the four a pair of
// radix-2 stages would spend, trading butterfly complexity for stage
// count. The "odd difference" term is rotated by -j, which is a swap of
// real and imaginary parts with a sign flip rather than a multiply.
func transformRadix4(data []complex128) error {
	n := len(data)
	if !isPowerOfFour(n) {
		return ErrNotPowerOfFour
	}

	if n <= 1 {
		return nil
	}

	permuteDigitReversal(data, digitReversalIndices(n))

	tw := twiddleFactors(n)

	for size := 4; size <= n; size <<= 2 {
		quarter := size >> 2
		step := n / size

		for base := 0; base < n; base += size {
			for k := 0; k < quarter; k++ {
				x0 := data[base+k]
				x1 := tw[k*step] * data[base+quarter+k]
				x2 := tw[2*k*step] * data[base+2*quarter+k]
				x3 := tw[3*k*step] * data[base+3*quarter+k]

				t0 := x0 + x2
				t1 := x0 - x2
				t2 := x1 + x3
				t3 := x1 - x3

				// -j rotation of the odd difference.
				t3 = complex(imag(t3), -real(t3))

				data[base+k] = t0 + t2
				data[base+quarter+k] = t1 + t3
				data[base+2*quarter+k] = t0 - t2
				data[base+3*quarter+k] = t1 - t3
			}
		}
	}

	return nil
}
