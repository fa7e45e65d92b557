package fft

import "github.com/cwbudde/algo-sts/internal/cpu"

// features is detected once at startup and gates the batched butterfly
// pass. Tests flip batchButterflies to exercise both loops.
var (
	features         = cpu.DetectFeatures()
	batchButterflies = features.HasVectorUnit()
)

// transformRadix2 performs the iterative radix-2 Cooley-Tukey transform in
// place. The buffer length must be a power of two.
//
// After the bit-reversal permutation, stages of size 2, 4, 8, ... up to n
// merge pairs of half-size spectra. Within a group, butterfly k combines
// the even element at base+k with the odd element at base+half+k through
// the twiddle factor W_size^k. When the size is at or above simdThreshold
// and the CPU has a usable vector unit, four butterflies are processed per
// iteration; the remainder runs through the scalar loop.
func transformRadix2(data []complex128) error {
	n := len(data)
	if !isPowerOfTwo(n) {
		return ErrInvalidSize
	}

	if n <= 1 {
		return nil
	}

	permuteBitReversal(data)

	tw := twiddleFactors(n)
	batch := batchButterflies && n >= simdThreshold

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for base := 0; base < n; base += size {
			k := 0

			if batch {
				for ; k+4 <= half; k += 4 {
					butterfly4x2(data, tw, base, half, step, k)
				}
			}

			for ; k < half; k++ {
				w := tw[k*step]
				even := data[base+k]
				odd := w * data[base+half+k]
				data[base+k] = even + odd
				data[base+half+k] = even - odd
			}
		}
	}

	return nil
}

// butterfly4x2 runs four consecutive radix-2 butterflies as one batch. The
// four twiddle loads and multiplies are grouped so the compiler can keep
// the lanes in registers.
func butterfly4x2(data, tw []complex128, base, half, step, k int) {
	w0 := tw[k*step]
	w1 := tw[(k+1)*step]
	w2 := tw[(k+2)*step]
	w3 := tw[(k+3)*step]

	e0 := data[base+k]
	e1 := data[base+k+1]
	e2 := data[base+k+2]
	e3 := data[base+k+3]

	o0 := w0 * data[base+half+k]
	o1 := w1 * data[base+half+k+1]
	o2 := w2 * data[base+half+k+2]
	o3 := w3 * data[base+half+k+3]

	data[base+k] = e0 + o0
	data[base+k+1] = e1 + o1
	data[base+k+2] = e2 + o2
	data[base+k+3] = e3 + o3

	data[base+half+k] = e0 - o0
	data[base+half+k+1] = e1 - o1
	data[base+half+k+2] = e2 - o2
	data[base+half+k+3] = e3 - o3
}
