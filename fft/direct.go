package fft

import "math"

// DirectTransform computes the discrete Fourier transform of src into dst
// by direct O(n²) summation:
//
//	dst[k] = Σ_{j=0}^{n-1} src[j]·exp(-2πikj/n)
//
// It is valid for every length, serves as the fallback for sizes no fast
// path covers, and is the correctness oracle the fast paths are tested
// against. dst and src must not overlap.
func DirectTransform(dst, src []complex128) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	n := len(src)
	if len(dst) < n {
		return ErrBufferTooSmall
	}

	for k := 0; k < n; k++ {
		var sum complex128

		for j := 0; j < n; j++ {
			// Reduce k*j modulo n before the angle computation; it keeps
			// the argument to Sincos small for large buffers.
			s, c := math.Sincos(-2 * math.Pi * float64((k*j)%n) / float64(n))
			sum += src[j] * complex(c, s)
		}

		dst[k] = sum
	}

	return nil
}

// transformDirect runs the direct transform in place through one scratch
// buffer.
func transformDirect(data []complex128) {
	scratch := make([]complex128, len(data))
	_ = DirectTransform(scratch, data)
	copy(data, scratch)
}
