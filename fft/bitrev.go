package fft

// permuteBitReversal reorders data in place so that element i ends up at
// the index obtained by reversing the base-2 digits of i. The running
// carry computation avoids an index table entirely: j tracks the reversed
// counterpart of i, incremented from the top bit down. The permutation is
// its own inverse.
func permuteBitReversal(data []complex128) {
	n := len(data)
	j := 0

	for i := 0; i < n-1; i++ {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}

		k := n >> 1
		for k <= j {
			j -= k
			k >>= 1
		}

		j += k
	}
}

// permuteDigitReversal reorders data in place by base-4 digit reversal,
// using the precomputed index table for the radix-4 stages. Reversal is an
// involution, so swapping each i with idx[i] once (guarded by i < idx[i])
// realizes the full permutation.
func permuteDigitReversal(data []complex128, idx []int) {
	for i, r := range idx {
		if i < r {
			data[i], data[r] = data[r], data[i]
		}
	}
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
