package fft

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// tableCacheSize bounds how many distinct transform sizes keep their
// precomputed tables alive. A battery run touches very few sizes, but the
// engine must not grow without bound when a caller sweeps sizes.
const tableCacheSize = 32

var (
	twiddleCache, _  = lru.New[int, []complex128](tableCacheSize)
	digitRevCache, _ = lru.New[int, []int](tableCacheSize)
)

// twiddleFactors returns the rotation factors W_n^k = exp(-2πik/n) for
// k = 0..n-1. Tables are immutable once built and shared through an LRU
// cache keyed by size. Two goroutines racing on the same size both build
// identical tables and one wins the cache slot, so readers never see a
// partially built table.
func twiddleFactors(n int) []complex128 {
	if tw, ok := twiddleCache.Get(n); ok {
		return tw
	}

	tw := make([]complex128, n)
	for k := 0; k < n; k++ {
		s, c := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		tw[k] = complex(c, s)
	}

	twiddleCache.Add(n, tw)

	return tw
}

// digitReversalIndices returns the base-4 digit-reversal permutation for a
// size-n radix-4 transform, n a power of four. Cached like twiddle tables.
func digitReversalIndices(n int) []int {
	if idx, ok := digitRevCache.Get(n); ok {
		return idx
	}

	digits := log2(n) / 2
	idx := make([]int, n)

	for i := 0; i < n; i++ {
		idx[i] = reverseDigits4(i, digits)
	}

	digitRevCache.Add(n, idx)

	return idx
}

// reverseDigits4 reverses the lower 'digits' base-4 digits of x.
// Example: reverseDigits4(0b0110, 2) = 0b1001 (base-4 digits 1,2 -> 2,1).
func reverseDigits4(x, digits int) int {
	result := 0
	for i := 0; i < digits; i++ {
		result = (result << 2) | (x & 3)
		x >>= 2
	}

	return result
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// isPowerOfFour reports whether n is a positive power of four. A power of
// four is a power of two whose single set bit sits at an even position.
func isPowerOfFour(n int) bool {
	const evenBits = 0x5555555555555555

	return isPowerOfTwo(n) && n&evenBits != 0
}
