package fft

// Size thresholds for algorithm selection. The selector consults only the
// buffer length and its divisibility properties, never the data content,
// so the choice is deterministic for a given n.
const (
	// simdThreshold is the smallest size for which the batched butterfly
	// pass pays for its loop overhead.
	simdThreshold = 64

	// radix4Threshold is the smallest power-of-four size routed to the
	// radix-4 transform instead of radix-2.
	radix4Threshold = 256

	// parallelThreshold is the smallest power-of-two size worth the
	// fork-join recursive decomposition.
	parallelThreshold = 16384

	// hugeDataThreshold is the size above which peak memory is bounded by
	// the chunked strategy.
	hugeDataThreshold = 1 << 20

	// maxChunkSize caps how many elements the huge-data strategy touches
	// at once.
	maxChunkSize = 1 << 24
)

// Transform computes the in-place discrete Fourier transform of data,
// selecting the algorithm from the buffer length alone.
//
// Decision order, first match wins:
//
//  1. n ≤ 1: a single sample is its own transform.
//  2. n ≥ hugeDataThreshold: chunked strategy with bounded memory.
//  3. n ≥ parallelThreshold, power of two: fork-join recursive path.
//  4. n ≥ radix4Threshold, power of four: radix-4 transform.
//  5. power of two: radix-2 transform (batched above simdThreshold).
//  6. anything else: direct O(n²) summation.
//
// Every n resolves to a runnable path. The size-specific transforms
// re-validate their precondition and return ErrInvalidSize or
// ErrNotPowerOfFour if the dispatch ever disagrees with them.
func Transform(data []complex128) error {
	n := len(data)

	switch {
	case n <= 1:
		return nil
	case n >= hugeDataThreshold:
		return transformHuge(data)
	case n >= parallelThreshold && isPowerOfTwo(n):
		return transformParallel(data)
	case n >= radix4Threshold && isPowerOfFour(n):
		return transformRadix4(data)
	case isPowerOfTwo(n):
		return transformRadix2(data)
	default:
		transformDirect(data)
		return nil
	}
}
