package fft

// transformHuge handles buffers above hugeDataThreshold without touching
// more than maxChunkSize elements of working state at once. A buffer that
// fits a single chunk is dispatched to the fastest shape-compatible
// transform. Anything larger is split into successive maxChunkSize chunks
// that are transformed independently in place.
//
// Transforming disjoint chunks independently is NOT equivalent to one
// transform of the whole buffer; the chunked mode deliberately trades
// spectral exactness for bounded memory. Callers that need the true
// spectrum of a buffer beyond maxChunkSize must decimate or split the
// signal themselves before calling the engine.
func transformHuge(data []complex128) error {
	n := len(data)

	if n <= maxChunkSize {
		switch {
		case n >= radix4Threshold && isPowerOfFour(n):
			return transformRadix4(data)
		case isPowerOfTwo(n):
			return transformRadix2(data)
		default:
			transformDirect(data)
			return nil
		}
	}

	for base := 0; base < n; base += maxChunkSize {
		end := min(base+maxChunkSize, n)
		if err := Transform(data[base:end]); err != nil {
			return err
		}
	}

	return nil
}
