package fft

import "golang.org/x/sync/errgroup"

// transformParallel computes the transform by recursive even/odd
// decimation, running the two half-size sub-transforms on separate
// goroutines. The siblings share no mutable state: each owns its own
// half-size buffer, and the combine pass runs only after both have
// finished. Once the recursion drops below parallelThreshold the work no
// longer warrants a fork and the iterative radix-2 transform takes over.
func transformParallel(data []complex128) error {
	n := len(data)
	if !isPowerOfTwo(n) {
		return ErrInvalidSize
	}

	if n < parallelThreshold {
		return transformRadix2(data)
	}

	half := n >> 1
	even := make([]complex128, half)
	odd := make([]complex128, half)

	for i := 0; i < half; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	var g errgroup.Group

	g.Go(func() error { return transformParallel(even) })
	g.Go(func() error { return transformParallel(odd) })

	if err := g.Wait(); err != nil {
		return err
	}

	tw := twiddleFactors(n)

	for k := 0; k < half; k++ {
		t := tw[k] * odd[k]
		data[k] = even[k] + t
		data[k+half] = even[k] - t
	}

	return nil
}
