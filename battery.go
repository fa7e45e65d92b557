package algosts

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultAlpha is the significance level below which a p-value fails its
// detector.
const DefaultAlpha = 0.01

// Battery runs a fixed set of detectors over a bit sequence. The zero
// value is not usable; construct one with New.
type Battery struct {
	alpha     float64
	workers   int
	detectors []Detector
}

// Option configures a Battery.
type Option func(*Battery)

// WithAlpha sets the significance level.
func WithAlpha(alpha float64) Option {
	return func(b *Battery) { b.alpha = alpha }
}

// WithWorkers bounds how many detectors run concurrently.
func WithWorkers(n int) Option {
	return func(b *Battery) { b.workers = n }
}

// WithDetectors replaces the default detector set.
func WithDetectors(detectors ...Detector) Option {
	return func(b *Battery) { b.detectors = detectors }
}

// New creates a Battery with the default detectors, DefaultAlpha, and one
// worker per CPU.
func New(opts ...Option) *Battery {
	b := &Battery{
		alpha:     DefaultAlpha,
		workers:   runtime.NumCPU(),
		detectors: DefaultDetectors(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.workers < 1 {
		b.workers = 1
	}

	return b
}

// Alpha returns the configured significance level.
func (b *Battery) Alpha() float64 {
	return b.alpha
}

// Detectors returns the configured detector set.
func (b *Battery) Detectors() []Detector {
	return b.detectors
}

// Run assesses the sequence with every configured detector. Detectors run
// concurrently on at most the configured number of workers; the bit slice
// is shared read-only between them. Results come back in detector order.
// A detector failure (including a failed FFT inside the spectral
// detector) is recorded in that detector's Result and does not stop the
// rest of the battery.
func (b *Battery) Run(ctx context.Context, bits []uint8) []Result {
	results := make([]Result, len(b.detectors))

	g := new(errgroup.Group)
	g.SetLimit(b.workers)

	for i, det := range b.detectors {
		i, det := i, det

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Detector: det.Name(), Err: err}
				return nil
			}

			results[i] = b.assess(det, bits)

			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (b *Battery) assess(det Detector, bits []uint8) Result {
	res := Result{Detector: det.Name()}

	if len(bits) < det.MinBits() {
		res.Err = fmt.Errorf("%w: %s needs %d bits, have %d",
			ErrInsufficientBits, det.Name(), det.MinBits(), len(bits))

		return res
	}

	pvalues, err := det.Assess(bits)
	if err != nil {
		res.Err = err
		return res
	}

	res.PValues = pvalues
	res.Passed = len(pvalues) > 0

	for i, p := range pvalues {
		if i == 0 || p < res.PValue {
			res.PValue = p
		}

		if p < b.alpha {
			res.Passed = false
		}
	}

	return res
}
