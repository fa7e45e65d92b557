package algosts

import "errors"

// ErrInsufficientBits is returned in a Result when the input sequence is
// shorter than a detector's minimum.
var ErrInsufficientBits = errors.New("algosts: insufficient bits")

// Detector is one statistical randomness test. Implementations must be
// safe for concurrent use and must not mutate the bit sequence.
type Detector interface {
	// Name identifies the detector in results and reports.
	Name() string

	// MinBits is the shortest sequence the statistic is meaningful for.
	MinBits() int

	// Assess computes the detector's p-value(s) for the sequence. Bits
	// are 0/1 values, one per element. Detectors that derive several
	// p-values (e.g. forward and backward cumulative sums) return all of
	// them.
	Assess(bits []uint8) ([]float64, error)
}

// Result is the outcome of running one detector over a sequence.
type Result struct {
	// Detector is the name of the detector that produced this result.
	Detector string

	// PValue is the smallest p-value the detector produced.
	PValue float64

	// PValues holds every p-value, in detector-defined order.
	PValues []float64

	// Passed reports whether all p-values met the significance level.
	// A result with a non-nil Err never passes.
	Passed bool

	// Err records why the detector could not be evaluated, if it
	// could not. The battery keeps running the remaining detectors.
	Err error
}

// DefaultDetectors returns the full battery in its standard
// configuration.
func DefaultDetectors() []Detector {
	return []Detector{
		Frequency{},
		NewBlockFrequency(128),
		Runs{},
		LongestRun{},
		Rank{},
		Spectral{},
		CumulativeSums{},
		NewSerial(16),
		NewApproximateEntropy(10),
	}
}
