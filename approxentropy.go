package algosts

import (
	"math"

	"github.com/cwbudde/algo-sts/spfunc"
)

// ApproximateEntropy compares the frequencies of overlapping m-bit and
// (m+1)-bit patterns. Random sequences have approximate entropy near
// ln 2; regularity pulls it down.
type ApproximateEntropy struct {
	m int
}

// NewApproximateEntropy creates the detector with the given base pattern
// length, m ≥ 1.
func NewApproximateEntropy(m int) ApproximateEntropy {
	if m < 1 {
		m = 1
	}

	return ApproximateEntropy{m: m}
}

func (ApproximateEntropy) Name() string { return "approximate-entropy" }

// MinBits keeps the (m+1)-bit pattern space well below the sequence
// length: n ≥ 2^(m+5).
func (d ApproximateEntropy) MinBits() int { return 1 << (d.m + 5) }

func (d ApproximateEntropy) Assess(bits []uint8) ([]float64, error) {
	n := float64(len(bits))

	apEn := phi(bits, d.m) - phi(bits, d.m+1)
	chi2 := 2 * n * (math.Ln2 - apEn)
	p := spfunc.Igamc(math.Exp2(float64(d.m-1)), chi2/2)

	return []float64{p}, nil
}

// phi computes Σ π·ln π over the relative frequencies π of every
// overlapping m-bit pattern, sequence treated as circular.
func phi(bits []uint8, m int) float64 {
	n := len(bits)

	sum := 0.0

	for _, c := range countPatterns(bits, m) {
		if c > 0 {
			f := float64(c) / float64(n)
			sum += f * math.Log(f)
		}
	}

	return sum
}
