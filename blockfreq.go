package algosts

import (
	"github.com/cwbudde/algo-sts/spfunc"
)

// BlockFrequency divides the sequence into blocks of m bits and checks
// the proportion of ones within each block against 1/2.
type BlockFrequency struct {
	m int
}

// NewBlockFrequency creates the detector with the given block length.
func NewBlockFrequency(m int) BlockFrequency {
	if m < 2 {
		m = 2
	}

	return BlockFrequency{m: m}
}

func (BlockFrequency) Name() string { return "block-frequency" }

func (d BlockFrequency) MinBits() int {
	if d.m > 100 {
		return d.m
	}

	return 100
}

func (d BlockFrequency) Assess(bits []uint8) ([]float64, error) {
	n := len(bits)
	blocks := n / d.m

	chi2 := 0.0

	for b := 0; b < blocks; b++ {
		ones := 0
		for _, bit := range bits[b*d.m : (b+1)*d.m] {
			ones += int(bit)
		}

		pi := float64(ones)/float64(d.m) - 0.5
		chi2 += pi * pi
	}

	chi2 *= 4 * float64(d.m)
	p := spfunc.Igamc(float64(blocks)/2, chi2/2)

	return []float64{p}, nil
}
