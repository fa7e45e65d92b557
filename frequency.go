package algosts

import (
	"math"

	"github.com/cwbudde/algo-sts/spfunc"
)

// Frequency is the monobit test: the proportion of ones should be close
// to 1/2 for a random sequence.
type Frequency struct{}

func (Frequency) Name() string { return "frequency" }

func (Frequency) MinBits() int { return 100 }

func (Frequency) Assess(bits []uint8) ([]float64, error) {
	n := len(bits)

	sum := 0
	for _, b := range bits {
		sum += 2*int(b) - 1
	}

	sObs := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	p := spfunc.Erfc(sObs / math.Sqrt2)

	return []float64{p}, nil
}
