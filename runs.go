package algosts

import (
	"math"

	"github.com/cwbudde/algo-sts/spfunc"
)

// Runs counts maximal runs of identical bits. Too few runs indicate
// clustering, too many indicate oscillation.
type Runs struct{}

func (Runs) Name() string { return "runs" }

func (Runs) MinBits() int { return 100 }

func (Runs) Assess(bits []uint8) ([]float64, error) {
	n := len(bits)

	ones := 0
	for _, b := range bits {
		ones += int(b)
	}

	pi := float64(ones) / float64(n)

	// Frequency pre-test: when the proportion of ones is already far from
	// 1/2 the run count carries no further information.
	if math.Abs(pi-0.5) >= 2/math.Sqrt(float64(n)) {
		return []float64{0}, nil
	}

	vObs := 1
	for i := 1; i < n; i++ {
		if bits[i] != bits[i-1] {
			vObs++
		}
	}

	num := math.Abs(float64(vObs) - 2*float64(n)*pi*(1-pi))
	den := 2 * math.Sqrt(2*float64(n)) * pi * (1 - pi)
	p := spfunc.Erfc(num / den)

	return []float64{p}, nil
}
