package algosts

import (
	"github.com/cwbudde/algo-sts/spfunc"
)

// LongestRun examines the longest run of ones within fixed-size blocks
// and compares the class distribution against the theoretical one. Block
// size and class boundaries follow the sequence length, per SP800-22.
type LongestRun struct{}

func (LongestRun) Name() string { return "longest-run" }

func (LongestRun) MinBits() int { return 128 }

func (LongestRun) Assess(bits []uint8) ([]float64, error) {
	n := len(bits)

	var (
		m    int
		vMin int
		pi   []float64
	)

	switch {
	case n < 6272:
		m, vMin = 8, 1
		pi = []float64{0.21484375, 0.3671875, 0.23046875, 0.1875}
	case n < 750000:
		m, vMin = 128, 4
		pi = []float64{0.1174035788, 0.242955959, 0.249363483, 0.17517706, 0.102701071, 0.112398847}
	default:
		m, vMin = 10000, 10
		pi = []float64{0.0882, 0.2092, 0.2483, 0.1933, 0.1208, 0.0675, 0.0727}
	}

	blocks := n / m
	vMax := vMin + len(pi) - 1
	counts := make([]int, len(pi))

	for b := 0; b < blocks; b++ {
		longest, run := 0, 0

		for _, bit := range bits[b*m : (b+1)*m] {
			if bit == 1 {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}

		class := min(max(longest, vMin), vMax) - vMin
		counts[class]++
	}

	chi2 := 0.0
	for i, c := range counts {
		expected := float64(blocks) * pi[i]
		diff := float64(c) - expected
		chi2 += diff * diff / expected
	}

	k := float64(len(pi) - 1)
	p := spfunc.Igamc(k/2, chi2/2)

	return []float64{p}, nil
}
