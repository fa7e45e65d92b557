package algosts

import (
	"math"

	"github.com/cwbudde/algo-sts/spfunc"
)

// Serial checks the frequency of every overlapping m-bit pattern across
// the sequence (with wraparound). Random sequences spread pattern counts
// evenly; the two p-values come from the first and second differences of
// the ψ² statistic.
type Serial struct {
	m int
}

// NewSerial creates the detector with the given pattern length, m ≥ 2.
func NewSerial(m int) Serial {
	if m < 2 {
		m = 2
	}

	return Serial{m: m}
}

func (Serial) Name() string { return "serial" }

// MinBits keeps the pattern space meaningfully smaller than the sequence:
// n ≥ 2^(m+2).
func (d Serial) MinBits() int { return 1 << (d.m + 2) }

func (d Serial) Assess(bits []uint8) ([]float64, error) {
	psiM := psiSquared(bits, d.m)
	psiM1 := psiSquared(bits, d.m-1)
	psiM2 := psiSquared(bits, d.m-2)

	del1 := psiM - psiM1
	del2 := psiM - 2*psiM1 + psiM2

	// Degrees of freedom are 2^(m-2) and 2^(m-3); the latter is fractional
	// for m = 2, which Igamc handles.
	p1 := spfunc.Igamc(math.Exp2(float64(d.m-2)), del1/2)
	p2 := spfunc.Igamc(math.Exp2(float64(d.m-3)), del2/2)

	return []float64{p1, p2}, nil
}

// psiSquared computes the ψ²_m statistic: (2^m/n)·Σ c² − n over the
// counts c of every overlapping m-bit pattern, with the sequence treated
// as circular. ψ² of order ≤ 0 is zero by definition.
func psiSquared(bits []uint8, m int) float64 {
	if m <= 0 {
		return 0
	}

	n := float64(len(bits))

	sum := 0.0
	for _, c := range countPatterns(bits, m) {
		sum += float64(c) * float64(c)
	}

	return sum*float64(int(1)<<m)/n - n
}

// countPatterns tallies every overlapping m-bit pattern of the circular
// sequence, one count slot per pattern value.
func countPatterns(bits []uint8, m int) []int {
	n := len(bits)
	counts := make([]int, 1<<m)
	mask := 1<<m - 1

	pattern := 0
	for i := 0; i < m-1; i++ {
		pattern = pattern<<1 | int(bits[i])
	}

	for i := 0; i < n; i++ {
		pattern = (pattern<<1 | int(bits[(i+m-1)%n])) & mask
		counts[pattern]++
	}

	return counts
}
