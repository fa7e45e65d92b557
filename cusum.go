package algosts

import (
	"math"

	"github.com/cwbudde/algo-sts/spfunc"
)

// CumulativeSums tracks the random walk formed by the ±1 sequence and
// checks its maximum excursion from zero, both forward and backward.
// It produces two p-values, one per direction.
type CumulativeSums struct{}

func (CumulativeSums) Name() string { return "cumulative-sums" }

func (CumulativeSums) MinBits() int { return 100 }

func (CumulativeSums) Assess(bits []uint8) ([]float64, error) {
	n := len(bits)

	forward := maxExcursion(bits, false)
	backward := maxExcursion(bits, true)

	return []float64{
		cusumPValue(forward, n),
		cusumPValue(backward, n),
	}, nil
}

// maxExcursion returns the maximum absolute partial sum of the ±1 walk,
// scanning the sequence from the far end when reverse is set.
func maxExcursion(bits []uint8, reverse bool) int {
	n := len(bits)
	sum, z := 0, 0

	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}

		sum += 2*int(bits[idx]) - 1

		excursion := sum
		if excursion < 0 {
			excursion = -excursion
		}

		if excursion > z {
			z = excursion
		}
	}

	return z
}

// cusumPValue evaluates the limiting distribution of the maximum
// excursion z of an n-step walk.
func cusumPValue(z, n int) float64 {
	if z == 0 {
		return 0
	}

	sqrtN := math.Sqrt(float64(n))
	zf := float64(z)

	sum1 := 0.0
	for k := (-n/z + 1) / 4; k <= (n/z-1)/4; k++ {
		sum1 += normalCDF(float64(4*k+1) * zf / sqrtN)
		sum1 -= normalCDF(float64(4*k-1) * zf / sqrtN)
	}

	sum2 := 0.0
	for k := (-n/z - 3) / 4; k <= (n/z-1)/4; k++ {
		sum2 += normalCDF(float64(4*k+3) * zf / sqrtN)
		sum2 -= normalCDF(float64(4*k+1) * zf / sqrtN)
	}

	// The two partial sums can overshoot by an ulp for extreme z.
	return math.Min(1, math.Max(0, 1-sum1+sum2))
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(x float64) float64 {
	return 0.5 * spfunc.Erfc(-x/math.Sqrt2)
}
