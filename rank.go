package algosts

import (
	"github.com/cwbudde/algo-sts/spfunc"
)

// rankMatrixSize is the row/column count of the binary matrices the rank
// detector builds from the sequence.
const rankMatrixSize = 32

// Rank builds 32×32 binary matrices from the sequence and checks the
// distribution of their ranks over GF(2) against the theoretical
// probabilities for random matrices.
type Rank struct{}

func (Rank) Name() string { return "rank" }

// MinBits requires at least 38 matrices, per SP800-22.
func (Rank) MinBits() int { return 38 * rankMatrixSize * rankMatrixSize }

func (Rank) Assess(bits []uint8) ([]float64, error) {
	const bitsPerMatrix = rankMatrixSize * rankMatrixSize

	n := len(bits)
	matrices := n / bitsPerMatrix

	// Asymptotic probabilities of rank 32, 31, and ≤30 for a random
	// 32×32 matrix over GF(2).
	const (
		pFull  = 0.2888
		pOne   = 0.5776
		pLower = 0.1336
	)

	var full, one, lower int

	rows := make([]uint32, rankMatrixSize)

	for m := 0; m < matrices; m++ {
		base := m * bitsPerMatrix

		for r := 0; r < rankMatrixSize; r++ {
			var row uint32

			for c := 0; c < rankMatrixSize; c++ {
				row = row<<1 | uint32(bits[base+r*rankMatrixSize+c])
			}

			rows[r] = row
		}

		switch rank := binaryRank(rows); {
		case rank == rankMatrixSize:
			full++
		case rank == rankMatrixSize-1:
			one++
		default:
			lower++
		}
	}

	nf := float64(matrices)
	chi2 := sq(float64(full)-pFull*nf)/(pFull*nf) +
		sq(float64(one)-pOne*nf)/(pOne*nf) +
		sq(float64(lower)-pLower*nf)/(pLower*nf)

	p := spfunc.Igamc(1, chi2/2)

	return []float64{p}, nil
}

func sq(x float64) float64 { return x * x }

// binaryRank computes the rank of a square binary matrix over GF(2) by
// Gaussian elimination. rows is clobbered.
func binaryRank(rows []uint32) int {
	rank := 0

	for col := rankMatrixSize - 1; col >= 0 && rank < len(rows); col-- {
		bit := uint32(1) << uint(col)

		pivot := -1

		for r := rank; r < len(rows); r++ {
			if rows[r]&bit != 0 {
				pivot = r
				break
			}
		}

		if pivot < 0 {
			continue
		}

		rows[rank], rows[pivot] = rows[pivot], rows[rank]

		for r := range rows {
			if r != rank && rows[r]&bit != 0 {
				rows[r] ^= rows[rank]
			}
		}

		rank++
	}

	return rank
}
