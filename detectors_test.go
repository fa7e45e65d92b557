package algosts

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// epsilon converts a "0"/"1" string into a bit slice.
func epsilon(s string) []uint8 {
	s = strings.ReplaceAll(s, " ", "")
	bits := make([]uint8, len(s))

	for i := range s {
		if s[i] == '1' {
			bits[i] = 1
		}
	}

	return bits
}

func randomBits(n int, seed int64) []uint8 {
	rng := rand.New(rand.NewSource(seed))
	bits := make([]uint8, n)

	for i := range bits {
		bits[i] = uint8(rng.Intn(2))
	}

	return bits
}

func assessOne(t *testing.T, d Detector, bits []uint8) []float64 {
	t.Helper()

	pvalues, err := d.Assess(bits)
	require.NoError(t, err)
	require.NotEmpty(t, pvalues)

	for _, p := range pvalues {
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
	}

	return pvalues
}

// Worked examples from SP800-22. The short sequences bypass MinBits by
// calling Assess directly; the battery enforces MinBits separately.

func TestFrequencyWorkedExample(t *testing.T) {
	t.Parallel()

	p := assessOne(t, Frequency{}, epsilon("1011010101"))
	assert.InDelta(t, 0.527089, p[0], 1e-6)
}

func TestBlockFrequencyWorkedExample(t *testing.T) {
	t.Parallel()

	p := assessOne(t, NewBlockFrequency(3), epsilon("0110011010"))
	assert.InDelta(t, 0.801252, p[0], 1e-6)
}

func TestRunsWorkedExample(t *testing.T) {
	t.Parallel()

	p := assessOne(t, Runs{}, epsilon("1001101011"))
	assert.InDelta(t, 0.147232, p[0], 1e-6)
}

func TestRunsPreTestFailure(t *testing.T) {
	t.Parallel()

	// Heavily biased input short-circuits to p = 0.
	bits := make([]uint8, 1000)
	for i := 0; i < 100; i++ {
		bits[i] = 1
	}

	p := assessOne(t, Runs{}, bits)
	assert.Zero(t, p[0])
}

func TestLongestRunClassDistribution(t *testing.T) {
	t.Parallel()

	// Sixteen 8-bit blocks with longest runs of ones 1, 2, and 3, chosen
	// to reproduce the class counts (4, 9, 3, 0) of the SP800-22 worked
	// example: χ² = 4.8825, p = 0.180609.
	var sb strings.Builder

	for i := 0; i < 4; i++ {
		sb.WriteString("10101010") // longest run 1
	}

	for i := 0; i < 9; i++ {
		sb.WriteString("11001100") // longest run 2
	}

	for i := 0; i < 3; i++ {
		sb.WriteString("11100100") // longest run 3
	}

	p := assessOne(t, LongestRun{}, epsilon(sb.String()))
	assert.InDelta(t, 0.180609, p[0], 1e-4)
}

func TestCumulativeSumsWorkedExample(t *testing.T) {
	t.Parallel()

	p := assessOne(t, CumulativeSums{}, epsilon("1011010111"))
	require.Len(t, p, 2)

	// Forward and backward walks both reach excursion 4.
	assert.InDelta(t, 0.411659, p[0], 1e-4)
	assert.InDelta(t, 0.411659, p[1], 1e-4)
}

func TestSerialWorkedExample(t *testing.T) {
	t.Parallel()

	p := assessOne(t, NewSerial(3), epsilon("0011011101"))
	require.Len(t, p, 2)
	assert.InDelta(t, 0.808792, p[0], 1e-6)
	assert.InDelta(t, 0.670320, p[1], 1e-6)
}

func TestApproximateEntropyWorkedExample(t *testing.T) {
	t.Parallel()

	p := assessOne(t, NewApproximateEntropy(3), epsilon("0100110101"))
	assert.InDelta(t, 0.261961, p[0], 1e-5)
}

func TestSpectralWorkedExample(t *testing.T) {
	t.Parallel()

	// Half-spectrum magnitudes are {0, 2, 4.472, 2, 4.472}, all below the
	// 95% threshold sqrt(10*ln 20) = 5.473, so N1 = 5 against N0 = 4.75.
	p := assessOne(t, Spectral{}, epsilon("1001010011"))
	assert.InDelta(t, 0.468160, p[0], 1e-5)
}

func TestSpectralRejectsPeriodicSequence(t *testing.T) {
	t.Parallel()

	// A strictly periodic sequence concentrates all spectral energy in a
	// handful of bins and must fail decisively.
	bits := make([]uint8, 4096)
	for i := range bits {
		if i%8 < 4 {
			bits[i] = 1
		}
	}

	p := assessOne(t, Spectral{}, bits)
	assert.Less(t, p[0], 0.01)
}

func TestBinaryRank(t *testing.T) {
	t.Parallel()

	identity := make([]uint32, rankMatrixSize)
	for i := range identity {
		identity[i] = 1 << uint(i)
	}

	assert.Equal(t, rankMatrixSize, binaryRank(identity))

	same := make([]uint32, rankMatrixSize)
	for i := range same {
		same[i] = 0xDEADBEEF
	}

	assert.Equal(t, 1, binaryRank(same))

	zero := make([]uint32, rankMatrixSize)
	assert.Equal(t, 0, binaryRank(zero))
}

func TestRankDegenerateSequenceFails(t *testing.T) {
	t.Parallel()

	// All-zero bits produce all-zero matrices: every rank lands in the
	// "lower" class and the statistic explodes.
	bits := make([]uint8, Rank{}.MinBits())

	p := assessOne(t, Rank{}, bits)
	assert.Less(t, p[0], 1e-6)
}

func TestDetectorsOnBiasedInput(t *testing.T) {
	t.Parallel()

	// A constant-one sequence is the least random input possible; the
	// counting detectors must reject it outright.
	bits := make([]uint8, 1<<16)
	for i := range bits {
		bits[i] = 1
	}

	for _, d := range []Detector{Frequency{}, NewBlockFrequency(128), Runs{}, CumulativeSums{}} {
		p := assessOne(t, d, bits)
		assert.Less(t, p[0], 1e-6, "detector %s", d.Name())
	}
}

func TestDetectorsOnRandomInput(t *testing.T) {
	t.Parallel()

	// Deterministic pseudorandom input: every detector must produce a
	// well-formed p-value without error. The exact values are seed
	// dependent, so only sanity is asserted here; the worked examples
	// above pin the formulas down.
	bits := randomBits(1<<19, 42)

	for _, d := range DefaultDetectors() {
		require.GreaterOrEqual(t, len(bits), d.MinBits(), "detector %s", d.Name())
		assessOne(t, d, bits)
	}
}
