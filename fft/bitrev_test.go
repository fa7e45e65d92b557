package fft

import "testing"

func TestPermuteBitReversalMatchesTable(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 64, 256} {
		data := make([]complex128, n)
		for i := range data {
			data[i] = complex(float64(i), 0)
		}

		permuteBitReversal(data)

		bits := log2(n)
		for i := 0; i < n; i++ {
			want := complex(float64(reverseBits(i, bits)), 0)
			if data[i] != want {
				t.Fatalf("n=%d: index %d = %v, want %v", n, i, data[i], want)
			}
		}
	}
}

func TestPermuteBitReversalInvolution(t *testing.T) {
	t.Parallel()

	n := 128
	original := randomBuffer(n, 1)

	data := make([]complex128, n)
	copy(data, original)

	permuteBitReversal(data)
	permuteBitReversal(data)

	for i := 0; i < n; i++ {
		if data[i] != original[i] {
			t.Fatalf("index %d changed after double permutation: %v != %v", i, data[i], original[i])
		}
	}
}

func TestPermuteDigitReversalInvolution(t *testing.T) {
	t.Parallel()

	n := 256
	idx := digitReversalIndices(n)

	original := randomBuffer(n, 2)

	data := make([]complex128, n)
	copy(data, original)

	permuteDigitReversal(data, idx)
	permuteDigitReversal(data, idx)

	for i := 0; i < n; i++ {
		if data[i] != original[i] {
			t.Fatalf("index %d changed after double permutation: %v != %v", i, data[i], original[i])
		}
	}
}

func TestReverseDigits4(t *testing.T) {
	t.Parallel()

	// 0b0110 holds base-4 digits (1,2); reversed they are (2,1) = 0b1001.
	if got := reverseDigits4(0b0110, 2); got != 0b1001 {
		t.Fatalf("reverseDigits4(0b0110, 2) = %#b, want 0b1001", got)
	}

	// Digit reversal must be an involution on the index range.
	digits := 3
	for i := 0; i < 64; i++ {
		if back := reverseDigits4(reverseDigits4(i, digits), digits); back != i {
			t.Fatalf("double reversal of %d gave %d", i, back)
		}
	}
}

func TestSizeClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		pow2 bool
		pow4 bool
	}{
		{0, false, false},
		{1, true, true},
		{2, true, false},
		{4, true, true},
		{12, false, false},
		{64, true, true},
		{512, true, false},
		{1024, true, true},
		{1 << 20, true, true},
	}

	for _, tc := range cases {
		if got := isPowerOfTwo(tc.n); got != tc.pow2 {
			t.Errorf("isPowerOfTwo(%d) = %v, want %v", tc.n, got, tc.pow2)
		}

		if got := isPowerOfFour(tc.n); got != tc.pow4 {
			t.Errorf("isPowerOfFour(%d) = %v, want %v", tc.n, got, tc.pow4)
		}
	}
}
