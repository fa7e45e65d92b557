package algosts

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sts/fft"
	"github.com/cwbudde/algo-sts/spfunc"
)

// Spectral is the discrete Fourier transform test: periodic features in
// the sequence concentrate spectral magnitude in few bins, pushing an
// abnormal number of peaks past the 95% threshold.
type Spectral struct{}

func (Spectral) Name() string { return "spectral" }

func (Spectral) MinBits() int { return 1000 }

func (Spectral) Assess(bits []uint8) ([]float64, error) {
	n := len(bits)

	signal := make([]float64, n)
	for i, b := range bits {
		signal[i] = float64(2*int(b) - 1)
	}

	bins := fft.SpectrumLen(n)
	spectrum := make([]float64, 2*bins)
	magnitude := make([]float64, bins)

	if err := fft.RealSpectrum(signal, spectrum, magnitude); err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	// 95% of the magnitudes of a random sequence fall below this
	// threshold: sqrt(n·log(1/0.05)).
	threshold := math.Sqrt(float64(n) * math.Log(1/0.05))

	// Only the first n/2 bins are counted; bin n/2 (Nyquist) is excluded.
	half := n / 2

	below := 0

	for k := 0; k < half; k++ {
		if magnitude[k] < threshold {
			below++
		}
	}

	expected := 0.95 * float64(half)
	d := (float64(below) - expected) / math.Sqrt(float64(n)*0.95*0.05/4)
	p := spfunc.Erfc(math.Abs(d) / math.Sqrt2)

	return []float64{p}, nil
}
