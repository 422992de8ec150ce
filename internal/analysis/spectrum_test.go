package analysis

import (
	"math"
	"testing"
)

func TestFFTConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1}
	fft := FFT(data)

	if math.Abs(real(fft[0])-4) > 1e-12 {
		t.Errorf("DC bin = %v, want 4", fft[0])
	}
	for i := 1; i < len(fft); i++ {
		if math.Abs(real(fft[i])) > 1e-12 || math.Abs(imag(fft[i])) > 1e-12 {
			t.Errorf("bin %d = %v, want 0", i, fft[i])
		}
	}
}

func TestPowerSpectrumPadsOddLengths(t *testing.T) {
	data := make([]float64, 100) // not a power of two
	ps := PowerSpectrum(data)
	if len(ps) != 64 {
		t.Errorf("spectrum length = %d, want 64", len(ps))
	}
}

func TestDominantFrequency(t *testing.T) {
	// 4 full cycles over a 2 second window: 2 Hz.
	n := 128
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}
	ps := PowerSpectrum(data)

	freq := DominantFrequency(ps, 2.0)
	if math.Abs(freq-2.0) > 1e-9 {
		t.Errorf("dominant frequency = %v, want 2.0", freq)
	}

	if DominantFrequency(ps, 0) != 0 {
		t.Error("zero duration should yield zero frequency")
	}
	if DominantFrequency([]float64{5}, 1) != 0 {
		t.Error("DC-only spectrum should yield zero frequency")
	}
}
