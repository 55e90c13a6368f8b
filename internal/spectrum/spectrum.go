// Package spectrum analyses rendered batches: dominant frequency through a
// Hann-windowed FFT, plus peak and RMS level.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// MinSamples is the shortest batch Analyze accepts.
const MinSamples = 16

// ErrTooShort is returned for batches shorter than MinSamples.
var ErrTooShort = errors.New("batch too short for analysis")

// Spectrum holds the magnitudes of bins 0..Size/2.
type Spectrum struct {
	SampleRate int
	Size       int
	Magnitude  []float64
}

// Analyze transforms the first power-of-two run of samples.
func Analyze(samples []float32, sampleRate int) (*Spectrum, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if len(samples) < MinSamples {
		return nil, fmt.Errorf("%w: %d samples", ErrTooShort, len(samples))
	}
	size := 1
	for size*2 <= len(samples) {
		size *= 2
	}

	f, err := fft.New(size)
	if err != nil {
		return nil, err
	}
	buf := make([]complex128, size)
	for i := range buf {
		w := (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
		buf[i] = complex(float64(samples[i])*w, 0)
	}
	buf = f.Transform(buf)

	mag := make([]float64, size/2+1)
	for k := range mag {
		mag[k] = cmplx.Abs(buf[k])
	}
	return &Spectrum{SampleRate: sampleRate, Size: size, Magnitude: mag}, nil
}

// BinWidth is the frequency spacing of adjacent bins in Hz.
func (s *Spectrum) BinWidth() float64 {
	return float64(s.SampleRate) / float64(s.Size)
}

// Dominant returns the frequency of the strongest non-DC bin, refined by
// parabolic interpolation over the log magnitudes of its neighbours. It
// returns 0 for a silent batch.
func (s *Spectrum) Dominant() float64 {
	best := 0
	for k := 1; k < len(s.Magnitude); k++ {
		if s.Magnitude[k] > s.Magnitude[best] || best == 0 {
			best = k
		}
	}
	if best == 0 || s.Magnitude[best] == 0 {
		return 0
	}

	offset := 0.0
	if best > 1 && best < len(s.Magnitude)-1 {
		a := math.Log(s.Magnitude[best-1] + 1e-300)
		b := math.Log(s.Magnitude[best])
		c := math.Log(s.Magnitude[best+1] + 1e-300)
		if d := a - 2*b + c; d != 0 {
			offset = 0.5 * (a - c) / d
		}
	}
	return (float64(best) + offset) * s.BinWidth()
}

// DominantFrequency is Analyze followed by Dominant.
func DominantFrequency(samples []float32, sampleRate int) (float64, error) {
	s, err := Analyze(samples, sampleRate)
	if err != nil {
		return 0, err
	}
	return s.Dominant(), nil
}

// Peak returns the largest absolute sample.
func Peak(samples []float32) float32 {
	var peak float32
	for _, v := range samples {
		peak = max(peak, float32(math.Abs(float64(v))))
	}
	return peak
}

// RMS returns the root mean square level, 0 for an empty batch.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(samples)))
}
