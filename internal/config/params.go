package config

import (
	"fmt"
	"math"
)

// DefaultSampleRate is the tick rate used when none is configured.
const DefaultSampleRate = 48000

// Params are the audio constants every unit is constructed with.
type Params struct {
	SampleRate int
}

// DefaultParams returns Params at DefaultSampleRate.
func DefaultParams() Params {
	return Params{SampleRate: DefaultSampleRate}
}

// NewParams validates a sample rate.
func NewParams(sampleRate int) (Params, error) {
	if sampleRate <= 0 || sampleRate > math.MaxInt32 {
		return Params{}, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	return Params{SampleRate: sampleRate}, nil
}

// DT is the fixed tick period in seconds.
func (p Params) DT() float32 {
	return 1 / float32(p.SampleRate)
}
