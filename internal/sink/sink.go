package sink

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned when an audio backend is not present.
var ErrUnavailable = errors.New("audio backend unavailable")

// Sink accepts a closed batch of interleaved samples.
type Sink interface {
	Play(ctx context.Context, samples []float32, channels, sampleRate int) error
}

// DeviceInfo describes the audio backend for display.
type DeviceInfo struct {
	Version       string
	HostAPI       string
	DefaultOutput string
	SampleRate    float64
}

func checkFormat(samples []float32, channels, sampleRate int) error {
	if channels <= 0 {
		return fmt.Errorf("channel count must be positive, got %d", channels)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if len(samples)%channels != 0 {
		return fmt.Errorf("%d samples do not fill whole frames of %d channels", len(samples), channels)
	}
	return nil
}

func clip(s float32) float32 {
	return max(-1, min(1, s))
}
