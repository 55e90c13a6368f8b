//go:build headless

package sink

import "context"

// DefaultFramesPerBuffer is the blocking-write chunk size.
const DefaultFramesPerBuffer = 1024

// PortAudio is unavailable in headless builds.
type PortAudio struct {
	FramesPerBuffer int
}

func (p *PortAudio) Play(ctx context.Context, samples []float32, channels, sampleRate int) error {
	if err := checkFormat(samples, channels, sampleRate); err != nil {
		return err
	}
	return ErrUnavailable
}

// Describe always fails in headless builds.
func Describe() (DeviceInfo, error) {
	return DeviceInfo{}, ErrUnavailable
}
