//go:build !headless

package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/vk/phisynth/internal/ctxlog"
)

// DefaultFramesPerBuffer is the blocking-write chunk size.
const DefaultFramesPerBuffer = 1024

// PortAudio plays batches on the default output device with a blocking
// stream. Each Play initialises and terminates the library.
type PortAudio struct {
	FramesPerBuffer int
}

func (p *PortAudio) Play(ctx context.Context, samples []float32, channels, sampleRate int) error {
	if err := checkFormat(samples, channels, sampleRate); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer portaudio.Terminate()

	frames := p.FramesPerBuffer
	if frames <= 0 {
		frames = DefaultFramesPerBuffer
	}
	out := make([]float32, frames*channels)
	stream, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), frames, &out)
	if err != nil {
		return fmt.Errorf("failed to open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start output stream: %w", err)
	}
	logger.Info("Playing.", "frames", len(samples)/channels, "sample_rate", sampleRate)

	underflows := 0
	for off := 0; off < len(samples); off += len(out) {
		if err := ctx.Err(); err != nil {
			_ = stream.Abort()
			return err
		}
		n := copy(out, samples[off:])
		for i := range out[:n] {
			out[i] = clip(out[i])
		}
		clear(out[n:])
		if err := stream.Write(); err != nil {
			if errors.Is(err, portaudio.OutputUnderflowed) {
				underflows++
				continue
			}
			return fmt.Errorf("failed to write output stream: %w", err)
		}
	}
	if underflows > 0 {
		logger.Warn("Output underflowed during playback.", "count", underflows)
	}
	return stream.Stop()
}

// Describe reports the PortAudio version and default output device.
func Describe() (DeviceInfo, error) {
	if err := portaudio.Initialize(); err != nil {
		return DeviceInfo{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer portaudio.Terminate()

	info := DeviceInfo{Version: portaudio.VersionText()}
	if api, err := portaudio.DefaultHostApi(); err == nil {
		info.HostAPI = api.Name
	}
	dev, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return info, fmt.Errorf("no default output device: %w", err)
	}
	info.DefaultOutput = dev.Name
	info.SampleRate = dev.DefaultSampleRate
	return info, nil
}
