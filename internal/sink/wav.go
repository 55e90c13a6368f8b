package sink

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/vk/phisynth/internal/ctxlog"
)

const (
	wavBitDepth  = 16
	wavPCMFormat = 1
	wavFullScale = math.MaxInt16
)

// WAVFile writes each batch to Path, replacing any existing file. Samples
// outside [-1, 1] are clipped.
type WAVFile struct {
	Path string
}

func (w *WAVFile) Play(ctx context.Context, samples []float32, channels, sampleRate int) error {
	if err := checkFormat(samples, channels, sampleRate); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, channels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: wavBitDepth,
	}
	clipped := 0
	for i, s := range samples {
		if s > 1 || s < -1 {
			clipped++
		}
		buf.Data[i] = int(math.Round(float64(clip(s)) * wavFullScale))
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", w.Path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalise %s: %w", w.Path, err)
	}

	ctxlog.FromContext(ctx).Info("Wrote WAV file.",
		"path", w.Path,
		"frames", len(samples)/channels,
		"channels", channels,
		"sample_rate", sampleRate,
		"clipped", clipped,
	)
	return nil
}
