//go:build headless

package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortAudio_Headless(t *testing.T) {
	err := (&PortAudio{}).Play(context.Background(), []float32{0}, 1, 48000)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = Describe()
	assert.ErrorIs(t, err, ErrUnavailable)
}
