package patch_features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/phisynth/internal/testutil"
)

func TestPatch_ExpressionsUseTheSampleRate(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "Output" "Output" { OUT = "Osc: x" }
node "DO" "Osc" {
  frequency = sample_rate / 100
  damp      = max(0, min(1, 0.25 * 2))
  x         = pow(2, -1)
  ys        = floor(dt * 1000)
}
`,
	}

	in, _ := testutil.Inspect(t, files)

	assert.Equal(t, float32(480), in.Row(t, "Osc: frequency").Value)
	assert.Equal(t, float32(0.5), in.Row(t, "Osc: damp").Value)
	assert.Equal(t, float32(0.5), in.Row(t, "Osc: x").Value)
	assert.Equal(t, float32(0), in.Row(t, "Osc: ys").Value)
}
