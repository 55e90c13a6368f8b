package patch_features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/testutil"
)

// Files of a patch directory are read in sorted path order, so the oscillator
// in 01_osc.hcl comes before the output in 02_out.hcl.
func TestPatch_FilesAreConcatenatedInPathOrder(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"02_out.hcl": `node "Output" "Output" { OUT = "Osc: x" }`,
		"01_osc.hcl": `
description = "two files"
node "DO" "Osc" {
  frequency = 220
  damp      = 0
}
`,
		"notes.txt": "not a patch",
	}

	in, _ := testutil.Inspect(t, files)

	require.Len(t, in.Table, 7)
	assert.Equal(t, "Osc: frequency", in.Table[0].Name)
	assert.Equal(t, "OUT", in.Table[6].Name)
	assert.True(t, in.OutputBound)
	assert.Equal(t, in.Row(t, "Osc: x").Slot, in.Row(t, "OUT").Slot)
}

func TestPatch_NestedFilesAreLoaded(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl":        `node "Output" "Output" { OUT = "Osc: x" }`,
		"voices/lead.hcl": `node "DO" "Osc" {}`,
	}

	in, _ := testutil.Inspect(t, files)
	assert.Equal(t, 7, in.Parameters)
	assert.Empty(t, in.Unresolved)
}
