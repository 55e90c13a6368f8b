package bind_semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/testutil"
)

func TestBind_AliasChainSharesOneSlot(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "Output" "Output" { OUT = "A: out" }
node "ABS" "A" { inp = "B: inp" }
node "ABS" "B" { inp = "Osc: x" }
node "DO" "Osc" {}
`,
	}

	in, result := testutil.Inspect(t, files)

	slot := in.Row(t, "Osc: x").Slot
	assert.Equal(t, slot, in.Row(t, "A: inp").Slot)
	assert.Equal(t, slot, in.Row(t, "B: inp").Slot)
	assert.NotEqual(t, slot, in.Row(t, "OUT").Slot)
	assert.Equal(t, 3, in.Aliased)
	assert.Equal(t, 8, in.Slots)
	assert.Contains(t, result.LogOutput, "Patch bound.")
}

func TestBind_ProblemsAreReportedNotFatal(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "Output" "Output" { OUT = "Osc: x" }
node "DO" "Osc" {}
node "DO" "Osc2" { frequency = "Missing: x" }
node "ABS" "Loop1" { inp = "Loop2: inp" }
node "ABS" "Loop2" { inp = "Loop1: inp" }
`,
	}

	in, result := testutil.Inspect(t, files)

	require.Len(t, in.Unresolved, 1)
	assert.Equal(t, testutil.Issue{Parameter: "Osc2: frequency", Target: "Missing: x"}, in.Unresolved[0])
	assert.Len(t, in.Cycles, 2)
	assert.Equal(t, -1, in.Row(t, "Loop1: inp").Slot)
	assert.Equal(t, -1, in.Row(t, "Osc2: frequency").Slot)
	assert.True(t, in.OutputBound)
	assert.Contains(t, result.LogOutput, "Patch bound with problems")
}

func TestBind_DuplicateNamesInDifferentGroups(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"main.hcl": `
node "Output" "Output" { OUT = "Osc: x" }
group "a" {
  node "DO" "Osc" { x = 0.25 }
}
group "b" {
  node "DO" "Osc" { x = 0.75 }
}
`,
	}

	in, _ := testutil.Inspect(t, files)

	assert.Contains(t, in.Duplicates, "Osc: x")
	assert.Equal(t, float32(0.25), in.Row(t, "OUT").Value)
}

func TestBind_MissingOutput(t *testing.T) {
	t.Parallel()

	in, _ := testutil.Inspect(t, map[string]string{"main.hcl": `node "DO" "Osc" {}`})
	assert.False(t, in.OutputBound)
	assert.Equal(t, 6, in.Slots)
}
