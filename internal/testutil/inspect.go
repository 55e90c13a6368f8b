package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/app"
	"gopkg.in/yaml.v3"
)

// Issue mirrors an unresolved or cyclic reference in inspect output.
type Issue struct {
	Parameter string `yaml:"parameter"`
	Target    string `yaml:"target"`
}

// Row mirrors one parameter row in inspect output.
type Row struct {
	Name  string  `yaml:"name"`
	Link  string  `yaml:"link"`
	Slot  int     `yaml:"slot"`
	Value float32 `yaml:"value"`
}

// Inspection is the decoded YAML form of the inspect command.
type Inspection struct {
	Parameters  int      `yaml:"parameters"`
	Slots       int      `yaml:"slots"`
	Aliased     int      `yaml:"aliased"`
	OutputBound bool     `yaml:"output_bound"`
	Unresolved  []Issue  `yaml:"unresolved"`
	Cycles      []Issue  `yaml:"cycles"`
	Duplicates  []string `yaml:"duplicates"`
	Table       []Row    `yaml:"table"`
}

// Row returns the row named name, failing the test if it is absent.
func (in *Inspection) Row(t *testing.T, name string) Row {
	t.Helper()
	for _, r := range in.Table {
		if r.Name == name {
			return r
		}
	}
	require.Failf(t, "row not found", "no parameter named %q", name)
	return Row{}
}

// Inspect binds the patch in files and decodes the YAML report.
func Inspect(t *testing.T, files map[string]string) (*Inspection, *HarnessResult) {
	t.Helper()
	result := RunPatchTest(t, files, app.Config{Command: app.CommandInspect, Format: app.FormatYAML})
	require.NoError(t, result.Err)

	var in Inspection
	require.NoError(t, yaml.Unmarshal([]byte(result.Output), &in))
	return &in, result
}
