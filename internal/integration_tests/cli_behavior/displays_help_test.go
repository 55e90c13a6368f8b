package cli_behavior

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vk/phisynth/internal/app"
	"github.com/vk/phisynth/internal/cli"
)

// Test for: displays help
func TestCLI_DisplaysHelp_WhenNoCommandIsProvided(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	outW := &bytes.Buffer{}

	// --- Act ---
	appConfig, shouldExit, err := cli.Parse([]string{}, outW)

	// --- Assert ---
	if err != nil {
		t.Fatalf("cli.Parse() returned an unexpected error: %v", err)
	}
	if !shouldExit {
		t.Fatal("cli.Parse() should have indicated an exit, but it did not")
	}
	for _, cmd := range app.Commands {
		if !strings.Contains(outW.String(), "  "+cmd+" ") {
			t.Errorf("expected usage to list command %q, got:\n%s", cmd, outW.String())
		}
	}
	if appConfig != nil {
		t.Errorf("expected a nil Config when displaying help, but got a non-nil config")
	}
}
