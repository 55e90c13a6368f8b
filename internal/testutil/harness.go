// Package testutil runs whole patches through the application for system tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/phisynth/internal/app"
	"github.com/vk/phisynth/internal/hcl"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunPatchTest writes files (relative path -> HCL) under a temporary "patch"
// directory and runs cfg against it with a background context.
func RunPatchTest(t *testing.T, files map[string]string, cfg app.Config, opts ...app.Option) *HarnessResult {
	t.Helper()
	return RunPatchTestWithContext(context.Background(), t, files, cfg, opts...)
}

// RunPatchTestWithContext is RunPatchTest with a caller-provided context.
func RunPatchTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, opts ...app.Option) *HarnessResult {
	t.Helper()

	patchDir := filepath.Join(t.TempDir(), "patch")
	require.NoError(t, os.Mkdir(patchDir, 0o755))
	for name, content := range files {
		path := filepath.Join(patchDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	if cfg.PatchPath == "" {
		cfg.PatchPath = patchDir
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 48000
	}
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &app.SafeBuffer{}, &app.SafeBuffer{}
	testApp := app.NewApp(out, logs, appConfig, hcl.NewLoader(appConfig.Params()), opts...)
	runErr := testApp.Run(ctx)

	if os.Getenv("PHISYNTH_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}
