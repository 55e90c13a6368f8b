package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/phisynth/internal/builder"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/engine"
	"github.com/vk/phisynth/internal/studio"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	a.startHealthcheckServer(ctx)
	defer a.closeHealthcheckServer(ctx)

	if a.config.Command == CommandPorts {
		return a.ports()
	}

	st, err := a.loadStudio(ctx)
	if err != nil {
		return err
	}

	if a.config.Command == CommandRemote {
		return a.remote(ctx, st)
	}

	report := st.Bind(ctx)
	a.logReport(report)

	switch a.config.Command {
	case CommandInspect:
		return a.inspect(st, report)
	case CommandRender:
		return a.render(ctx, st)
	case CommandPlay:
		return a.play(ctx, st)
	case CommandAnalyze:
		return a.analyze(st)
	}
	return fmt.Errorf("unknown command %q", a.config.Command)
}

// loadPatch reads the configured patch, or returns the default one.
func (a *App) loadPatch(ctx context.Context) (*config.Patch, error) {
	if a.config.PatchPath == "" {
		a.logger.Info("No patch given, using the default patch.")
		return DefaultPatch(), nil
	}
	if _, err := os.Stat(a.config.PatchPath); err != nil {
		return nil, fmt.Errorf("failed to load patch: %w", err)
	}
	patch, err := a.loader.Load(ctx, a.config.PatchPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load patch: %w", err)
	}
	a.logger.Info("Patch loaded.", "path", a.config.PatchPath, "nodes", patch.NodeCount())
	return patch, nil
}

func (a *App) loadStudio(ctx context.Context) (*studio.Studio, error) {
	patch, err := a.loadPatch(ctx)
	if err != nil {
		return nil, err
	}
	root, err := builder.Build(ctx, patch, a.registry, a.params)
	if err != nil {
		return nil, fmt.Errorf("failed to build patch: %w", err)
	}
	return studio.New(a.params, a.registry, root, studio.WithObserver(a.metrics)), nil
}

func (a *App) logReport(r *engine.Report) {
	if r.Clean() {
		a.logger.Info("Patch bound.", "parameters", r.Parameters, "slots", r.Slots)
		return
	}
	a.logger.Warn("Patch bound with problems; affected parameters read 0.",
		"unresolved", len(r.Unresolved),
		"cycles", len(r.Cycles),
		"duplicates", len(r.Duplicates),
		"output_bound", r.OutputBound,
	)
}
