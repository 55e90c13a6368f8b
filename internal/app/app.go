package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/phisynth/internal/config"
	"github.com/vk/phisynth/internal/ctxlog"
	"github.com/vk/phisynth/internal/metrics"
	"github.com/vk/phisynth/internal/midiports"
	"github.com/vk/phisynth/internal/registry"
	"github.com/vk/phisynth/internal/sink"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	params     config.Params
	loader     config.Loader
	registry   *registry.Registry
	gatherer   prometheus.Gatherer
	metrics    *metrics.Metrics
	player     sink.Sink
	listPorts  func() (midiports.Ports, error)
	httpServer *http.Server
}

// Option overrides one of the App's collaborators, mostly for tests.
type Option func(*App)

// WithModules registers these modules instead of the core ones.
func WithModules(modules ...registry.Module) Option {
	return func(a *App) { a.registry = registry.NewWithModules(modules...) }
}

// WithPlayer replaces the audio device used by the play command.
func WithPlayer(s sink.Sink) Option {
	return func(a *App) { a.player = s }
}

// WithPortLister replaces the MIDI port enumeration used by the ports command.
func WithPortLister(list func() (midiports.Ports, error)) Option {
	return func(a *App) { a.listPorts = list }
}

// NewApp is the constructor for the main application. Command output goes to
// outW and log records to logW. Each App has its own logger, registry and
// metrics registry.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	params, err := config.NewParams(appConfig.SampleRate)
	if err != nil {
		// NewConfig already rejects this, so reaching here is a programmer error.
		panic(err)
	}

	promRegistry := prometheus.NewRegistry()
	a := &App{
		outW:      outW,
		logger:    logger,
		config:    appConfig,
		params:    params,
		loader:    loader,
		registry:  registry.NewWithModules(coreModules...),
		gatherer:  promRegistry,
		metrics:   metrics.New(promRegistry),
		player:    &sink.PortAudio{FramesPerBuffer: sink.DefaultFramesPerBuffer},
		listPorts: midiports.List,
	}
	for _, opt := range opts {
		opt(a)
	}
	logger.Debug("Node types registered.", "types", a.registry.Types())

	// A variant that misreports its own parameters is a programmer error.
	if err := a.registry.Validate(ctx, params); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Gatherer exposes the App's metrics. This is primarily for testing.
func (a *App) Gatherer() prometheus.Gatherer {
	return a.gatherer
}
