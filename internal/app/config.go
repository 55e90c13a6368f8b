package app

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/vk/phisynth/internal/config"
)

// Commands understood by Run.
const (
	CommandRender  = "render"
	CommandPlay    = "play"
	CommandInspect = "inspect"
	CommandAnalyze = "analyze"
	CommandPorts   = "ports"
	CommandRemote  = "remote"
)

// Inspect output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// Commands lists every command in usage order.
var Commands = []string{CommandRender, CommandPlay, CommandInspect, CommandAnalyze, CommandPorts, CommandRemote}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command   string
	PatchPath string // hcl file or directory; empty selects the default patch

	SampleRate int
	Seconds    float64
	Samples    int // wins over Seconds when > 0
	OutPath    string
	Format     string

	EditorURL       string
	EditorNamespace string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains(Commands, cfg.Command) {
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", cfg.SampleRate)
	}
	if cfg.Samples < 0 || cfg.Seconds < 0 || math.IsNaN(cfg.Seconds) || math.IsInf(cfg.Seconds, 0) {
		return nil, errors.New("duration must not be negative")
	}
	if cfg.Samples == 0 {
		cfg.Samples = int(math.Round(cfg.Seconds * float64(cfg.SampleRate)))
	}

	switch cfg.Command {
	case CommandRender, CommandPlay, CommandAnalyze:
		if cfg.Samples == 0 {
			return nil, fmt.Errorf("%s needs a positive duration", cfg.Command)
		}
	}
	if cfg.Command == CommandRender && cfg.OutPath == "" {
		return nil, errors.New("render needs an output path")
	}
	if cfg.Command == CommandRemote && cfg.EditorURL == "" {
		return nil, errors.New("remote needs an editor URL")
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	switch cfg.Format {
	case FormatText, FormatYAML, FormatHCL:
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text', 'yaml' or 'hcl'", cfg.Format)
	}

	return &cfg, nil
}

// Params returns the audio constants every unit is built with.
func (c *Config) Params() config.Params {
	return config.Params{SampleRate: c.SampleRate}
}
