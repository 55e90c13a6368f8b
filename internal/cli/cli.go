package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/phisynth/internal/app"
	"github.com/vk/phisynth/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Options may appear before or after the command.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("phisynth", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
phisynth - A modular synthesizer built from coupled, named parameters.

Usage:
  phisynth [options] COMMAND [PATCH_PATH]

Commands:
  render    Bind the patch and write -seconds of output to the WAV file -out.
  play      Bind the patch, render -seconds of output and play it.
  inspect   Bind the patch and print the bind report (-format text|yaml|hcl).
  analyze   Bind the patch, render it and print its dominant frequency.
  ports     List MIDI input and output ports.
  remote    Load the patch and let the editor hub at -editor-url drive it.

Arguments:
  PATCH_PATH
    Path to a single .hcl file or a directory containing .hcl files.
    A single damped oscillator is used when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	patchFlag := flagSet.String("patch", "", "Path to the patch file or directory.")
	pFlag := flagSet.String("p", "", "Path to the patch file or directory (shorthand).")
	sampleRateFlag := flagSet.Int("sample-rate", config.DefaultSampleRate, "Ticks per second.")
	secondsFlag := flagSet.Float64("seconds", 2, "Duration to render, play or analyze.")
	samplesFlag := flagSet.Int("samples", 0, "Number of samples to render; overrides -seconds when > 0.")
	outFlag := flagSet.String("out", "out.wav", "Output WAV file for render.")
	formatFlag := flagSet.String("format", "text", "Inspect output format. Options: 'text', 'yaml' or 'hcl'.")
	editorURLFlag := flagSet.String("editor-url", "", "Editor hub URL for remote, e.g. http://localhost:3000.")
	editorNamespaceFlag := flagSet.String("editor-namespace", "/", "Socket.IO namespace of the editor hub.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	command := strings.ToLower(flagSet.Arg(0))

	// Flags may also follow the command.
	if err := flagSet.Parse(flagSet.Args()[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "command", command)

	path := ""
	if *patchFlag != "" {
		path = *patchFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))
	}
	slog.Debug("Patch path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Command:         command,
		PatchPath:       path,
		SampleRate:      *sampleRateFlag,
		Seconds:         *secondsFlag,
		Samples:         *samplesFlag,
		OutPath:         *outFlag,
		Format:          strings.ToLower(*formatFlag),
		EditorURL:       *editorURLFlag,
		EditorNamespace: *editorNamespaceFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
