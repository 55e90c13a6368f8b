package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	base := func(cmd string) Config {
		return Config{Command: cmd, SampleRate: 48000, Seconds: 0.5, OutPath: "out.wav"}
	}

	t.Run("seconds become samples", func(t *testing.T) {
		cfg, err := NewConfig(base(CommandRender))
		require.NoError(t, err)
		assert.Equal(t, 24000, cfg.Samples)
		assert.Equal(t, FormatText, cfg.Format)
	})

	t.Run("samples win over seconds", func(t *testing.T) {
		c := base(CommandAnalyze)
		c.Samples = 100
		cfg, err := NewConfig(c)
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Samples)
	})

	t.Run("ports and inspect need no duration", func(t *testing.T) {
		for _, cmd := range []string{CommandPorts, CommandInspect} {
			c := base(cmd)
			c.Seconds = 0
			_, err := NewConfig(c)
			assert.NoError(t, err, cmd)
		}
	})

	errorCases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown command", func(c *Config) { c.Command = "compose" }, `unknown command "compose"`},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }, "sample rate must be positive"},
		{"negative seconds", func(c *Config) { c.Seconds = -1 }, "must not be negative"},
		{"zero duration", func(c *Config) { c.Seconds = 0 }, "render needs a positive duration"},
		{"render without output", func(c *Config) { c.OutPath = "" }, "render needs an output path"},
		{"remote without url", func(c *Config) { c.Command = CommandRemote }, "remote needs an editor URL"},
		{"bad format", func(c *Config) { c.Format = "json" }, "invalid format"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			c := base(CommandRender)
			tc.mutate(&c)
			_, err := NewConfig(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
