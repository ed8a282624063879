package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guess.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("full file", func(t *testing.T) {
		path := writeConfig(t, `
game {
  max_range   = 250
  slider_min  = 5
  slider_max  = 500
  slider_step = 25
  seed        = 1234
}

ui {
  log_level  = "debug"
  log_file   = "/tmp/guess-test.log"
  hide_timer = true
  no_color   = true
}
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 250, cfg.Game.MaxRange)
		assert.Equal(t, 5, cfg.Game.SliderMin)
		assert.Equal(t, 500, cfg.Game.SliderMax)
		assert.Equal(t, 25, cfg.Game.SliderStep)
		assert.Equal(t, int64(1234), cfg.Game.Seed)
		assert.Equal(t, "debug", cfg.UI.LogLevel)
		assert.Equal(t, "/tmp/guess-test.log", cfg.UI.LogFile)
		assert.True(t, cfg.UI.HideTimer)
		assert.True(t, cfg.UI.NoColor)
		assert.Equal(t, log.DebugLevel, cfg.LogLevel())
		require.NoError(t, cfg.Validate())
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `
game {
  max_range = 50
}
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 50, cfg.Game.MaxRange)
		assert.Equal(t, 10, cfg.Game.SliderMin)
		assert.Equal(t, 1000, cfg.Game.SliderMax)
		assert.Equal(t, 10, cfg.Game.SliderStep)
		assert.Equal(t, "warn", cfg.UI.LogLevel)
		assert.Equal(t, "guess.log", cfg.UI.LogFile)
		assert.False(t, cfg.UI.HideTimer)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeConfig(t, `game {`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("unknown attribute", func(t *testing.T) {
		path := writeConfig(t, `
game {
  difficulty = "hard"
}
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode HCL")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:    "slider minimum below two",
			modify:  func(c *Config) { c.Game.SliderMin = 1; c.Game.MaxRange = 1 },
			wantErr: "slider_min",
		},
		{
			name:    "inverted slider",
			modify:  func(c *Config) { c.Game.SliderMax = c.Game.SliderMin },
			wantErr: "slider_max",
		},
		{
			name:    "zero step",
			modify:  func(c *Config) { c.Game.SliderStep = 0 },
			wantErr: "slider_step",
		},
		{
			name:    "max range above slider",
			modify:  func(c *Config) { c.Game.MaxRange = 5000 },
			wantErr: "outside the slider range",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.UI.LogLevel = "loud" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := Default()
	assert.Equal(t, log.WarnLevel, cfg.LogLevel())

	cfg.UI.LogLevel = "nonsense"
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}
