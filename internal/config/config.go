// Package config loads the game's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/guess/internal/game"
)

// DefaultPath is the configuration file read when no path is given
const DefaultPath = "guess.hcl"

// Config represents the complete game configuration
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls the range slider and the random source
type GameSettings struct {
	MaxRange   int   `hcl:"max_range,optional"`
	SliderMin  int   `hcl:"slider_min,optional"`
	SliderMax  int   `hcl:"slider_max,optional"`
	SliderStep int   `hcl:"slider_step,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	HideTimer bool   `hcl:"hide_timer,optional"`
	NoColor   bool   `hcl:"no_color,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			MaxRange:   game.DefaultMaxRange,
			SliderMin:  10,
			SliderMax:  1000,
			SliderStep: 10,
		},
		UI: &UISettings{
			LogLevel: "warn",
			LogFile:  "guess.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults(Default())
	return &cfg, nil
}

// applyDefaults fills every unset value from defaults
func (c *Config) applyDefaults(defaults *Config) {
	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Game.MaxRange == 0 {
		c.Game.MaxRange = defaults.Game.MaxRange
	}
	if c.Game.SliderMin == 0 {
		c.Game.SliderMin = defaults.Game.SliderMin
	}
	if c.Game.SliderMax == 0 {
		c.Game.SliderMax = defaults.Game.SliderMax
	}
	if c.Game.SliderStep == 0 {
		c.Game.SliderStep = defaults.Game.SliderStep
	}

	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	g := c.Game

	if g.SliderMin < 2 {
		return fmt.Errorf("slider_min must be at least 2, got %d", g.SliderMin)
	}
	if g.SliderMax <= g.SliderMin {
		return fmt.Errorf("slider_max (%d) must be greater than slider_min (%d)", g.SliderMax, g.SliderMin)
	}
	if g.SliderStep < 1 {
		return fmt.Errorf("slider_step must be positive")
	}
	if g.MaxRange < g.SliderMin || g.MaxRange > g.SliderMax {
		return fmt.Errorf("max_range %d is outside the slider range %d-%d", g.MaxRange, g.SliderMin, g.SliderMax)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
