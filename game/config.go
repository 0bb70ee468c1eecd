package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/phanxgames/jamjar"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for a config that cannot run the game.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the game settings. Zero fields in a YAML file keep their
// defaults.
type Config struct {
	WindowWidth  float64 `yaml:"window_width"`
	WindowHeight float64 `yaml:"window_height"`
	Debug        bool    `yaml:"debug"`
	// TintDuration is the hover/drag tint transition time in seconds.
	TintDuration float32 `yaml:"tint_duration"`

	StartCoins int `yaml:"start_coins"`
	// PricePerNeed is paid for every customer need a served jar meets.
	PricePerNeed int `yaml:"price_per_need"`
	// Seed drives customer stories. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	// SaveName is the gdata application name. Empty disables saving.
	SaveName string `yaml:"save_name"`
	// LayoutPath loads scene layouts from disk instead of the built-in
	// layout. In debug mode the file is watched and reloaded on change.
	LayoutPath string `yaml:"layout_path"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		TintDuration: 0.12,
		StartCoins:   0,
		PricePerNeed: 5,
		SaveName:     "jamjar",
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first setting the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window %gx%g: %w", c.WindowWidth, c.WindowHeight, ErrInvalidConfig)
	case c.TintDuration < 0:
		return fmt.Errorf("tint_duration %g: %w", c.TintDuration, ErrInvalidConfig)
	case c.PricePerNeed < 0:
		return fmt.Errorf("price_per_need %d: %w", c.PricePerNeed, ErrInvalidConfig)
	case c.StartCoins < 0:
		return fmt.Errorf("start_coins %d: %w", c.StartCoins, ErrInvalidConfig)
	}
	return nil
}

// Engine returns the engine settings.
func (c Config) Engine() jamjar.Config {
	return jamjar.Config{
		WindowWidth:  c.WindowWidth,
		WindowHeight: c.WindowHeight,
		TintDuration: c.TintDuration,
		Debug:        c.Debug,
	}
}
