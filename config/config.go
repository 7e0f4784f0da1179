package config

import (
	"errors"
	"flowers/engine"
	"flowers/utils"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config mirrors flowers.toml. Keys missing from the file keep their defaults.
type Config struct {
	Width             int    `toml:"width"`
	Height            int    `toml:"height"`
	Seed              uint64 `toml:"seed"` // 0 seeds from the clock
	IterationsPerTick int    `toml:"iterations_per_tick"`
	MutationDelta     int    `toml:"mutation_delta"`
	ClearRadius       int    `toml:"clear_radius"`
	LogLevel          string `toml:"log_level"`
}

func NewDefault() *Config {
	e := engine.DefaultConfig()

	return &Config{
		Width:             800,
		Height:            800,
		IterationsPerTick: e.IterationsPerTick,
		MutationDelta:     e.MutationDelta,
		ClearRadius:       e.ClearRadius,
		LogLevel:          "info",
	}
}

// Load reads a TOML file on top of the defaults. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	if filename == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(filename, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", filename, err)
	}

	return cfg, nil
}

// Save writes cfg as TOML.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("save config %s: %w", filename, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.IterationsPerTick < 0 {
		return fmt.Errorf("invalid iterations_per_tick %d", c.IterationsPerTick)
	}
	if c.MutationDelta < 0 {
		return fmt.Errorf("invalid mutation_delta %d", c.MutationDelta)
	}
	if c.ClearRadius < 0 {
		return fmt.Errorf("invalid clear_radius %d", c.ClearRadius)
	}
	if _, err := utils.NewLogger(io.Discard, c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

func (c *Config) Engine() engine.Config {
	return engine.Config{
		IterationsPerTick: c.IterationsPerTick,
		MutationDelta:     c.MutationDelta,
		ClearRadius:       c.ClearRadius,
	}
}
