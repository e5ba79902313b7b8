// Package config holds the settings consumed by the harness and handed to the
// engine. Values come from defaults, then an optional JSON file, then LIFE_*
// environment variables, then flag-style overrides, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"

	"sparselife/internal/core"
)

// ErrInvalidConfig reports a configuration value the engine must never see.
var ErrInvalidConfig = errors.New("config: invalid value")

// Grid holds the playing-field settings.
type Grid struct {
	MinX      int32 `json:"min_x" env:"LIFE_GRID_MIN_X"`
	MaxX      int32 `json:"max_x" env:"LIFE_GRID_MAX_X"`
	MinY      int32 `json:"min_y" env:"LIFE_GRID_MIN_Y"`
	MaxY      int32 `json:"max_y" env:"LIFE_GRID_MAX_Y"`
	WrapEdges bool  `json:"wrap_edges" env:"LIFE_GRID_WRAP_EDGES"`
}

// Simulation holds stepping and stability settings.
type Simulation struct {
	// MaxGenerations caps auto-runs; zero means unlimited.
	MaxGenerations        uint64 `json:"max_generations" env:"LIFE_MAX_GENERATIONS"`
	AutoPauseOnStable     bool   `json:"auto_pause_on_stable" env:"LIFE_AUTO_PAUSE_ON_STABLE"`
	StableDetectionCycles int    `json:"stable_detection_cycles" env:"LIFE_STABLE_DETECTION_CYCLES"`
	StepDelayMs           int    `json:"step_delay_ms" env:"LIFE_STEP_DELAY_MS"`
}

// Config aggregates everything the harness needs to build and drive an engine.
type Config struct {
	Grid       Grid       `json:"grid"`
	Simulation Simulation `json:"simulation"`
}

// Default returns the standard configuration: a bounded ±500 field with a
// ten-cycle stability window.
func Default() Config {
	return Config{
		Grid: Grid{MinX: -500, MaxX: 500, MinY: -500, MaxY: 500},
		Simulation: Simulation{
			MaxGenerations:        0,
			AutoPauseOnStable:     true,
			StableDetectionCycles: 10,
			StepDelayMs:           100,
		},
	}
}

// LoadFile overlays settings from a JSON file onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// SaveFile writes the configuration as indented JSON.
func (c Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ParseEnv overlays LIFE_* environment variables onto c.
func (c *Config) ParseEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromMap overlays flag-style key/value overrides onto c. Unknown keys and
// unparseable values are skipped.
func (c *Config) FromMap(m map[string]string) {
	if m == nil {
		return
	}
	if v, ok := m["min_x"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Grid.MinX = int32(parsed)
		}
	}
	if v, ok := m["max_x"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Grid.MaxX = int32(parsed)
		}
	}
	if v, ok := m["min_y"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Grid.MinY = int32(parsed)
		}
	}
	if v, ok := m["max_y"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Grid.MaxY = int32(parsed)
		}
	}
	if v, ok := m["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Grid.WrapEdges = parsed
		}
	}
	if v, ok := m["max_generations"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Simulation.MaxGenerations = parsed
		}
	}
	if v, ok := m["auto_pause"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Simulation.AutoPauseOnStable = parsed
		}
	}
	if v, ok := m["stable_cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Simulation.StableDetectionCycles = parsed
		}
	}
	if v, ok := m["step_delay_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Simulation.StepDelayMs = parsed
		}
	}
}

// Validate reports the first configuration error. A config that validates is
// safe to hand to the engine without further checks.
func (c Config) Validate() error {
	if c.Grid.MinX > c.Grid.MaxX {
		return fmt.Errorf("%w: grid x range %d..%d", ErrInvalidConfig, c.Grid.MinX, c.Grid.MaxX)
	}
	if c.Grid.MinY > c.Grid.MaxY {
		return fmt.Errorf("%w: grid y range %d..%d", ErrInvalidConfig, c.Grid.MinY, c.Grid.MaxY)
	}
	if c.Simulation.StableDetectionCycles < 1 {
		return fmt.Errorf("%w: stable_detection_cycles %d", ErrInvalidConfig, c.Simulation.StableDetectionCycles)
	}
	if c.Simulation.StepDelayMs < 0 {
		return fmt.Errorf("%w: step_delay_ms %d", ErrInvalidConfig, c.Simulation.StepDelayMs)
	}
	return nil
}

// Bounds converts the grid section to engine bounds.
func (c Config) Bounds() (core.Bounds, error) {
	return core.NewBounds(c.Grid.MinX, c.Grid.MaxX, c.Grid.MinY, c.Grid.MaxY, c.Grid.WrapEdges)
}
