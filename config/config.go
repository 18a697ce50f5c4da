// Package config loads and validates the emulator run configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the emulator configuration.
type Config struct {
	// Machine settings
	Machine struct {
		XLEN       int `toml:"xlen"`
		MemorySize int `toml:"memory_size"`
	} `toml:"machine"`

	// Execution settings
	Execution struct {
		MaxSteps uint64 `toml:"max_steps"`
		Entry    string `toml:"entry"`
		Trace    bool   `toml:"trace"`
	} `toml:"execution"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Machine.XLEN = 64
	cfg.Machine.MemorySize = 16 * 1024 * 1024 // 16MB

	cfg.Execution.MaxSteps = 0 // no limit
	cfg.Execution.Entry = ""   // use the ELF entry point
	cfg.Execution.Trace = false

	return cfg
}

// LoadConfig reads a TOML configuration file, applying defaults for any
// missing values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the emulator cannot run
// with.
func (c *Config) Validate() error {
	if c.Machine.XLEN != 32 && c.Machine.XLEN != 64 {
		return fmt.Errorf("invalid xlen %d: must be 32 or 64", c.Machine.XLEN)
	}
	if c.Machine.MemorySize <= 0 {
		return fmt.Errorf("invalid memory_size %d: must be positive", c.Machine.MemorySize)
	}
	return nil
}
