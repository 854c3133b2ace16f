// Package config loads pulsesim settings from a YAML file and environment
// variables.
//
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding file settings.
//
const EnvPrefix = "PULSESIM_"

// Config contains all pulsesim settings.
//
type Config struct {
	// Entry is the name of the module receiving the button pulse.
	Entry string `yaml:"entry"`
	// Presses is the number of button presses for pulse counting.
	Presses int `yaml:"presses"`
	// Target and Value select the first activation query.
	Target string `yaml:"target"`
	Value  string `yaml:"value"`
	// Budget bounds the number of presses simulated by the first activation
	// query.
	Budget int `yaml:"budget"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
//
type LoggingConfig struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`
	// Format is "text" (default) or "json".
	Format string `yaml:"format"`
}

// Default returns the default configuration.
//
func Default() *Config {
	return &Config{
		Entry:   pulsesim.DefaultEntry,
		Presses: 1000,
		Target:  "rx",
		Value:   "low",
		Budget:  pulsesim.DefaultBudget,
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load returns the default configuration, overridden by the YAML file at path
// if path is not empty, then by PULSESIM_* environment variables.
//
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v := getenv(EnvPrefix + name)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s%s", EnvPrefix, name)
		}
		*dst = n
		return nil
	}
	str("ENTRY", &c.Entry)
	str("TARGET", &c.Target)
	str("VALUE", &c.Value)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	if err := num("PRESSES", &c.Presses); err != nil {
		return err
	}
	return num("BUDGET", &c.Budget)
}

// Validate checks that settings are usable.
//
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Entry) == "" {
		return errors.New("entry module name is empty")
	}
	if c.Presses < 0 {
		return errors.Errorf("invalid press count %d", c.Presses)
	}
	if c.Budget < 0 {
		return errors.Errorf("invalid budget %d", c.Budget)
	}
	if _, err := pulsesim.ParsePulse(c.Value); err != nil {
		return err
	}
	return nil
}

// Pulse returns the parsed target value.
//
func (c *Config) Pulse() pulsesim.Pulse {
	p, _ := pulsesim.ParsePulse(c.Value)
	return p
}
