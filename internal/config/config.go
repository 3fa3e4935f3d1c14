// Package config loads the configuration of the cronmatch command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/reugn/go-cronmatch/cronmatch"
	"github.com/reugn/go-cronmatch/logger"
	"github.com/reugn/go-cronmatch/matcher"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the default config
// file path.
const EnvConfigPath = "CRONMATCH_CONFIG"

// localLocation is the location name resolving to time.Local.
const localLocation = "Local"

// ErrInvalidConfig is returned when a configuration file fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the configuration of the cronmatch command line tool.
type Config struct {
	// Location is the IANA name of the location used to break down times,
	// e.g. "Europe/Berlin". Default: Local
	Location string `yaml:"location"`

	// LogLevel is one of trace, debug, info, warn, error and off.
	// Default: warn
	LogLevel string `yaml:"log_level"`

	// TimeFormats are extra layouts accepted when resolving times.
	TimeFormats []string `yaml:"time_formats"`

	// Schedules are the named expressions evaluated by the check command.
	Schedules []matcher.Schedule `yaml:"schedules"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Location: localLocation,
		LogLevel: logger.LevelWarn.String(),
	}
}

// LoadFile loads and validates the configuration from a YAML file,
// starting from the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the location, the log level and every schedule.
func (c *Config) Validate() error {
	if _, err := c.TimeLocation(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Schedules))
	for i, schedule := range c.Schedules {
		if schedule.Name == "" {
			return fmt.Errorf("%w: schedule #%d has no name", ErrInvalidConfig, i+1)
		}
		if _, ok := seen[schedule.Name]; ok {
			return fmt.Errorf("%w: duplicate schedule %q", ErrInvalidConfig, schedule.Name)
		}
		seen[schedule.Name] = struct{}{}

		if err := cronmatch.Validate(schedule.Expression); err != nil {
			return fmt.Errorf("%w: schedule %q: %w", ErrInvalidConfig, schedule.Name, err)
		}
	}

	return nil
}

// TimeLocation returns the configured location.
func (c *Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == localLocation {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: location: %w", ErrInvalidConfig, err)
	}
	return loc, nil
}

// Level returns the configured log level.
func (c *Config) Level() (logger.Level, error) {
	if c.LogLevel == "" {
		return logger.LevelWarn, nil
	}
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelOff, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}
