package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Environment variables read by FromEnv
const (
	// EnvPrecision sets the number of decimal places printed (-1 prints the shortest exact value)
	EnvPrecision = "CFOV_PRECISION"

	// EnvLogLevel sets the minimum log level (debug, info, warn, error)
	EnvLogLevel = "CFOV_LOG_LEVEL"

	// EnvNoColor disables coloured log output when set to any non-empty value (https://no-color.org)
	EnvNoColor = "NO_COLOR"
)

// MaxPrecision is the largest number of decimal places accepted for output
const MaxPrecision = 15

// Config represents the runtime settings of the converter
type Config struct {
	// Precision is the number of decimal places in the printed result (-1 to 15)
	Precision int `json:"precision" validate:"min=-1,max=15"`

	// LogLevel is the minimum level written to standard error
	LogLevel slog.Level `json:"logLevel"`

	// NoColor disables ANSI colours in log output
	NoColor bool `json:"noColor"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Precision: -1,             // Shortest representation that round-trips
		LogLevel:  slog.LevelWarn, // Keep standard error quiet on success
		NoColor:   false,
	}
}

// FromEnv returns the default configuration with overrides read through getenv.
// Unset or empty variables keep their defaults; malformed values are errors.
func FromEnv(getenv func(key string) string) (*Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvPrecision); v != "" {
		precision, err := ParsePrecision(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPrecision, err)
		}
		cfg.Precision = precision
	}

	if v := getenv(EnvLogLevel); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}

	return cfg, nil
}

// ParsePrecision parses a decimal place count in [-1, MaxPrecision]
func ParsePrecision(value string) (int, error) {
	precision, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid precision %q: %w", value, err)
	}
	if err := ValidatePrecision(precision); err != nil {
		return 0, err
	}
	return precision, nil
}

// ValidatePrecision checks that precision is within [-1, MaxPrecision]
func ValidatePrecision(precision int) error {
	if precision < -1 || precision > MaxPrecision {
		return fmt.Errorf("precision %d out of range [-1, %d]", precision, MaxPrecision)
	}
	return nil
}

// ParseLogLevel parses a level name such as "debug" or "WARN"
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
