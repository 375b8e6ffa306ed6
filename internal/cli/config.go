package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Output          string
	LogLevel        string
	Seed            uint64
	MaxSearchStates int
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:          getEnvOrDefault("NILE_OUTPUT", OutputText),
		LogLevel:        getEnvOrDefault("NILE_LOG_LEVEL", "warn"),
		Seed:            getEnvUint("NILE_SEED", 0),
		MaxSearchStates: getEnvInt("NILE_MAX_SEARCH_STATES", 0),
	}
}

// Validate checks flag values that cobra can't check for us
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.MaxSearchStates < 0 {
		return fmt.Errorf("invalid max search states %d", c.MaxSearchStates)
	}
	_, err := c.level()
	return err
}

// Logger builds a text logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	n, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return n
}
