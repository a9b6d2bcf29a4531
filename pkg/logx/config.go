package logx

import (
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// Format represents the output format
type Format string

const (
	// FormatConsole outputs human readable lines (default)
	FormatConsole Format = "console"
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, defaulting to console.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatConsole
}

// Config holds the logger configuration
type Config struct {
	// Level is the minimum log level to output
	Level Level

	// Format is the output format
	Format Format

	// EnableColors enables colored output (only for console format)
	EnableColors bool

	// EnableCaller adds file and line number to logs
	EnableCaller bool

	// EnableTimestamp adds timestamp to logs
	EnableTimestamp bool

	// TimeFormat is the time format to use (defaults to time.DateTime)
	TimeFormat string

	// Output is where to write logs (defaults to os.Stderr)
	Output io.Writer
}

// DefaultConfig returns the default configuration. Colors are on only when
// stderr is a terminal.
func DefaultConfig() *Config {
	return &Config{
		Level:           LevelInfo,
		Format:          FormatConsole,
		EnableColors:    isTerminal(os.Stderr),
		EnableCaller:    false,
		EnableTimestamp: true,
		TimeFormat:      time.DateTime,
		Output:          os.Stderr,
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	config := DefaultConfig()

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = ParseLevel(level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = ParseFormat(format)
	}

	if color := os.Getenv("LOG_COLOR"); color != "" {
		config.EnableColors = parseBool(color)
	}

	if caller := os.Getenv("LOG_CALLER"); caller != "" {
		config.EnableCaller = parseBool(caller)
	}

	if timeFormat := os.Getenv("LOG_TIME_FORMAT"); timeFormat != "" {
		switch strings.ToUpper(timeFormat) {
		case "RFC3339":
			config.TimeFormat = time.RFC3339
		case "UNIX":
			config.TimeFormat = "unix"
		default:
			config.TimeFormat = timeFormat
		}
	}

	return config
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true") || s == "1"
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
