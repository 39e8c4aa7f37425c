package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Search holds configuration for IV candidate search.
type Search struct {
	// Workers is the number of goroutines enumerating attack values.
	Workers int `yaml:"workers" validate:"min=1,max=64"`

	// PruneByAppraisalFloor skips candidates below OverallAppraisal.MinStats.
	// Faster, but the Good floor drops valid IVs with a zero stat (15/15/0).
	PruneByAppraisalFloor bool `yaml:"prune_by_appraisal_floor"`

	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultSearch returns Search config with sensible defaults.
func DefaultSearch() Search {
	return Search{
		Workers:  4,
		LogLevel: "info",
	}
}

// Validate checks field ranges.
func (s Search) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid search config: %w", err)
	}
	return nil
}

// LoadSearch loads search config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSearch(path string) (Search, error) {
	cfg := DefaultSearch()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (s Search) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(s.LogLevel),
	}))
}

// ParseLogLevel maps a config log level to slog. Unknown values mean info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
