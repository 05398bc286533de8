// Package config loads collation settings from YAML files and environment
// variables. Priority: environment > file > defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/collate/collate"
	"github.com/katalvlaran/collate/token"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Comparator kinds.
const (
	ComparatorEquality     = "equality"
	ComparatorEditDistance = "edit-distance"
)

// Environment variables that override file settings.
const (
	EnvAlgorithm   = "COLLATE_ALGORITHM"
	EnvComparator  = "COLLATE_COMPARATOR"
	EnvMaxDistance = "COLLATE_MAX_DISTANCE"
	EnvParallelism = "COLLATE_PARALLELISM"
	EnvLogLevel    = "COLLATE_LOG_LEVEL"
)

// Config is the complete configuration of the collate tool.
type Config struct {
	// Algorithm is the alignment strategy: "editgraph" or "astar".
	Algorithm string `yaml:"algorithm"`

	// Comparator decides token equivalence.
	Comparator ComparatorConfig `yaml:"comparator"`

	// Tokenizer controls how witness text becomes tokens.
	Tokenizer TokenizerConfig `yaml:"tokenizer"`

	// Parallelism bounds concurrent collation runs.
	Parallelism int `yaml:"parallelism"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// ComparatorConfig selects the token comparator.
type ComparatorConfig struct {
	Kind        string `yaml:"kind"`
	MaxDistance int    `yaml:"max_distance"`
}

// TokenizerConfig controls token normalization.
type TokenizerConfig struct {
	Lowercase bool `yaml:"lowercase"`
}

// LogConfig sets the minimum log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the edit-graph strategy with exact, case-sensitive
// token equality.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:   string(collate.AlgorithmEditGraph),
		Comparator:  ComparatorConfig{Kind: ComparatorEquality},
		Parallelism: runtime.GOMAXPROCS(0),
		Log:         LogConfig{Level: "info"},
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// LoadFromEnvOrFile reads path (optional), applies environment overrides and
// validates the result.
func LoadFromEnvOrFile(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv(EnvComparator); v != "" {
		c.Comparator.Kind = v
	}
	if v := os.Getenv(EnvMaxDistance); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMaxDistance, v, err)
		}
		c.Comparator.MaxDistance = n
	}
	if v := os.Getenv(EnvParallelism); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvParallelism, v, err)
		}
		c.Parallelism = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if !slices.Contains(collate.Algorithms(), collate.Algorithm(c.Algorithm)) {
		return fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	switch c.Comparator.Kind {
	case ComparatorEquality:
	case ComparatorEditDistance:
		if c.Comparator.MaxDistance < 1 {
			return fmt.Errorf("%w: comparator max_distance must be >= 1, got %d", ErrInvalidConfig, c.Comparator.MaxDistance)
		}
	default:
		return fmt.Errorf("%w: comparator kind %q", ErrInvalidConfig, c.Comparator.Kind)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be >= 1, got %d", ErrInvalidConfig, c.Parallelism)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}

	return lvl, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.LogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// TokenComparator returns the configured token comparator.
func (c *Config) TokenComparator() token.Comparator {
	if c.Comparator.Kind == ComparatorEditDistance {
		return token.EditDistanceComparator(c.Comparator.MaxDistance)
	}

	return token.EqualityComparator
}

// TokenOptions returns the tokenizer options for token.NewWitness.
func (c *Config) TokenOptions() []token.Option {
	if c.Tokenizer.Lowercase {
		return []token.Option{token.WithLowercase()}
	}

	return nil
}

// Options returns the collator options described by c.
func (c *Config) Options() []collate.Option {
	return []collate.Option{
		collate.WithAlgorithm(collate.Algorithm(c.Algorithm)),
		collate.WithComparator(c.TokenComparator()),
		collate.WithParallelism(c.Parallelism),
	}
}
