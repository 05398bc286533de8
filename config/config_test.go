package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collate/collate"
	"github.com/katalvlaran/collate/config"
	"github.com/katalvlaran/collate/token"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "editgraph", cfg.Algorithm)
	assert.Equal(t, config.ComparatorEquality, cfg.Comparator.Kind)
	assert.GreaterOrEqual(t, cfg.Parallelism, 1)

	c, err := collate.New(cfg.Options()...)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, `
algorithm: astar
comparator:
  kind: edit-distance
  max_distance: 2
tokenizer:
  lowercase: true
parallelism: 3
log:
  level: debug
`)
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, config.ComparatorConfig{Kind: config.ComparatorEditDistance, MaxDistance: 2}, cfg.Comparator)
	assert.True(t, cfg.Tokenizer.Lowercase)
	assert.Equal(t, 3, cfg.Parallelism)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	w, err := token.NewWitness("w1", "Colour", cfg.TokenOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "colour", w.Tokens[0].Normalized)

	a, err := token.NewWitness("w1", "colour")
	require.NoError(t, err)
	b, err := token.NewWitness("w2", "color")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.TokenComparator()(a.Tokens[0], b.Tokens[0]))
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeFile(t, "algorithm: astar\n"))
	require.NoError(t, err)
	assert.Equal(t, config.ComparatorEquality, cfg.Comparator.Kind)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.LoadConfig(writeFile(t, "algorithm: [unterminated\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadFromEnvOrFile_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "algorithm: editgraph\nparallelism: 2\n")
	t.Setenv(config.EnvAlgorithm, "astar")
	t.Setenv(config.EnvComparator, config.ComparatorEditDistance)
	t.Setenv(config.EnvMaxDistance, "1")
	t.Setenv(config.EnvParallelism, "5")
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.LoadFromEnvOrFile(path)
	require.NoError(t, err)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, config.ComparatorEditDistance, cfg.Comparator.Kind)
	assert.Equal(t, 1, cfg.Comparator.MaxDistance)
	assert.Equal(t, 5, cfg.Parallelism)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromEnvOrFile_BadEnv(t *testing.T) {
	t.Setenv(config.EnvParallelism, "many")
	_, err := config.LoadFromEnvOrFile("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"unknown algorithm":  func(c *config.Config) { c.Algorithm = "smith-waterman" },
		"unknown comparator": func(c *config.Config) { c.Comparator.Kind = "phonetic" },
		"zero edit distance": func(c *config.Config) { c.Comparator.Kind = config.ComparatorEditDistance },
		"zero parallelism":   func(c *config.Config) { c.Parallelism = 0 },
		"unknown log level":  func(c *config.Config) { c.Log.Level = "chatty" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
