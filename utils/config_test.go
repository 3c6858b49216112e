package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/rules"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Size)
	assert.Equal(t, 0.66, cfg.Threshold)
	assert.Equal(t, model.BordersOff, cfg.BorderMode)
	assert.Nil(t, cfg.RandomSource())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"size": 20,
		"border_mode": "borders:on",
		"pattern": "glider",
		"rule": "B36/S23",
		"step_interval": 5000000,
		"seed": 7
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Size)
	assert.Equal(t, 15, cfg.CellSize, "unset fields keep defaults")
	assert.Equal(t, model.BordersOn, cfg.BorderMode)
	assert.Equal(t, "glider", cfg.Pattern)
	assert.Equal(t, 5*time.Millisecond, cfg.StepInterval)
	assert.NotNil(t, cfg.RandomSource())

	rule, err := cfg.ParsedRule()
	require.NoError(t, err)
	assert.NotEqual(t, rules.Conway, rule)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigBadJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"size": "big"}`))
	assert.ErrorContains(t, err, "failed to unmarshal")

	_, err = LoadConfig(writeConfig(t, `{"border_mode": "sideways"}`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "size", mutate: func(c *Config) { c.Size = 0 }},
		{name: "cell size", mutate: func(c *Config) { c.CellSize = -1 }},
		{name: "interval", mutate: func(c *Config) { c.StepInterval = 0 }},
		{name: "max generations", mutate: func(c *Config) { c.MaxGenerations = -2 }},
		{name: "pattern", mutate: func(c *Config) { c.Pattern = "spaceship" }},
		{name: "rule", mutate: func(c *Config) { c.Rule = "B9/S" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestParsedRuleDefaultsToConway(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = ""
	rule, err := cfg.ParsedRule()
	require.NoError(t, err)
	assert.Equal(t, rules.Conway, rule)
}
