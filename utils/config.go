package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/rules"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Size           int              `json:"size"`
	CellSize       int              `json:"cell_size"`
	StepInterval   time.Duration    `json:"step_interval"`
	Threshold      float64          `json:"threshold"`
	BorderMode     model.BorderMode `json:"border_mode"`
	DrawMode       bool             `json:"draw_mode"`
	Pattern        string           `json:"pattern"`
	Rule           string           `json:"rule"`
	Seed           int64            `json:"seed"`
	MaxGenerations int              `json:"max_generations"`
	Interactive    bool             `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           50,
		CellSize:       15,
		StepInterval:   100 * time.Millisecond,
		Threshold:      0.66,
		BorderMode:     model.BordersOff,
		DrawMode:       false,
		Pattern:        model.DefaultPatternName,
		Rule:           rules.Conway.String(),
		Seed:           0, // 0 draws from the process generator
		MaxGenerations: 0,
		Interactive:    false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "size must be positive, got %d", c.Size)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell_size must be positive, got %d", c.CellSize)
	case c.StepInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "step_interval must be positive, got %s", c.StepInterval)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if _, err := model.LookupPattern(c.Pattern); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if _, err := c.ParsedRule(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// ParsedRule returns the configured rule, Conway when unset
func (c Config) ParsedRule() (rules.Rule, error) {
	if c.Rule == "" {
		return rules.Conway, nil
	}
	return rules.ParseRule(c.Rule)
}

// RandomSource returns a seeded source, or nil for the process generator
func (c Config) RandomSource() model.RandomSource {
	if c.Seed == 0 {
		return nil
	}
	return model.NewSeededSource(c.Seed)
}
