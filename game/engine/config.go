package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidateGameConfig validates a board configuration for correctness and
// playability. A valid board has room for at least one pair.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if config.Rows < MinGridDim || config.Rows > MaxGridDim {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d",
			ErrInvalidConfig, MinGridDim, MaxGridDim, config.Rows)
	}
	if config.Columns < MinGridDim || config.Columns > MaxGridDim {
		return fmt.Errorf("%w: columns must be between %d and %d, got %d",
			ErrInvalidConfig, MinGridDim, MaxGridDim, config.Columns)
	}
	if config.Rows*config.Columns < 2 {
		return fmt.Errorf("%w: board must hold at least one pair, got %dx%d",
			ErrInvalidConfig, config.Rows, config.Columns)
	}
	if config.TileKinds < MinTileKinds || config.TileKinds > MaxTileKinds {
		return fmt.Errorf("%w: tile_kinds must be between %d and %d, got %d",
			ErrInvalidConfig, MinTileKinds, MaxTileKinds, config.TileKinds)
	}
	return nil
}

// DefaultConfig returns the built-in board used when no configuration is
// provided.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "Classic",
		Description: "The classic 8x10 board with twelve tile kinds",
		Rows:        8,
		Columns:     10,
		TileKinds:   12,
	}
	config.Messages.Welcome = "Pick two matching tiles to link them."
	config.Messages.Matched = "Linked! %d tiles remaining."
	config.Messages.Mismatch = "Those tiles can't be linked."
	config.Messages.Shuffled = "Tiles reshuffled."
	config.Messages.Deadlock = "No moves left, reshuffling."
	config.Messages.Complete = "Board cleared!"
	return config
}

// ensureMessages fills any message a config file left blank with the
// built-in default, so format strings are always well-formed.
func (c *GameConfig) ensureMessages() {
	defaults := DefaultConfig()
	if c.Messages.Welcome == "" {
		c.Messages.Welcome = defaults.Messages.Welcome
	}
	if c.Messages.Matched == "" {
		c.Messages.Matched = defaults.Messages.Matched
	}
	if c.Messages.Mismatch == "" {
		c.Messages.Mismatch = defaults.Messages.Mismatch
	}
	if c.Messages.Shuffled == "" {
		c.Messages.Shuffled = defaults.Messages.Shuffled
	}
	if c.Messages.Deadlock == "" {
		c.Messages.Deadlock = defaults.Messages.Deadlock
	}
	if c.Messages.Complete == "" {
		c.Messages.Complete = defaults.Messages.Complete
	}
}

// LoadConfigFromFile reads and validates a board configuration JSON file.
func LoadConfigFromFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
