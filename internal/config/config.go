// Package config provides YAML-based configuration loading for the game:
// board geometry, gravity timing, the scoring table and display toggles.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for a game session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity period and how it shrinks per level.
type TimingConfig struct {
	InitialDropMs int `yaml:"initial_drop_ms"`
	DecreaseMs    int `yaml:"decrease_ms"`
	FloorMs       int `yaml:"floor_ms"`
}

// ScoringConfig defines points per line-clear count and per drop row.
type ScoringConfig struct {
	Single        int `yaml:"single"`
	Double        int `yaml:"double"`
	Triple        int `yaml:"triple"`
	Tetris        int `yaml:"tetris"`
	SoftDrop      int `yaml:"soft_drop"`
	HardDrop      int `yaml:"hard_drop"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DisplayConfig holds presentation toggles.
type DisplayConfig struct {
	ShowGhost bool `yaml:"show_ghost"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	// Shapes are up to 4 cells wide.
	if c.Board.Width > 0 && c.Board.Width < 4 {
		errs = append(errs, fmt.Errorf("board width must be at least 4, got %d", c.Board.Width))
	}
	if c.Timing.InitialDropMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.initial_drop_ms must be positive, got %d", c.Timing.InitialDropMs))
	}
	if c.Timing.FloorMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.floor_ms must be positive, got %d", c.Timing.FloorMs))
	}
	if c.Timing.DecreaseMs < 0 {
		errs = append(errs, fmt.Errorf("timing.decrease_ms must not be negative, got %d", c.Timing.DecreaseMs))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	// Clearing more rows at once must always pay more.
	sc := c.Scoring
	if sc.Single <= 0 || sc.Double <= sc.Single || sc.Triple <= sc.Double || sc.Tetris <= sc.Triple {
		errs = append(errs, fmt.Errorf("scoring must satisfy 0 < single < double < triple < tetris, got %d/%d/%d/%d",
			sc.Single, sc.Double, sc.Triple, sc.Tetris))
	}
	if sc.SoftDrop < 0 || sc.HardDrop < 0 {
		errs = append(errs, errors.New("scoring.soft_drop and scoring.hard_drop must not be negative"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
