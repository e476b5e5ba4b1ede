package config

import (
	"github.com/pkg/errors"

	"whalehunt/internal/hunt"
)

type GameConfig struct {
	Grid     GridConfig `yaml:"grid"`
	Seed     int64      `yaml:"seed"`
	MaxTurns int        `yaml:"max_turns"`
	Runs     int        `yaml:"runs"`
	Workers  int        `yaml:"workers"`
	Color    bool       `yaml:"color"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() GameConfig {
	return GameConfig{
		Grid:     GridConfig{Width: 10, Height: 10},
		MaxTurns: 10000,
		Runs:     1,
		Workers:  8,
		Color:    true,
	}
}

func (c *GameConfig) Validate() error {
	if _, err := c.HuntGrid(); err != nil {
		return errors.Wrap(err, "config: grid")
	}
	if c.MaxTurns < 0 {
		return errors.Errorf("config: max_turns must be >= 0, got %d", c.MaxTurns)
	}
	if c.Runs < 1 {
		return errors.Errorf("config: runs must be >= 1, got %d", c.Runs)
	}
	if c.Workers < 1 {
		return errors.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	return nil
}

func (c *GameConfig) HuntGrid() (hunt.Grid, error) {
	return hunt.NewGrid(c.Grid.Width, c.Grid.Height)
}
