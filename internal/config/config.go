// Package config provides YAML-based configuration loading for torsnake.
package config

import "fmt"

// Config contains all user-tunable settings: grid geometry, frame cadence
// and the presentation theme. Gameplay rules (speed ramp, growth, collision)
// are fixed by the simulation and deliberately not configurable.
type Config struct {
	Grid     GridConfig  `yaml:"grid"`
	TickRate int         `yaml:"tick_rate"`
	Theme    ThemeConfig `yaml:"theme"`
}

// GridConfig defines the torus dimensions in tiles.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ThemeConfig defines the glyphs used to draw the board. Each field holds a
// single character; longer strings use their first rune.
type ThemeConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
}

// HeadRune returns the head glyph.
func (t ThemeConfig) HeadRune() rune { return firstRune(t.Head, 'O') }

// BodyRune returns the body glyph.
func (t ThemeConfig) BodyRune() rune { return firstRune(t.Body, 'o') }

// FoodRune returns the food glyph.
func (t ThemeConfig) FoodRune() rune { return firstRune(t.Food, '*') }

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Validate checks the config for values the simulation or the terminal loop
// cannot work with.
func (c Config) Validate() error {
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		return fmt.Errorf("config: grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be in [1, 240], got %d", c.TickRate)
	}
	return nil
}
