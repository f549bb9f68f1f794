package config

import (
	_ "embed"
)

//go:embed defaults/torsnake.yaml
var defaultConfigYAML []byte

// Default returns the hardcoded default configuration, used when even the
// embedded YAML fails to parse. A 40x20 grid fits a standard 80x24
// terminal with room for the HUD.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		TickRate: 60,
		Theme: ThemeConfig{
			Head: "O",
			Body: "o",
			Food: "*",
		},
	}
}
