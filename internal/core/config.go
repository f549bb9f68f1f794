package core

// RuntimeConfig contains the runtime parameters the platform passes to the
// game session: grid geometry for the simulation, screen geometry and tick
// rate for the presentation loop, and the RNG seed for deterministic food
// placement.
type RuntimeConfig struct {
	GridW    int   // Grid width in tiles
	GridH    int   // Grid height in tiles
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render frames per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// A 40x20 grid fits a standard 80x24 terminal with room for the HUD.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    40,
		GridH:    20,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
