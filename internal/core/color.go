package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI color codes by the platform layer.
type Color uint8

// Predefined colors for game elements. The palette follows the lifecycle
// state coloring: white while running, gray in start/pause, red on loss,
// green on win.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
)
