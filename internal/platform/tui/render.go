package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"torsnake/internal/config"
	"torsnake/internal/core"
	"torsnake/internal/snake"
)

const hudHeight = 2 // Title line plus separator

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// stateColor returns the board color for a lifecycle state: white while
// running, gray before start and while paused, red on loss, green on win.
func stateColor(s snake.State) core.Color {
	switch s {
	case snake.StateRunning:
		return core.ColorWhite
	case snake.StateLoss:
		return core.ColorRed
	case snake.StateWin:
		return core.ColorGreen
	default:
		return core.ColorGray
	}
}

// drawGame renders the full frame: HUD, board and any state overlay.
func drawGame(dst *core.Screen, g *snake.Game, theme config.ThemeConfig) {
	dst.Clear()
	drawHUD(dst, g)

	requiredW := g.Width()
	requiredH := g.Height() + hudHeight + 1
	if dst.Width() < requiredW || dst.Height() < requiredH {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offsetX := (dst.Width() - g.Width()) / 2
	offsetY := hudHeight
	color := stateColor(g.State())

	if food, ok := g.Food(); ok {
		dst.SetColored(offsetX+food.X, offsetY+food.Y, theme.FoodRune(), color)
	}

	parts := g.Parts()
	for i, seg := range parts {
		r := theme.BodyRune()
		if i == len(parts)-1 {
			r = theme.HeadRune()
		}
		dst.SetColored(offsetX+seg.X, offsetY+seg.Y, r, color)
	}

	switch g.State() {
	case snake.StateStart:
		drawOverlay(dst, "torsnake", "Press space to start")
	case snake.StatePaused:
		drawOverlay(dst, "Paused", "Press space to continue")
	case snake.StateLoss:
		drawOverlay(dst, "Game Over", "Esc to reset, q to quit")
	case snake.StateWin:
		drawOverlay(dst, "You Win!", "The board is yours")
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, g *snake.Game) {
	hud := fmt.Sprintf(" torsnake — Length: %d  Speed: %d  [%s]",
		len(g.Parts()), g.Speed(), g.State())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style, ok := colorStyles[startColor]; ok && startColor != core.ColorDefault {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
