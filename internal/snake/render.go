package snake

import (
	"strings"

	"github.com/ardzh/termsnake/internal/core"
)

// Markers are the runes used for board cells in both renderers.
type Markers struct {
	Snake  rune
	Apple  rune
	Border rune
}

// DefaultMarkers returns the classic ASCII look.
func DefaultMarkers() Markers {
	return Markers{Snake: 'o', Apple: '*', Border: '-'}
}

// RenderString renders the board as a plain text block: one character per
// cell, a solid border line above and below. Pure; has no effect on game
// state, and any other renderer can replace it without touching the rules.
func RenderString(b Board, m Markers) string {
	var sb strings.Builder
	sb.Grow((b.Size.X + 1) * (b.Size.Y + 2))

	border := strings.Repeat(string(m.Border), b.Size.X)
	sb.WriteString(border)
	sb.WriteRune('\n')

	body := make(map[core.Vec]bool, b.Snake.Len())
	for _, p := range b.Snake.Positions() {
		body[p] = true
	}

	for y := 0; y < b.Size.Y; y++ {
		for x := 0; x < b.Size.X; x++ {
			p := core.Vec{X: x, Y: y}
			switch {
			case body[p]:
				sb.WriteRune(m.Snake)
			case b.HasApple() && b.Apple.Eq(p):
				sb.WriteRune(m.Apple)
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}

	sb.WriteString(border)
	return sb.String()
}

// Draw renders the board into a screen buffer at the given offset, with a box
// border around the playfield and colored markers. Cells outside the screen
// are clipped by the buffer itself.
func Draw(b Board, dst *core.Screen, offsetX, offsetY int, m Markers) {
	dst.DrawBox(core.NewRect(offsetX, offsetY, b.Size.X+2, b.Size.Y+2))

	for _, p := range b.Snake.Positions() {
		dst.SetColored(offsetX+1+p.X, offsetY+1+p.Y, m.Snake, core.ColorGreen)
	}
	// Head drawn last so it wins over a tail crash overlap
	dst.SetColored(offsetX+1+b.Snake.Head.X, offsetY+1+b.Snake.Head.Y, m.Snake, core.ColorBrightGreen)

	if b.HasApple() {
		dst.SetColored(offsetX+1+b.Apple.X, offsetY+1+b.Apple.Y, m.Apple, core.ColorBrightRed)
	}
}
