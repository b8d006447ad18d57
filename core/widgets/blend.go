package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Fade returns fg blended toward bg. opacity 1 keeps fg, 0 yields bg.
func Fade(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return fg
	}
	from, err := colorful.Hex(string(fg))
	if err != nil {
		return fg
	}
	to, err := colorful.Hex(string(bg))
	if err != nil {
		return fg
	}
	if opacity < 0 {
		opacity = 0
	}
	return lipgloss.Color(to.BlendRgb(from, opacity).Clamped().Hex())
}
