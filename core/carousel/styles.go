package carousel

import "github.com/charmbracelet/lipgloss"

// Styles holds the carousel palette. Fades blend toward Background.
type Styles struct {
	Accent     lipgloss.Color
	AccentText lipgloss.Color
	Pill       lipgloss.Color
	PillText   lipgloss.Color
	Muted      lipgloss.Color
	CardText   lipgloss.Color
	Background lipgloss.Color
}

func DefaultStyles() Styles {
	return Styles{
		Accent:     "#f9d849",
		AccentText: "#11111b",
		Pill:       "#181825",
		PillText:   "#cdd6f4",
		Muted:      "#7f849c",
		CardText:   "#cdd6f4",
		Background: "#1e1e2e",
	}
}
