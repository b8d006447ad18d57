package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded card with its title set into the top border.
type Pane struct {
	Title      string
	Content    string
	Border     lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	// FadeTo is the colour Dim blends toward; it defaults to Background.
	FadeTo lipgloss.Color
	// Dim fades the whole card: 0 is fully visible, 1 invisible.
	Dim float64
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	h := max(3, height)
	if width < 4 {
		width = 4
	}

	border, fg := p.Border, p.Foreground
	if border == "" {
		border = lipgloss.Color("#6c7086")
	}
	if fg == "" {
		fg = lipgloss.Color("#cdd6f4")
	}
	content := p.Content
	if p.Dim > 0 {
		bg := p.FadeTo
		if bg == "" {
			bg = p.Background
		}
		if bg == "" {
			bg = lipgloss.Color("#1e1e2e")
		}
		border = Fade(border, bg, 1-p.Dim)
		fg = Fade(fg, bg, 1-p.Dim)
		content = ansi.Strip(content)
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(fg).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(fg)
	if p.Background != "" {
		borderStyle = borderStyle.Background(p.Background)
		titleStyle = titleStyle.Background(p.Background)
		contentStyle = contentStyle.Background(p.Background)
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if title := strings.TrimSpace(p.Title); title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	innerHeight := h - 2
	lines := splitLines(content)
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		inner := " " + padRight(line, contentWidth) + " "
		rows = append(rows, v+contentStyle.Render(inner)+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Clip truncates every line to width and drops lines past height.
func Clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
