package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/spaces/core/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.bodyHeight()
	var body string
	if bodyHeight > 0 {
		body = m.carousel.View(max(1, m.width), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		popup := top.View(max(20, m.width-12), max(6, bodyHeight-4))
		body = widgets.RenderPopup(body, popup, max(1, m.width), bodyHeight, colorAccent)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	if bodyHeight == 0 {
		view = strings.Join([]string{header, status, footer}, "\n")
	}
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle().Render(m.title)
	pos := fmt.Sprintf("%d/%d", m.carousel.State().Active+1, m.carousel.Len())
	right := positionStyle.Render(pos)
	if m.carousel.Autoplay() {
		right = autoplayStyle.Render("▶ auto") + tabSepStyle.Render(" │ ") + right
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
