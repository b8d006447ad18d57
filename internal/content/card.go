package content

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/spaces/core/widgets"
)

const (
	DefaultMarkdownStyle = "dark"

	twoColumnWidth = 56
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	checkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	priceStyle   = lipgloss.NewStyle().Italic(true)
	ctaStyle     = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#11111b")).
			Background(lipgloss.Color("#f9d849")).
			Padding(0, 1)
)

// Card renders a Space into a box. The markdown body is rendered once per
// width.
type Card struct {
	Space Space
	// MarkdownStyle is a glamour standard style name such as "dark",
	// "light" or "notty".
	MarkdownStyle string

	bodies map[int]string
}

func NewCard(s Space, markdownStyle string) *Card {
	if markdownStyle == "" {
		markdownStyle = DefaultMarkdownStyle
	}
	return &Card{Space: s, MarkdownStyle: markdownStyle}
}

func (c *Card) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var b strings.Builder
	if c.Space.Heading != "" {
		b.WriteString(headingStyle.Render(c.Space.Heading))
		b.WriteString("\n")
	}
	if body := c.body(width); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	if len(c.Space.Features) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Features"))
		b.WriteString("\n")
		b.WriteString(c.features(width))
		b.WriteString("\n")
	}
	if c.Space.Price != "" || c.Space.CTA != "" {
		b.WriteString("\n")
	}
	if c.Space.Price != "" {
		b.WriteString(priceStyle.Render(c.Space.Price))
		b.WriteString("\n")
	}
	if c.Space.CTA != "" {
		cta := ctaStyle.Render(c.Space.CTA + " →")
		if c.Space.Link != "" {
			cta += " " + c.Space.Link
		}
		b.WriteString(cta)
	}
	return widgets.Clip(strings.TrimRight(b.String(), "\n"), width, height)
}

func (c *Card) body(width int) string {
	if c.Space.Body == "" {
		return ""
	}
	if out, ok := c.bodies[width]; ok {
		return out
	}
	out := renderMarkdown(c.Space.Body, c.MarkdownStyle, width)
	if c.bodies == nil {
		c.bodies = make(map[int]string)
	}
	c.bodies[width] = out
	return out
}

// renderMarkdown renders md with glamour, falling back to plain wrapping
// when the renderer cannot be built. Glamour's document margin is dropped
// so the body lines up with the heading.
func renderMarkdown(md, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			return trimBlock(out)
		}
	}
	return lipgloss.NewStyle().Width(width).Render(md)
}

func trimBlock(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[0])) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(ansi.Strip(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	indent := -1
	for _, line := range lines {
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		n := len(plain) - len(strings.TrimLeft(plain, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i, line := range lines {
			lines[i] = widgets.ShiftLine(line, -indent, ansi.StringWidth(line))
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// features lays the list out in two columns when there is room.
func (c *Card) features(width int) string {
	items := make([]string, len(c.Space.Features))
	for i, f := range c.Space.Features {
		items[i] = checkStyle.Render("✓") + " " + f
	}
	if width < twoColumnWidth {
		return strings.Join(items, "\n")
	}
	col := width / 2
	rows := make([]string, 0, (len(items)+1)/2)
	for i := 0; i < len(items); i += 2 {
		left := ansi.Truncate(items[i], col-1, "…")
		row := left
		if i+1 < len(items) {
			row += strings.Repeat(" ", max(1, col-ansi.StringWidth(left))) + items[i+1]
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
