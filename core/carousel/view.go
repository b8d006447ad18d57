package carousel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/spaces/core/widgets"
)

// stackInset is how far the next card sits inside the active one on each side.
const stackInset = 2

type cellKind int

const (
	cellGap cellKind = iota
	cellPill
	cellIndicator
)

// Render satisfies widgets.Widget.
func (c *Carousel) Render(width, height int) string {
	return c.View(width, height)
}

// View draws the tab strip over the card stack.
func (c *Carousel) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if !c.strip.ready || c.strip.width != width {
		c.strip.layout(c.tabs, c.state.Active, width, true)
	}
	rows := []string{c.renderStrip(width)}
	if height > 1 {
		rows = append(rows, "")
	}
	if cardArea := height - panelTop; cardArea > 0 {
		rows = append(rows, c.renderCards(width, cardArea)...)
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows[:height], "\n")
}

func (c *Carousel) renderStrip(width int) string {
	st := c.opts.styles
	// One entry per column. A wide character fills its first column and
	// leaves "" in the columns it covers.
	label := make([]string, c.strip.total)
	kinds := make([]cellKind, c.strip.total)
	for i := range label {
		label[i] = " "
	}
	for i, sp := range c.strip.spans {
		for col := sp.start; col < sp.end(); col++ {
			kinds[col] = cellPill
		}
		col := sp.start + pillPad
		for _, r := range c.tabs[i].Title {
			ch := string(r)
			w := ansi.StringWidth(ch)
			if w == 0 {
				continue
			}
			if col+w > sp.end()-pillPad {
				break
			}
			label[col] = ch
			for k := 1; k < w; k++ {
				label[col+k] = ""
			}
			col += w
		}
	}
	indFrom, indTo := c.strip.indicator()
	for col := max(0, indFrom); col < min(indTo, len(kinds)); col++ {
		kinds[col] = cellIndicator
	}

	pillText := st.PillText
	if c.state.Animating {
		pillText = st.Muted
	}
	styleFor := map[cellKind]lipgloss.Style{
		cellGap:       lipgloss.NewStyle(),
		cellPill:      lipgloss.NewStyle().Background(st.Pill).Foreground(pillText),
		cellIndicator: lipgloss.NewStyle().Background(st.Accent).Foreground(st.AccentText).Bold(true),
	}

	var b strings.Builder
	var seg strings.Builder
	segKind := cellGap
	flush := func() {
		if seg.Len() > 0 {
			b.WriteString(styleFor[segKind].Render(seg.String()))
			seg.Reset()
		}
	}
	offset := c.strip.offset()
	for col := 0; col < width; col++ {
		abs := col + offset
		kind, cell := cellGap, " "
		if abs >= 0 && abs < len(label) {
			kind, cell = kinds[abs], label[abs]
		}
		switch {
		case cell == "" && col == 0:
			// the wide character began left of the viewport
			cell = " "
		case cell != "" && col+ansi.StringWidth(cell) > width:
			cell = " "
		}
		if kind != segKind {
			flush()
			segKind = kind
		}
		seg.WriteString(cell)
	}
	flush()
	return b.String()
}

func (c *Carousel) renderCards(width, height int) []string {
	shown := c.panel.shown(c.state.Active)
	hasNext := shown+1 < len(c.tabs)
	cardHeight := height
	if hasNext && height > 3 {
		cardHeight = height - 1
	}

	card := c.card(shown, width, cardHeight, 1-c.panel.alpha())
	lines := strings.Split(card, "\n")

	x, tilt := c.panel.x, 0.0
	if c.state.Dragging {
		x = float64(c.state.DragOffset) * dragDamping
		tilt = float64(c.state.DragOffset) * tiltFactor
	}
	centre := float64(len(lines)-1) / 2
	for i, line := range lines {
		shift := int(math.Round(x + tilt*(float64(i)-centre)))
		lines[i] = widgets.ShiftLine(line, shift, width)
	}

	if hasNext && cardHeight < height {
		inner := max(4, width-2*stackInset)
		next := strings.Split(c.card(shown+1, inner, cardHeight, 0.5), "\n")
		edge := strings.Repeat(" ", stackInset) + next[len(next)-1]
		lines = append(lines, widgets.ShiftLine(edge, 0, width))
	}
	return lines
}

// card renders tab i as a bordered card. dim fades it toward the background.
func (c *Carousel) card(i, width, height int, dim float64) string {
	st := c.opts.styles
	tab := c.tabs[i]
	content := ""
	if tab.Content != nil {
		content = tab.Content.Render(max(1, width-4), max(1, height-2))
	}
	return widgets.Pane{
		Title:      tab.Title,
		Content:    content,
		Border:     st.Accent,
		Foreground: st.CardText,
		FadeTo:     st.Background,
		Dim:        dim,
	}.Render(width, height)
}
