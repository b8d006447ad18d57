package carousel

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"
)

const (
	stripRow = 0
	panelTop = 2

	pillPad     = 1
	pillGap     = 1
	stripEdge   = 1
	stripMargin = 2

	// spring with bounce 0.2 over roughly 0.4s
	indicatorFrequency = 15.7
	indicatorDamping   = 0.8

	scrollFrequency = 12
	scrollDamping   = 1
)

type span struct {
	start int
	width int
}

func (s span) end() int { return s.start + s.width }

// stripState lays out the tab strip and animates the active-tab indicator
// and the horizontal scroll position.
type stripState struct {
	spans []span
	total int
	width int

	x, vx           float64
	w, vw           float64
	scroll, vscroll float64

	tx, tw, tscroll float64
	ready           bool
}

// layout recomputes tab spans and retargets the indicator and scroll for
// active. With snap, positions jump to their targets instead of animating.
func (s *stripState) layout(tabs []Tab, active, width int, snap bool) {
	s.spans = s.spans[:0]
	pos := stripEdge
	for _, t := range tabs {
		w := ansi.StringWidth(t.Title) + 2*pillPad
		s.spans = append(s.spans, span{start: pos, width: w})
		pos += w + pillGap
	}
	s.total = pos - pillGap + stripEdge
	s.width = width

	if active < 0 || active >= len(s.spans) {
		return
	}
	target := s.spans[active]
	s.tx, s.tw = float64(target.start), float64(target.width)
	s.tscroll = s.scrollTarget(target)

	if snap || !s.ready {
		s.x, s.vx = s.tx, 0
		s.w, s.vw = s.tw, 0
		s.scroll, s.vscroll = s.tscroll, 0
		s.ready = true
	}
}

// scrollTarget keeps the current scroll while target is comfortably visible,
// otherwise centres it. A strip narrower than the viewport is centred.
func (s *stripState) scrollTarget(target span) float64 {
	if s.width <= 0 {
		return 0
	}
	if s.total <= s.width {
		return -math.Floor(float64(s.width-s.total) / 2)
	}
	maxScroll := float64(s.total - s.width)
	current := math.Max(0, math.Min(s.scroll, maxScroll))
	if !s.ready {
		current = 0
	}
	left := float64(target.start)
	right := float64(target.end())
	if left >= current+stripMargin && right <= current+float64(s.width)-stripMargin {
		return current
	}
	centred := left + float64(target.width)/2 - float64(s.width)/2
	return math.Max(0, math.Min(centred, maxScroll))
}

func (s *stripState) step(fps int) {
	ind := harmonica.NewSpring(harmonica.FPS(fps), indicatorFrequency, indicatorDamping)
	s.x, s.vx = ind.Update(s.x, s.vx, s.tx)
	s.w, s.vw = ind.Update(s.w, s.vw, s.tw)
	scroll := harmonica.NewSpring(harmonica.FPS(fps), scrollFrequency, scrollDamping)
	s.scroll, s.vscroll = scroll.Update(s.scroll, s.vscroll, s.tscroll)

	if settled(s.x, s.vx, s.tx) {
		s.x, s.vx = s.tx, 0
	}
	if settled(s.w, s.vw, s.tw) {
		s.w, s.vw = s.tw, 0
	}
	if settled(s.scroll, s.vscroll, s.tscroll) {
		s.scroll, s.vscroll = s.tscroll, 0
	}
}

func (s stripState) moving() bool {
	return s.x != s.tx || s.w != s.tw || s.scroll != s.tscroll
}

func (s stripState) offset() int {
	return int(math.Round(s.scroll))
}

// indicator returns the cell range [from, to) covered by the indicator.
func (s stripState) indicator() (int, int) {
	from := int(math.Round(s.x))
	return from, from + int(math.Round(s.w))
}

// tabAt maps a viewport column to a tab index, or -1 between tabs.
func (s stripState) tabAt(col int) int {
	abs := col + s.offset()
	for i, sp := range s.spans {
		if abs >= sp.start && abs < sp.end() {
			return i
		}
	}
	return -1
}

// TabAt returns the tab under column x of the strip, or -1.
func (c *Carousel) TabAt(x int) int {
	if !c.strip.ready {
		c.strip.layout(c.tabs, c.state.Active, c.width, true)
	}
	return c.strip.tabAt(x)
}
