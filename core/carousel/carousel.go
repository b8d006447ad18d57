package carousel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/spaces/core/widgets"
)

var (
	ErrNoTabs         = errors.New("carousel needs at least one tab")
	ErrDuplicateValue = errors.New("duplicate tab value")
	ErrInvalidTab     = errors.New("invalid tab")
)

// Direction is the way content travels during a transition. Left means the
// incoming panel arrives from the right, i.e. moving forward through the tabs.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

// Tab is one selectable panel. Content is rendered as-is and never inspected.
type Tab struct {
	Title   string
	Value   string
	Content widgets.Widget
}

// State is the navigation and drag state of a carousel.
type State struct {
	Active     int
	Direction  Direction
	Animating  bool
	Dragging   bool
	DragStart  int
	DragOffset int
}

type Carousel struct {
	id       string
	tabs     []Tab
	opts     options
	state    State
	viewport int
	width    int
	height   int

	strip stripState
	panel panelState

	framing     bool
	autoplay    bool
	autoplayGen int
}

// New builds a carousel positioned on the first tab.
func New(tabs []Tab, opts ...Option) (*Carousel, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	seen := make(map[string]int, len(tabs))
	for i, t := range tabs {
		if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Value) == "" {
			return nil, fmt.Errorf("%w: tab %d needs a title and a value", ErrInvalidTab, i)
		}
		if prev, ok := seen[t.Value]; ok {
			return nil, fmt.Errorf("%w: %q used by tabs %d and %d", ErrDuplicateValue, t.Value, prev, i)
		}
		seen[t.Value] = i
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Carousel{
		id:       uuid.NewString(),
		tabs:     append([]Tab(nil), tabs...),
		opts:     o,
		autoplay: o.autoAdvance > 0,
	}
	c.opts.logger = c.opts.logger.With("carousel", c.id[:8])
	return c, nil
}

func (c *Carousel) ID() string     { return c.id }
func (c *Carousel) State() State   { return c.state }
func (c *Carousel) Len() int       { return len(c.tabs) }
func (c *Carousel) Tabs() []Tab    { return append([]Tab(nil), c.tabs...) }
func (c *Carousel) ActiveTab() Tab { return c.tabs[c.state.Active] }
func (c *Carousel) KeyMap() KeyMap { return c.opts.keys }

func (c *Carousel) Boundary() Boundary { return c.opts.boundary }

// IndexOf returns the index of the tab with the given value, or -1.
func (c *Carousel) IndexOf(value string) int {
	for i, t := range c.tabs {
		if t.Value == value {
			return i
		}
	}
	return -1
}

// SetViewport records the viewport width the swipe threshold is measured against.
func (c *Carousel) SetViewport(width int) {
	c.viewport = max(0, width)
}

// SetSize records the box the carousel is drawn into, for hit-testing.
func (c *Carousel) SetSize(width, height int) {
	c.width, c.height = max(0, width), max(0, height)
	c.strip.layout(c.tabs, c.state.Active, c.width, true)
}

// SelectTab moves to index. It does nothing while a transition holds the
// animation lock, when index is already active, or when index is out of range.
func (c *Carousel) SelectTab(index int) tea.Cmd {
	if c.state.Animating {
		c.opts.logger.Debug("select dropped: animating", "index", index)
		return nil
	}
	if index == c.state.Active || index < 0 || index >= len(c.tabs) {
		return nil
	}
	dir := DirectionRight
	if index > c.state.Active {
		dir = DirectionLeft
	}
	return c.transition(index, dir)
}

// SelectValue selects the tab with the given value.
func (c *Carousel) SelectValue(value string) tea.Cmd {
	return c.SelectTab(c.IndexOf(value))
}

// Next moves one tab forward. Under Clamp it does nothing on the last tab.
func (c *Carousel) Next() tea.Cmd {
	if c.state.Animating {
		return nil
	}
	target := c.state.Active + 1
	if target >= len(c.tabs) {
		if c.opts.boundary != Wrap {
			return nil
		}
		target = 0
	}
	if target == c.state.Active {
		return nil
	}
	return c.transition(target, DirectionLeft)
}

// Previous moves one tab back. Under Clamp it does nothing on the first tab.
func (c *Carousel) Previous() tea.Cmd {
	if c.state.Animating {
		return nil
	}
	target := c.state.Active - 1
	if target < 0 {
		if c.opts.boundary != Wrap {
			return nil
		}
		target = len(c.tabs) - 1
	}
	if target == c.state.Active {
		return nil
	}
	return c.transition(target, DirectionRight)
}

func (c *Carousel) transition(index int, dir Direction) tea.Cmd {
	from := c.state.Active
	c.state.Direction = dir
	c.state.Animating = true
	c.state.Active = index
	c.panel.start(from, dir, c.slideDistance())
	c.strip.layout(c.tabs, index, c.width, false)
	c.opts.logger.Debug("transition", "from", c.tabs[from].Value, "to", c.tabs[index].Value, "direction", dir)

	changed := ChangedMsg{ID: c.id, From: from, To: index, Value: c.tabs[index].Value}
	return tea.Batch(
		c.opts.scheduler.After(c.opts.lock, UnlockMsg{ID: c.id}),
		func() tea.Msg { return changed },
		c.ensureFrames(),
		c.restartAutoplay(),
	)
}

// BeginDrag starts a drag at x. Ignored while animating.
func (c *Carousel) BeginDrag(x int) {
	if c.state.Animating {
		return
	}
	c.state.DragStart = x
	c.state.Dragging = true
	c.state.DragOffset = 0
}

// UpdateDrag tracks the pointer at x. Ignored unless dragging and not animating.
func (c *Carousel) UpdateDrag(x int) {
	if !c.state.Dragging || c.state.Animating {
		return
	}
	offset := x - c.state.DragStart
	c.state.DragOffset = offset
	switch {
	case offset < -c.opts.noise:
		c.state.Direction = DirectionLeft
	case offset > c.opts.noise:
		c.state.Direction = DirectionRight
	default:
		c.state.Direction = DirectionNone
	}
}

// EndDrag finishes a drag. A drag covering at least the swipe ratio of the
// viewport moves one tab in the drag direction, if such a tab exists. The drag
// state is cleared either way.
func (c *Carousel) EndDrag() tea.Cmd {
	if !c.state.Dragging {
		return nil
	}
	offset := c.state.DragOffset
	threshold := float64(c.viewport) * c.opts.swipeRatio
	wrap := c.opts.boundary == Wrap
	c.panel.hold(float64(offset) * dragDamping)

	var cmd tea.Cmd
	if math.Abs(float64(offset)) >= threshold {
		switch {
		case c.state.Direction == DirectionLeft && (wrap || c.state.Active < len(c.tabs)-1):
			cmd = c.Next()
		case c.state.Direction == DirectionRight && (wrap || c.state.Active > 0):
			cmd = c.Previous()
		}
	}
	c.state.Dragging = false
	c.state.DragOffset = 0
	if cmd != nil {
		return cmd
	}
	c.opts.logger.Debug("drag released without change", "offset", offset, "threshold", threshold)
	return tea.Batch(c.ensureFrames(), c.restartAutoplay())
}

func (c *Carousel) slideDistance() float64 {
	w := c.width
	if w == 0 {
		w = c.viewport
	}
	return math.Max(4, float64(w)/10)
}
