package carousel

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockMsg releases the animation lock of the carousel with the same ID.
type UnlockMsg struct{ ID string }

// FrameMsg advances the animations of the carousel with the same ID.
type FrameMsg struct{ ID string }

// AutoAdvanceMsg is an autoplay tick. Ticks from an older generation are ignored.
type AutoAdvanceMsg struct {
	ID  string
	Gen int
}

// ChangedMsg reports a committed tab change.
type ChangedMsg struct {
	ID    string
	From  int
	To    int
	Value string
}

func (c *Carousel) Init() tea.Cmd {
	return c.restartAutoplay()
}

// Update handles carousel messages, navigation keys and mouse input. Mouse
// coordinates are relative to the carousel's top-left corner.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case UnlockMsg:
		if msg.ID != c.id {
			return nil
		}
		c.state.Animating = false
		return nil
	case FrameMsg:
		if msg.ID != c.id {
			return nil
		}
		c.framing = false
		if c.step(c.frameDuration().Seconds()) {
			return c.ensureFrames()
		}
		return nil
	case AutoAdvanceMsg:
		if msg.ID != c.id || msg.Gen != c.autoplayGen || !c.autoplay {
			return nil
		}
		if c.state.Dragging || c.state.Animating {
			return c.scheduleAutoplay()
		}
		if cmd := c.Next(); cmd != nil {
			return cmd
		}
		return c.scheduleAutoplay()
	case tea.WindowSizeMsg:
		c.SetViewport(msg.Width)
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.opts.keys.Prev):
			return c.Previous()
		case key.Matches(msg, c.opts.keys.Next):
			return c.Next()
		}
		return nil
	case tea.MouseMsg:
		return c.mouse(msg)
	}
	return nil
}

func (c *Carousel) mouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := FromMouse(msg)
	if !ok {
		return nil
	}
	if c.state.Dragging {
		if ev.Phase == PointerMove && !c.inPanel(msg.Y) {
			ev.Phase = PointerCancel
		}
		return c.Pointer(ev)
	}
	if ev.Phase != PointerDown {
		return nil
	}
	if msg.Y == stripRow {
		return c.SelectTab(c.TabAt(msg.X))
	}
	if c.inPanel(msg.Y) {
		return c.Pointer(ev)
	}
	return nil
}

func (c *Carousel) inPanel(y int) bool {
	return y >= panelTop && (c.height == 0 || y < c.height)
}

// Autoplay reports whether autoplay is running.
func (c *Carousel) Autoplay() bool { return c.autoplay }

// SetAutoplay starts or stops autoplay. Starting needs a non-zero interval
// from WithAutoAdvance.
func (c *Carousel) SetAutoplay(on bool) tea.Cmd {
	if on && c.opts.autoAdvance <= 0 {
		return nil
	}
	c.autoplay = on
	return c.restartAutoplay()
}

func (c *Carousel) restartAutoplay() tea.Cmd {
	c.autoplayGen++
	if !c.autoplay {
		return nil
	}
	return c.scheduleAutoplay()
}

func (c *Carousel) scheduleAutoplay() tea.Cmd {
	return c.opts.scheduler.After(c.opts.autoAdvance, AutoAdvanceMsg{ID: c.id, Gen: c.autoplayGen})
}

func (c *Carousel) frameDuration() time.Duration {
	return time.Second / time.Duration(c.opts.frameRate)
}

func (c *Carousel) ensureFrames() tea.Cmd {
	if c.framing {
		return nil
	}
	c.framing = true
	return c.opts.scheduler.After(c.frameDuration(), FrameMsg{ID: c.id})
}

// Moving reports whether any animation is still in motion.
func (c *Carousel) Moving() bool {
	return c.panel.moving() || c.strip.moving()
}

func (c *Carousel) step(dt float64) bool {
	c.panel.step(dt, c.opts.frameRate)
	c.strip.step(c.opts.frameRate)
	return c.Moving()
}
