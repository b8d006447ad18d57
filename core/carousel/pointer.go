package carousel

import tea "github.com/charmbracelet/bubbletea"

// Phase is the stage of a pointer gesture.
type Phase int

const (
	PointerDown Phase = iota
	PointerMove
	PointerUp
	// PointerCancel ends a gesture without a release, e.g. the pointer left
	// the panel. It is handled like PointerUp.
	PointerCancel
)

// PointerEvent is one sample of a one-dimensional pointer stream. Mouse,
// touch or any other modality is reduced to this before it reaches the
// carousel.
type PointerEvent struct {
	Phase Phase
	X     int
}

// FromMouse converts a terminal mouse message. Wheel and non-left presses
// are not pointer gestures.
func FromMouse(msg tea.MouseMsg) (PointerEvent, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return PointerEvent{}, false
		}
		return PointerEvent{Phase: PointerDown, X: msg.X}, true
	case tea.MouseActionMotion:
		return PointerEvent{Phase: PointerMove, X: msg.X}, true
	case tea.MouseActionRelease:
		return PointerEvent{Phase: PointerUp, X: msg.X}, true
	}
	return PointerEvent{}, false
}

// Pointer feeds one pointer event into the drag state machine.
func (c *Carousel) Pointer(ev PointerEvent) tea.Cmd {
	switch ev.Phase {
	case PointerDown:
		c.BeginDrag(ev.X)
		return nil
	case PointerMove:
		c.UpdateDrag(ev.X)
		return nil
	case PointerUp, PointerCancel:
		return c.EndDrag()
	}
	return nil
}
