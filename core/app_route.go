package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spaces/core/carousel"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case SelectTabMsg:
		return m, m.carousel.SelectTab(msg.Index)
	case carousel.ChangedMsg:
		if msg.ID == m.carousel.ID() {
			m.SetStatus(fmt.Sprintf("%s (%d/%d)", m.carousel.ActiveTab().Title, msg.To+1, m.carousel.Len()))
		}
		return m, nil
	case carousel.UnlockMsg, carousel.FrameMsg, carousel.AutoAdvanceMsg:
		return m, m.carousel.Update(msg)
	case tea.MouseMsg:
		if m.screens.Len() > 0 {
			return m, nil
		}
		msg.Y -= bodyTop
		return m, m.carousel.Update(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			return m, m.updateTop(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-jump-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, "toggle-autoplay", scope) {
			return m, m.ToggleAutoplay()
		}
		for i := range m.carousel.Len() {
			if m.keys.IsAction(msg, fmt.Sprintf("select-tab-%d", i+1), scope) {
				return m, m.carousel.SelectTab(i)
			}
		}
		return m, m.carousel.Update(msg)
	}

	if m.screens.Top() != nil {
		return m, m.updateTop(msg)
	}
	return m, nil
}

func (m *Model) updateTop(msg tea.Msg) tea.Cmd {
	top := m.screens.Top()
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	m.screens.ReplaceTop(next)
	return cmd
}

// ToggleAutoplay flips autoplay and reports the new state on the status line.
func (m *Model) ToggleAutoplay() tea.Cmd {
	on := !m.carousel.Autoplay()
	cmd := m.carousel.SetAutoplay(on)
	switch {
	case on && !m.carousel.Autoplay():
		m.SetStatus("Autoplay is not configured")
	case on:
		m.SetStatus("Autoplay on")
	default:
		m.SetStatus("Autoplay off")
	}
	return cmd
}
