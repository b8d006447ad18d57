package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spaces/core/carousel"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

const (
	// ScopeCarousel is the key scope while no screen is open.
	ScopeCarousel = "carousel"

	chromeRows = 3 // header, status and footer
	bodyTop    = 2
)

type Model struct {
	width     int
	height    int
	title     string
	carousel  *carousel.Carousel
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool

	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(c *carousel.Carousel, keys *KeyRegistry, commands *CommandRegistry) Model {
	m := Model{
		title:    "spaces",
		carousel: c,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    100,
		height:   32,
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.carousel.Init()
}

// SetTitle sets the application name shown in the header.
func (m *Model) SetTitle(title string) {
	if title != "" {
		m.title = title
	}
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return ScopeCarousel
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) Carousel() *carousel.Carousel {
	return m.carousel
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}

func (m Model) bodyHeight() int {
	return max(0, m.height-chromeRows)
}

// layout sizes the carousel to the body area. The swipe threshold is
// measured against the full terminal width.
func (m *Model) layout() {
	m.carousel.SetViewport(m.width)
	m.carousel.SetSize(m.width, m.bodyHeight())
}
