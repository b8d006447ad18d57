package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spaces/core"
	"github.com/jask/spaces/core/carousel"
	"github.com/jask/spaces/internal/config"
	"github.com/jask/spaces/internal/content"
	"github.com/jask/spaces/internal/logging"
)

func testConfig() config.Config {
	return config.Config{
		Carousel: config.CarouselConfig{
			LockMS:         300,
			NoiseThreshold: 10,
			SwipeRatio:     0.2,
			Boundary:       "clamp",
			FPS:            60,
		},
		UI: config.UIConfig{Title: "CHUNG", Accent: "#f9d849", Theme: "notty"},
	}
}

func newTestApp(t *testing.T, cfg config.Config) core.Model {
	t.Helper()
	m, err := New(cfg, content.Defaults(), logging.Discard(), carousel.WithScheduler(carousel.NewManualScheduler()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func send(m core.Model, msg tea.Msg) (core.Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(core.Model), cmd
}

func typeKeys(m core.Model, text string) core.Model {
	for _, r := range text {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestTabsFromSpaces(t *testing.T) {
	tabs := Tabs(content.Defaults(), "notty")
	if len(tabs) != 4 {
		t.Fatalf("tabs = %d, want 4", len(tabs))
	}
	if tabs[3].Title != "Café & Library" || tabs[3].Value != "cafe" {
		t.Fatalf("last tab = %+v", tabs[3])
	}
	if _, ok := tabs[0].Content.(*content.Card); !ok {
		t.Fatalf("tab content should be a content card, got %T", tabs[0].Content)
	}
}

func TestNewBuildsModel(t *testing.T) {
	m := newTestApp(t, testConfig())
	c := m.Carousel()
	if c.Len() != 4 || c.Boundary() != carousel.Clamp || c.Autoplay() {
		t.Fatalf("carousel len=%d boundary=%v autoplay=%v", c.Len(), c.Boundary(), c.Autoplay())
	}
	send(m, tea.KeyMsg{Type: tea.KeyRight})
	if c.State().Active != 1 {
		t.Fatalf("right should advance, active = %d", c.State().Active)
	}
}

func TestConfigReachesCarousel(t *testing.T) {
	cfg := testConfig()
	cfg.Carousel.Boundary = "wrap"
	cfg.Carousel.AutoplayMS = 5000
	cfg.Keys = map[string][]string{"carousel-next": {"n"}}
	m := newTestApp(t, cfg)
	c := m.Carousel()
	if c.Boundary() != carousel.Wrap || !c.Autoplay() {
		t.Fatalf("boundary=%v autoplay=%v", c.Boundary(), c.Autoplay())
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if c.State().Active != 0 {
		t.Fatalf("replaced key still advanced")
	}
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if c.State().Active != 1 {
		t.Fatalf("override key should advance, active = %d", c.State().Active)
	}
}

func TestCarouselOptionsRejectsBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.Carousel.Boundary = "bounce"
	if _, err := CarouselOptions(cfg, nil, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if _, err := New(cfg, content.Defaults(), nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("New err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewRejectsDuplicateSpaces(t *testing.T) {
	spaces := []content.Space{{Title: "A", Value: "a"}, {Title: "B", Value: "a"}}
	if _, err := New(testConfig(), spaces, nil); !errors.Is(err, carousel.ErrDuplicateValue) {
		t.Fatalf("err = %v, want ErrDuplicateValue", err)
	}
}

func TestJumpPaletteSelectsSpace(t *testing.T) {
	m := newTestApp(t, testConfig())
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if m.ActiveScope() == core.ScopeCarousel {
		t.Fatalf("palette did not open")
	}
	m = typeKeys(m, "galery")
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter should produce a command")
	}
	if m.ActiveScope() != core.ScopeCarousel {
		t.Fatalf("palette should close on enter")
	}
	m, _ = send(m, cmd())
	if got := m.Carousel().ActiveTab().Value; got != "gallery" {
		t.Fatalf("active = %q, want gallery", got)
	}
}

func TestRegisteredCommandsRespectBounds(t *testing.T) {
	m := newTestApp(t, testConfig())
	reg := m.CommandRegistry()
	disabled := map[string]string{}
	for _, r := range reg.Search("", core.ScopeCarousel, &m) {
		if r.Disabled {
			disabled[r.CommandID] = r.Reason
		}
	}
	if disabled["previous-space"] != "first space" {
		t.Fatalf("previous should be disabled on the first space: %v", disabled)
	}
	if disabled["goto-studios"] != "already showing" {
		t.Fatalf("goto active space should be disabled: %v", disabled)
	}
	if _, ok := disabled["next-space"]; ok {
		t.Fatalf("next should be enabled: %v", disabled)
	}

	reg.Execute("goto-cafe", &m)
	if m.Carousel().ActiveTab().Value != "cafe" {
		t.Fatalf("goto-cafe landed on %q", m.Carousel().ActiveTab().Value)
	}
}
