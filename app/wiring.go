package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jask/spaces/core"
	"github.com/jask/spaces/core/carousel"
	"github.com/jask/spaces/internal/config"
	"github.com/jask/spaces/internal/content"
	"github.com/jask/spaces/screens"
)

// New assembles the application model from configuration and content.
func New(cfg config.Config, spaces []content.Space, logger *log.Logger, extra ...carousel.Option) (core.Model, error) {
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	opts, err := CarouselOptions(cfg, keys, logger)
	if err != nil {
		return core.Model{}, err
	}
	c, err := carousel.New(Tabs(spaces, cfg.UI.Theme), append(opts, extra...)...)
	if err != nil {
		return core.Model{}, fmt.Errorf("build carousel: %w", err)
	}
	core.SetAccent(lipgloss.Color(cfg.UI.Accent))
	m := core.NewModel(c, keys, core.NewCommandRegistry(nil))
	m.SetTitle(cfg.UI.Title)
	ConfigureModel(&m)
	return m, nil
}

// CarouselOptions maps the carousel section of the config onto options.
func CarouselOptions(cfg config.Config, keys *core.KeyRegistry, logger *log.Logger) ([]carousel.Option, error) {
	cc := cfg.Carousel
	boundary, ok := carousel.ParseBoundary(cc.Boundary)
	if !ok {
		return nil, fmt.Errorf("%w: unknown boundary %q", config.ErrInvalidConfig, cc.Boundary)
	}
	styles := carousel.DefaultStyles()
	if cfg.UI.Accent != "" {
		styles.Accent = lipgloss.Color(cfg.UI.Accent)
	}
	opts := []carousel.Option{
		carousel.WithScheduler(carousel.TickScheduler{}),
		carousel.WithLockDuration(cc.LockDuration()),
		carousel.WithNoiseThreshold(cc.NoiseThreshold),
		carousel.WithSwipeRatio(cc.SwipeRatio),
		carousel.WithBoundary(boundary),
		carousel.WithAutoAdvance(cc.AutoplayInterval()),
		carousel.WithFrameRate(cc.FPS),
		carousel.WithStyles(styles),
		carousel.WithLogger(logger),
	}
	if keys != nil {
		opts = append(opts, carousel.WithKeyMap(CarouselKeyMap(keys)))
	}
	return opts, nil
}

// CarouselKeyMap builds the carousel's navigation keys from the registry so
// config overrides reach the component.
func CarouselKeyMap(keys *core.KeyRegistry) carousel.KeyMap {
	return carousel.KeyMap{
		Prev: keys.Binding("carousel-prev"),
		Next: keys.Binding("carousel-next"),
	}
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	RegisterCommands(m.CommandRegistry(), m.Carousel().Tabs())
}

func RegisterCommands(reg *core.CommandRegistry, tabs []carousel.Tab) {
	for i, tab := range tabs {
		reg.Register(core.Command{
			ID:          "goto-" + tab.Value,
			Name:        "Go to " + tab.Title,
			Description: fmt.Sprintf("Show space %d", i+1),
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return m.Carousel().SelectTab(i)
			},
			Disabled: func(m *core.Model) (bool, string) {
				if m.Carousel().State().Active == i {
					return true, "already showing"
				}
				return false, ""
			},
		})
	}
	reg.Register(core.Command{
		ID:          "next-space",
		Name:        "Next space",
		Description: "Slide to the next space",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Carousel().Next()
		},
		Disabled: func(m *core.Model) (bool, string) {
			c := m.Carousel()
			if c.Boundary() == carousel.Clamp && c.State().Active == c.Len()-1 {
				return true, "last space"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "previous-space",
		Name:        "Previous space",
		Description: "Slide to the previous space",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Carousel().Previous()
		},
		Disabled: func(m *core.Model) (bool, string) {
			c := m.Carousel()
			if c.Boundary() == carousel.Clamp && c.State().Active == 0 {
				return true, "first space"
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "toggle-autoplay",
		Name:        "Toggle autoplay",
		Description: "Start or stop advancing on a timer",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.ToggleAutoplay()
		},
	})
}
