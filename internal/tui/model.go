package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankmotion/internal/log"
	"github.com/AvengeMedia/dankmotion/internal/motion"
	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
	"github.com/AvengeMedia/dankmotion/internal/theme"
)

type Options struct {
	Start   nav.ScreenID
	Screens screens.Options
	FPS     int
	Palette theme.Palette
	Clock   motion.Clock
}

// screenView is the live part of a demo screen. It is built when the
// screen is entered and disposed when navigation leaves it.
type screenView interface {
	ID() nav.ScreenID
	Init(now time.Time) tea.Cmd
	Press(now time.Time) tea.Cmd
	Frame(msg frameMsg, now time.Time) tea.Cmd
	View(m *Model, now time.Time) string
	Dispose()
}

type Model struct {
	nav     *nav.Navigator
	clock   motion.Clock
	screens screens.Options
	fps     int

	palette  theme.Palette
	styles   Styles
	menuKeys menuKeyMap
	demoKeys demoKeyMap
	help     help.Model

	width  int
	height int

	menuCursor int
	active     screenView
	pending    []tea.Cmd
	quitting   bool
}

func New(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = motion.SystemClock{}
	}
	if opts.FPS <= 0 {
		opts.FPS = motion.DefaultFPS
	}
	if opts.Palette == (theme.Palette{}) {
		opts.Palette, _ = theme.GeneratePalette(theme.DefaultAccent, theme.PaletteOptions{})
	}

	m := &Model{
		nav:      nav.NewNavigator(nav.Main),
		clock:    opts.Clock,
		screens:  opts.Screens,
		fps:      opts.FPS,
		palette:  opts.Palette,
		styles:   NewStyles(opts.Palette),
		menuKeys: newMenuKeyMap(),
		demoKeys: newDemoKeyMap(),
		help:     help.New(),
	}
	m.nav.Subscribe(m.onNavigate)

	if opts.Start != nav.Main {
		m.nav.NavigateTo(opts.Start)
	}
	return m
}

// Run starts the program on the alternate screen and blocks until exit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.dispose()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *Model) Current() nav.ScreenID {
	return m.nav.Current()
}

func (m *Model) onNavigate(from, to nav.ScreenID) {
	now := m.clock.Now()

	if m.active != nil {
		log.Debugf("Disposing %s screen", m.active.ID())
		m.active.Dispose()
		m.active = nil
	}

	m.active = m.newView(to)
	if m.active != nil {
		m.pending = append(m.pending, m.active.Init(now))
	}

	if to == nav.Main {
		for i, id := range nav.Demos() {
			if id == from {
				m.menuCursor = i
			}
		}
	}
}

func (m *Model) newView(id nav.ScreenID) screenView {
	driver := newFrameDriver(m.fps)
	switch id {
	case nav.Transition:
		return newTransitionView(screens.NewTransition(m.screens), driver)
	case nav.Scale:
		return newScaleView(screens.NewScale(m.screens), driver)
	case nav.Infinite:
		return newInfiniteView(screens.NewInfinite(m.screens), driver)
	case nav.EnterExit:
		return newEnterExitView(screens.NewEnterExit(m.screens), driver)
	}
	return nil
}

func (m *Model) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) navigate(id nav.ScreenID) tea.Cmd {
	m.nav.NavigateTo(id)
	return m.drainPending()
}

func (m *Model) dispose() {
	if m.active != nil {
		m.active.Dispose()
		m.active = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("dankmotion"), m.drainPending())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case frameMsg:
		if m.active == nil {
			return m, nil
		}
		return m, m.active.Frame(msg, m.clock.Now())
	case tea.KeyMsg:
		if m.nav.Current() == nav.Main {
			return m.updateMenu(msg)
		}
		return m.updateDemo(msg)
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.dispose()
	return m, tea.Quit
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	now := m.clock.Now()

	var b strings.Builder
	b.WriteString(m.renderBanner())
	b.WriteString("\n\n")

	if m.active == nil {
		b.WriteString(m.viewMenu())
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.menuKeys))
		return b.String()
	}

	b.WriteString(m.styles.Title.Render(m.active.ID().Title()))
	b.WriteString("\n")
	b.WriteString(m.active.View(m, now))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.demoKeys))
	return b.String()
}

func (m *Model) updateDemo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.demoKeys.Quit):
		return m.quit()
	case key.Matches(msg, m.demoKeys.Back):
		m.nav.Back()
		return m, m.drainPending()
	case key.Matches(msg, m.demoKeys.Press):
		return m, m.active.Press(m.clock.Now())
	}
	return m, nil
}
