package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankmotion/internal/motion"
	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, start nav.ScreenID) (*Model, *motion.ManualClock) {
	t.Helper()
	clock := motion.NewManualClock(epoch)
	m := New(Options{
		Start:   start,
		Screens: screens.DefaultOptions(),
		FPS:     60,
		Clock:   clock,
	})
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestMainMenuShowsFourButtons(t *testing.T) {
	m, _ := newTestModel(t, nav.Main)

	assert.Equal(t, nav.Main, m.Current())
	view := m.View()
	for _, id := range nav.Demos() {
		assert.Contains(t, view, id.Title())
	}
}

func TestMenuCursorNavigation(t *testing.T) {
	m, _ := newTestModel(t, nav.Main)

	send(m, up)
	assert.Equal(t, 0, m.menuCursor)

	send(m, down)
	send(m, down)
	assert.Equal(t, 2, m.menuCursor)

	for i := 0; i < 10; i++ {
		send(m, down)
	}
	assert.Equal(t, len(nav.Demos())-1, m.menuCursor)

	send(m, up)
	send(m, enter)
	assert.Equal(t, nav.Infinite, m.Current())
}

func TestMenuDigitsJump(t *testing.T) {
	for i, id := range nav.Demos() {
		t.Run(id.String(), func(t *testing.T) {
			m, _ := newTestModel(t, nav.Main)
			send(m, runes(string(rune('1'+i))))
			assert.Equal(t, id, m.Current())
			require.NotNil(t, m.active)
			assert.Equal(t, id, m.active.ID())
		})
	}
}

func TestBackRestoresMenuCursor(t *testing.T) {
	m, _ := newTestModel(t, nav.Main)

	send(m, runes("3"))
	send(m, esc)

	assert.Equal(t, nav.Main, m.Current())
	assert.Nil(t, m.active)
	assert.Equal(t, 2, m.menuCursor)
}

func TestScaleScenario(t *testing.T) {
	m, clock := newTestModel(t, nav.Main)

	send(m, runes("2"))
	require.Equal(t, nav.Scale, m.Current())
	assert.Contains(t, m.View(), "scale 1.00×")

	cmd := send(m, enter)
	assert.NotNil(t, cmd, "press should start the frame driver")

	clock.Advance(250 * time.Millisecond)
	assert.NotContains(t, m.View(), "scale 1.00×")

	clock.Advance(250 * time.Millisecond)
	assert.Contains(t, m.View(), "scale 1.50×")

	send(m, enter)
	clock.Advance(screens.ScaleDuration)
	assert.Contains(t, m.View(), "scale 1.00×")
}

func TestTransitionShowsExactlyOneButton(t *testing.T) {
	m, clock := newTestModel(t, nav.Transition)

	view := m.View()
	assert.Contains(t, view, string(screens.ButtonLaunch))
	assert.NotContains(t, view, string(screens.ButtonLand))

	for i := 0; i < 6; i++ {
		send(m, enter)
		clock.Advance(300 * time.Millisecond)

		view = m.View()
		hasLaunch := strings.Contains(view, string(screens.ButtonLaunch))
		hasLand := strings.Contains(view, string(screens.ButtonLand))
		assert.True(t, hasLaunch != hasLand, "press %d: launch=%v land=%v", i+1, hasLaunch, hasLand)
	}
}

func TestEnterExitKeepsToggleButton(t *testing.T) {
	m, clock := newTestModel(t, nav.EnterExit)

	assert.Contains(t, m.View(), "o.o")
	assert.Contains(t, m.View(), string(screens.ButtonToggle))

	send(m, enter)
	clock.Advance(500 * time.Millisecond)
	assert.Contains(t, m.View(), "o.o", "still fading out")
	assert.Contains(t, m.View(), string(screens.ButtonToggle))

	clock.Advance(500 * time.Millisecond)
	assert.NotContains(t, m.View(), "o.o", "unmounted after fade out")
	assert.Contains(t, m.View(), string(screens.ButtonToggle))

	send(m, enter)
	assert.Contains(t, m.View(), "o.o", "mounted before fade in")
	assert.Contains(t, m.View(), string(screens.ButtonToggle))
}

func TestQuitDisposesActiveScreen(t *testing.T) {
	m, _ := newTestModel(t, nav.Infinite)
	view := m.active.(*infiniteView)

	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	assert.False(t, view.state.Active())
	assert.True(t, view.driver.released)
	assert.Empty(t, m.View())
}

func TestStartScreenOption(t *testing.T) {
	m, _ := newTestModel(t, nav.Infinite)

	assert.Equal(t, nav.Infinite, m.Current())
	require.NotNil(t, m.active)
	assert.True(t, m.active.(*infiniteView).state.Active())
	assert.NotNil(t, m.Init())
}

func TestWindowSizeClipsImage(t *testing.T) {
	m, clock := newTestModel(t, nav.Infinite)
	send(m, tea.WindowSizeMsg{Width: 40, Height: 20})

	clock.Advance(screens.InfiniteLeg)
	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40+4, "line too wide: %q", line)
	}
}

func TestTransitionOffsetStaysInsideNarrowWindow(t *testing.T) {
	m, clock := newTestModel(t, nav.Transition)
	send(m, tea.WindowSizeMsg{Width: 28, Height: 30})

	send(m, enter)
	clock.Advance(screens.TransitionDuration)

	view := m.View()
	require.Contains(t, view, string(screens.ButtonLand))
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "o.o") {
			assert.LessOrEqual(t, lipgloss.Width(line), 28, "image line too wide: %q", line)
		}
	}
}
