package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
	"github.com/AvengeMedia/dankmotion/internal/theme"
)

type enterExitView struct {
	demoView
	state *screens.EnterExit
}

func newEnterExitView(state *screens.EnterExit, driver *frameDriver) *enterExitView {
	return &enterExitView{
		demoView: demoView{id: nav.EnterExit, machine: state, driver: driver},
		state:    state,
	}
}

func (v *enterExitView) View(m *Model, now time.Time) string {
	var b strings.Builder

	opacity := v.state.Value(now)
	if v.state.Mounted(now) {
		color := theme.Blend(m.palette.Image, m.palette.Background, opacity)
		b.WriteString(m.renderImage(lipgloss.NewStyle().Foreground(lipgloss.Color(color)), 1.0))
		b.WriteString("\n\n")
	}

	// rendered whether or not the image is mounted
	b.WriteString(m.renderButton(string(screens.ButtonToggle), true))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s · opacity %.2f", v.state.Visibility(), opacity)))

	return b.String()
}
