package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

type transitionView struct {
	demoView
	state *screens.Transition
}

func newTransitionView(state *screens.Transition, driver *frameDriver) *transitionView {
	return &transitionView{
		demoView: demoView{id: nav.Transition, machine: state, driver: driver},
		state:    state,
	}
}

func (v *transitionView) View(m *Model, now time.Time) string {
	var b strings.Builder

	offset := int(math.Round(v.state.Value(now)))
	image := m.renderImage(m.styles.Image, 1.0)
	// keep the launched image inside the window instead of wrapping
	pad := min(max(0, offset), max(0, m.contentWidth()-lipgloss.Width(image)))
	b.WriteString(lipgloss.NewStyle().PaddingLeft(pad).Render(image))
	b.WriteString("\n\n")

	// exactly one button, chosen by phase
	b.WriteString(m.renderButton(string(v.state.Buttons()[0]), true))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%s · offset %d", v.state.Phase(), offset)))

	return b.String()
}
