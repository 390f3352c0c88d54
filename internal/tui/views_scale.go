package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

const scaleButtonWidth = 12

type scaleView struct {
	demoView
	state *screens.Scale
}

func newScaleView(state *screens.Scale, driver *frameDriver) *scaleView {
	return &scaleView{
		demoView: demoView{id: nav.Scale, machine: state, driver: driver},
		state:    state,
	}
}

// View grows the tap target itself; nothing else on screen changes.
func (v *scaleView) View(m *Model, now time.Time) string {
	var b strings.Builder

	scale := v.state.Value(now)
	width := int(math.Round(scaleButtonWidth * scale))
	pad := int(math.Round((scale - screens.ScaleRest) * 2))

	button := m.styles.ButtonFocused.
		Width(width).
		Padding(pad, 0).
		Render(string(screens.ButtonTap))
	b.WriteString(button)
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("scale %.2f×", scale)))

	return b.String()
}
