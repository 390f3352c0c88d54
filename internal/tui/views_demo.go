package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

// demoView drives a state machine with a frame driver that runs only while
// the machine is animating.
type demoView struct {
	id      nav.ScreenID
	machine screens.Machine
	driver  *frameDriver
}

func (v *demoView) ID() nav.ScreenID {
	return v.id
}

func (v *demoView) Init(time.Time) tea.Cmd {
	return nil
}

// Press forwards to the machine. A run already in progress keeps going and
// picks up the new target on its next frame.
func (v *demoView) Press(now time.Time) tea.Cmd {
	v.machine.Press(now)
	return v.driver.start()
}

func (v *demoView) Frame(msg frameMsg, now time.Time) tea.Cmd {
	if !v.driver.accept(msg) {
		return nil
	}
	return v.driver.next(v.machine.Animating(now))
}

func (v *demoView) Dispose() {
	v.driver.release()
}
