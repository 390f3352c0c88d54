package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankmotion/internal/log"
	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

// infiniteView owns a driver that runs from entry to exit.
type infiniteView struct {
	demoView
	state *screens.Infinite
}

func newInfiniteView(state *screens.Infinite, driver *frameDriver) *infiniteView {
	return &infiniteView{
		demoView: demoView{id: nav.Infinite, machine: state, driver: driver},
		state:    state,
	}
}

func (v *infiniteView) Init(now time.Time) tea.Cmd {
	v.state.Start(now)
	log.Debugf("Infinite animation started (driver %d)", v.driver.id)
	return v.driver.start()
}

// Press has no effect; there is no button on this screen.
func (v *infiniteView) Press(time.Time) tea.Cmd {
	return nil
}

func (v *infiniteView) Dispose() {
	v.state.Release()
	v.driver.release()
	log.Debugf("Infinite animation released (driver %d)", v.driver.id)
}

func (v *infiniteView) View(m *Model, now time.Time) string {
	var b strings.Builder

	scale := v.state.Value(now)
	b.WriteString(m.renderImage(m.styles.Image, scale))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("scale %.2f×", scale)))

	return b.String()
}
