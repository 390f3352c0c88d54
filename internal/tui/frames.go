package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankmotion/internal/motion"
)

var lastDriverID int64

func nextDriverID() int {
	return int(atomic.AddInt64(&lastDriverID, 1))
}

// frameMsg is one animation frame addressed to a single driver run.
type frameMsg struct {
	id   int
	tag  int
	time time.Time
}

// frameDriver is the recurring tick behind an animation. Each run gets a
// new tag, so frames from a stopped or released run are recognised and
// dropped instead of being rescheduled.
type frameDriver struct {
	id       int
	tag      int
	interval time.Duration
	running  bool
	released bool
}

func newFrameDriver(fps int) *frameDriver {
	return &frameDriver{
		id:       nextDriverID(),
		interval: motion.FrameInterval(fps),
	}
}

// start begins a run unless one is already going or the driver has been
// released.
func (d *frameDriver) start() tea.Cmd {
	if d.released || d.running {
		return nil
	}
	d.running = true
	d.tag++
	return d.tick()
}

func (d *frameDriver) tick() tea.Cmd {
	id, tag := d.id, d.tag
	return tea.Tick(d.interval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag, time: t}
	})
}

// accept reports whether msg belongs to the current run.
func (d *frameDriver) accept(msg frameMsg) bool {
	return !d.released && d.running && msg.id == d.id && msg.tag == d.tag
}

// next schedules the following frame, or ends the run.
func (d *frameDriver) next(keepGoing bool) tea.Cmd {
	if !keepGoing || d.released {
		d.running = false
		return nil
	}
	return d.tick()
}

func (d *frameDriver) release() {
	d.released = true
	d.running = false
	d.tag++
}

func (d *frameDriver) isRunning() bool {
	return d.running
}
