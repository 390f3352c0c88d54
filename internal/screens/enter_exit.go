package screens

import (
	"time"

	"github.com/AvengeMedia/dankmotion/internal/motion"
)

type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// EnterExit fades an element in and out. Hiding keeps the element mounted
// until the fade-out finishes; showing mounts it first and then fades in.
type EnterExit struct {
	visible bool
	opacity *motion.Tween

	enter time.Duration
	exit  time.Duration
}

func NewEnterExit(opts Options) *EnterExit {
	opts = opts.withDefaults()
	return &EnterExit{
		visible: true,
		opacity: motion.NewTween(OpacityVisible, opts.EnterDuration, opts.Easing),
		enter:   opts.EnterDuration,
		exit:    opts.ExitDuration,
	}
}

func (s *EnterExit) Visibility() Visibility {
	if s.visible {
		return Visible
	}
	return Hidden
}

func (s *EnterExit) Toggle(now time.Time) {
	s.visible = !s.visible
	if s.visible {
		s.opacity.AnimateToOver(now, OpacityVisible, s.enter)
	} else {
		s.opacity.AnimateToOver(now, OpacityHidden, s.exit)
	}
}

func (s *EnterExit) Press(now time.Time) {
	s.Toggle(now)
}

// Mounted reports whether the element is in the render tree at now.
func (s *EnterExit) Mounted(now time.Time) bool {
	return s.visible || s.opacity.Running(now)
}

// Buttons always contains the toggle, whatever the element is doing.
func (s *EnterExit) Buttons() []Button {
	return []Button{ButtonToggle}
}

func (s *EnterExit) Target() float64 {
	return s.opacity.Target()
}

// Value is the element opacity in [0, 1].
func (s *EnterExit) Value(now time.Time) float64 {
	return s.opacity.Value(now)
}

func (s *EnterExit) Animating(now time.Time) bool {
	return s.opacity.Running(now)
}
