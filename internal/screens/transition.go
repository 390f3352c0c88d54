package screens

import (
	"time"

	"github.com/AvengeMedia/dankmotion/internal/motion"
)

type TransitionPhase int

const (
	Grounded TransitionPhase = iota
	Launched
)

func (p TransitionPhase) String() string {
	if p == Launched {
		return "launched"
	}
	return "grounded"
}

// Transition moves the image between a rest position and a launched
// offset. Exactly one of Launch or Land is offered at a time.
type Transition struct {
	launched bool
	offset   float64
	position *motion.Tween
}

func NewTransition(opts Options) *Transition {
	opts = opts.withDefaults()
	return &Transition{
		offset:   opts.LaunchDistance,
		position: motion.NewTween(RestOffset, opts.TransitionDuration, opts.Easing),
	}
}

func (s *Transition) Phase() TransitionPhase {
	if s.launched {
		return Launched
	}
	return Grounded
}

// Launch moves Grounded to Launched. It reports false, and changes
// nothing, when already launched.
func (s *Transition) Launch(now time.Time) bool {
	if s.launched {
		return false
	}
	s.launched = true
	s.position.AnimateTo(now, s.offset)
	return true
}

// Land moves Launched to Grounded. It reports false when already grounded.
func (s *Transition) Land(now time.Time) bool {
	if !s.launched {
		return false
	}
	s.launched = false
	s.position.AnimateTo(now, RestOffset)
	return true
}

// Press activates whichever button is showing.
func (s *Transition) Press(now time.Time) {
	if s.launched {
		s.Land(now)
	} else {
		s.Launch(now)
	}
}

func (s *Transition) Buttons() []Button {
	if s.launched {
		return []Button{ButtonLand}
	}
	return []Button{ButtonLaunch}
}

func (s *Transition) Target() float64 {
	return s.position.Target()
}

// Value is the current position offset.
func (s *Transition) Value(now time.Time) float64 {
	return s.position.Value(now)
}

func (s *Transition) Animating(now time.Time) bool {
	return s.position.Running(now)
}

// Endpoints returns the rest and launched positions.
func (s *Transition) Endpoints() (float64, float64) {
	return RestOffset, s.offset
}
