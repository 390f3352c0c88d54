package screens

import (
	"time"

	"github.com/AvengeMedia/dankmotion/internal/motion"
)

type ScalePhase int

const (
	Rest ScalePhase = iota
	Tapped
)

func (p ScalePhase) String() string {
	if p == Tapped {
		return "tapped"
	}
	return "rest"
}

// Scale flips between two sizes on every tap. A tap during a running
// animation retargets from the size on screen; there is no debounce.
type Scale struct {
	tapped bool
	taps   int
	scale  *motion.Tween
}

func NewScale(opts Options) *Scale {
	opts = opts.withDefaults()
	return &Scale{
		scale: motion.NewTween(ScaleRest, opts.ScaleDuration, opts.Easing),
	}
}

func (s *Scale) Phase() ScalePhase {
	if s.tapped {
		return Tapped
	}
	return Rest
}

func (s *Scale) Tap(now time.Time) {
	s.tapped = !s.tapped
	s.taps++

	target := ScaleRest
	if s.tapped {
		target = ScaleTapped
	}
	s.scale.AnimateTo(now, target)
}

func (s *Scale) Press(now time.Time) {
	s.Tap(now)
}

// Taps counts taps since the screen was entered.
func (s *Scale) Taps() int {
	return s.taps
}

func (s *Scale) Buttons() []Button {
	return []Button{ButtonTap}
}

func (s *Scale) Target() float64 {
	return s.scale.Target()
}

func (s *Scale) Value(now time.Time) float64 {
	return s.scale.Value(now)
}

func (s *Scale) Animating(now time.Time) bool {
	return s.scale.Running(now)
}
