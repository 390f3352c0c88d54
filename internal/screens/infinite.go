package screens

import (
	"time"

	"github.com/AvengeMedia/dankmotion/internal/motion"
)

// Infinite runs a scale ping-pong for as long as it is started. It has no
// user input; Start on screen entry and Release on exit.
type Infinite struct {
	scale *motion.PingPong
}

func NewInfinite(opts Options) *Infinite {
	opts = opts.withDefaults()
	return &Infinite{
		scale: motion.NewPingPong(InfiniteMin, InfiniteMax, opts.InfiniteLeg, opts.Easing),
	}
}

// Start acquires the repeater. Starting twice restarts from the lower bound.
func (s *Infinite) Start(now time.Time) {
	s.scale.Start(now)
}

// Release stops the repeater. It is safe to call more than once.
func (s *Infinite) Release() {
	s.scale.Stop()
}

func (s *Infinite) Active() bool {
	return s.scale.Running()
}

// Press does nothing; the animation is not user driven.
func (s *Infinite) Press(time.Time) {}

func (s *Infinite) Buttons() []Button {
	return nil
}

// TargetAt is the bound the leg running at now is heading for.
func (s *Infinite) TargetAt(now time.Time) float64 {
	if !s.scale.Running() || s.scale.Legs(now)%2 == 1 {
		return InfiniteMin
	}
	return InfiniteMax
}

func (s *Infinite) Value(now time.Time) float64 {
	return s.scale.Value(now)
}

func (s *Infinite) Animating(time.Time) bool {
	return s.scale.Running()
}

func (s *Infinite) Bounds() (float64, float64) {
	return s.scale.Bounds()
}
