// Package screens holds the per-screen animation state machines. They are
// pure: every operation takes the current time and nothing here touches
// the terminal or schedules work.
package screens

import (
	"time"

	"github.com/AvengeMedia/dankmotion/internal/motion"
)

const (
	TransitionDuration = 1000 * time.Millisecond
	ScaleDuration      = 500 * time.Millisecond
	InfiniteLeg        = 1000 * time.Millisecond
	FadeDuration       = 1000 * time.Millisecond

	RestOffset            = 0.0
	DefaultLaunchDistance = 24.0

	ScaleRest   = 1.0
	ScaleTapped = 1.5

	InfiniteMin = 1.0
	InfiniteMax = 8.0

	OpacityHidden  = 0.0
	OpacityVisible = 1.0
)

type Button string

const (
	ButtonLaunch Button = "Launch Rocket"
	ButtonLand   Button = "Land Rocket"
	ButtonTap    Button = "Tap Me"
	ButtonToggle Button = "Press for Animation"
)

// Machine is the part every demo screen shares: one primary press and one
// animated value.
type Machine interface {
	Press(now time.Time)
	Value(now time.Time) float64
	Animating(now time.Time) bool
	Buttons() []Button
}

// Options collects the tunables for all four screens.
type Options struct {
	TransitionDuration time.Duration
	LaunchDistance     float64
	ScaleDuration      time.Duration
	InfiniteLeg        time.Duration
	EnterDuration      time.Duration
	ExitDuration       time.Duration
	Easing             motion.Easing
}

func DefaultOptions() Options {
	return Options{
		TransitionDuration: TransitionDuration,
		LaunchDistance:     DefaultLaunchDistance,
		ScaleDuration:      ScaleDuration,
		InfiniteLeg:        InfiniteLeg,
		EnterDuration:      FadeDuration,
		ExitDuration:       FadeDuration,
		Easing:             motion.FastOutSlowIn,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = d.TransitionDuration
	}
	if o.LaunchDistance == 0 {
		o.LaunchDistance = d.LaunchDistance
	}
	if o.ScaleDuration <= 0 {
		o.ScaleDuration = d.ScaleDuration
	}
	if o.InfiniteLeg <= 0 {
		o.InfiniteLeg = d.InfiniteLeg
	}
	if o.EnterDuration <= 0 {
		o.EnterDuration = d.EnterDuration
	}
	if o.ExitDuration <= 0 {
		o.ExitDuration = d.ExitDuration
	}
	if o.Easing == nil {
		o.Easing = d.Easing
	}
	return o
}
