package motion

import (
	"time"
)

// Tween interpolates a single value toward a target over a fixed duration.
// Retargeting always starts from the value sampled at the moment of the
// call, so interrupting a running tween never jumps.
type Tween struct {
	from   float64
	to     float64
	start  time.Time
	leg    time.Duration
	easing Easing

	duration time.Duration
}

// NewTween returns a tween at rest on value.
func NewTween(value float64, duration time.Duration, easing Easing) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{
		from:     value,
		to:       value,
		leg:      duration,
		easing:   easing,
		duration: duration,
	}
}

// Target is the value the tween settles on.
func (t *Tween) Target() float64 {
	return t.to
}

// Progress reports linear progress of the current leg in [0, 1].
func (t *Tween) Progress(now time.Time) float64 {
	if t.start.IsZero() || t.leg <= 0 {
		return 1
	}
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= t.leg {
		return 1
	}
	return float64(elapsed) / float64(t.leg)
}

func (t *Tween) Value(now time.Time) float64 {
	p := t.Progress(now)
	if p >= 1 {
		return t.to
	}
	return Lerp(t.from, t.to, t.easing(p))
}

// Running is true while the tween has not reached its target.
func (t *Tween) Running(now time.Time) bool {
	return t.Progress(now) < 1
}

// AnimateTo retargets the tween using its configured duration.
func (t *Tween) AnimateTo(now time.Time, target float64) {
	t.AnimateToOver(now, target, t.duration)
}

// AnimateToOver retargets the tween with a one-off duration; later calls
// to AnimateTo still use the configured one.
func (t *Tween) AnimateToOver(now time.Time, target float64, duration time.Duration) {
	t.from = t.Value(now)
	t.to = target
	t.start = now
	t.leg = duration
}
