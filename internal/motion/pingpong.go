package motion

import (
	"math"
	"time"
)

// PingPong repeats a tween between lower and upper forever, reversing at
// each bound instead of restarting.
type PingPong struct {
	lower  float64
	upper  float64
	leg    time.Duration
	easing Easing

	start   time.Time
	running bool
}

func NewPingPong(lower, upper float64, leg time.Duration, easing Easing) *PingPong {
	if easing == nil {
		easing = Linear
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	return &PingPong{
		lower:  lower,
		upper:  upper,
		leg:    leg,
		easing: easing,
	}
}

func (p *PingPong) Bounds() (float64, float64) {
	return p.lower, p.upper
}

// Start begins the first leg, lower to upper, at now. Starting a running
// repeater restarts it.
func (p *PingPong) Start(now time.Time) {
	p.start = now
	p.running = true
}

func (p *PingPong) Stop() {
	p.running = false
	p.start = time.Time{}
}

func (p *PingPong) Running() bool {
	return p.running
}

// Legs returns how many legs have completed by now.
func (p *PingPong) Legs(now time.Time) int64 {
	if !p.running || p.leg <= 0 {
		return 0
	}
	elapsed := now.Sub(p.start)
	if elapsed <= 0 {
		return 0
	}
	return int64(elapsed / p.leg)
}

// Value samples the repeater. A stopped repeater rests on the lower bound.
func (p *PingPong) Value(now time.Time) float64 {
	if !p.running {
		return p.lower
	}
	if p.leg <= 0 {
		return p.upper
	}

	elapsed := now.Sub(p.start)
	if elapsed <= 0 {
		return p.lower
	}

	legs := elapsed / p.leg
	frac := float64(elapsed%p.leg) / float64(p.leg)

	// Return legs replay the outbound leg backwards in time, so the curve
	// mirrors around each turning point.
	if legs%2 == 1 {
		frac = 1 - frac
	}
	v := Lerp(p.lower, p.upper, p.easing(frac))
	return math.Max(p.lower, math.Min(p.upper, v))
}
