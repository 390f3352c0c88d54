package motion

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const DefaultFPS = 60

// FrameInterval is the time between frames at fps. Non-positive values fall
// back to DefaultFPS.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(harmonica.FPS(fps) * float64(time.Second))
}
