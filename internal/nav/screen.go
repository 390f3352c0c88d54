package nav

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScreen = errors.New("unknown screen")

type ScreenID int

const (
	Main ScreenID = iota
	Transition
	Scale
	Infinite
	EnterExit
)

var screenNames = [...]string{
	Main:       "main",
	Transition: "transition",
	Scale:      "scale",
	Infinite:   "infinite",
	EnterExit:  "enter-exit",
}

var screenTitles = [...]string{
	Main:       "Animations",
	Transition: "Transition Animation",
	Scale:      "Scale Animation",
	Infinite:   "Infinite Animation",
	EnterExit:  "Enter/Exit Animation",
}

func (s ScreenID) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

// Title is the label shown on the menu button and screen header.
func (s ScreenID) Title() string {
	if s < 0 || int(s) >= len(screenTitles) {
		return s.String()
	}
	return screenTitles[s]
}

// All returns every screen, menu first.
func All() []ScreenID {
	return []ScreenID{Main, Transition, Scale, Infinite, EnterExit}
}

// Demos returns the screens reachable from the menu, in menu order.
func Demos() []ScreenID {
	return []ScreenID{Transition, Scale, Infinite, EnterExit}
}

// ParseScreenID accepts a screen name, case-insensitively. Underscores and
// spaces are treated as dashes, so "enter_exit" works too.
func ParseScreenID(name string) (ScreenID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if key == "enterexit" {
		key = "enter-exit"
	}
	for _, id := range All() {
		if id.String() == key {
			return id, nil
		}
	}
	return Main, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}
