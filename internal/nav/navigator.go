package nav

import (
	"github.com/google/uuid"

	"github.com/AvengeMedia/dankmotion/internal/log"
)

// Listener is told about every navigation, including one to the screen
// that is already current.
type Listener func(from, to ScreenID)

type subscription struct {
	id string
	fn Listener
}

// Navigator holds the current screen. It is owned by the UI loop and is not
// safe for concurrent use.
type Navigator struct {
	current     ScreenID
	subscribers []subscription
}

func NewNavigator(start ScreenID) *Navigator {
	return &Navigator{current: start}
}

func (n *Navigator) Current() ScreenID {
	return n.current
}

// NavigateTo switches unconditionally and then notifies subscribers in
// subscription order.
func (n *Navigator) NavigateTo(id ScreenID) {
	from := n.current
	n.current = id
	log.Debugf("Navigate %s -> %s", from, id)
	n.notify(from, id)
}

// Back returns to the menu. There is no history beyond that.
func (n *Navigator) Back() {
	n.NavigateTo(Main)
}

func (n *Navigator) Subscribe(fn Listener) string {
	id := uuid.NewString()
	n.subscribers = append(n.subscribers, subscription{id: id, fn: fn})
	return id
}

func (n *Navigator) Unsubscribe(id string) {
	for i, sub := range n.subscribers {
		if sub.id == id {
			n.subscribers = append(n.subscribers[:i:i], n.subscribers[i+1:]...)
			return
		}
	}
}

func (n *Navigator) notify(from, to ScreenID) {
	// a listener may unsubscribe itself
	subs := append([]subscription(nil), n.subscribers...)
	for _, sub := range subs {
		sub.fn(from, to)
	}
}
