package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

func currentFrame(d *frameDriver) frameMsg {
	return frameMsg{id: d.id, tag: d.tag}
}

func TestFrameDriverLifecycle(t *testing.T) {
	d := newFrameDriver(60)

	require.NotNil(t, d.start())
	assert.True(t, d.isRunning())
	assert.Nil(t, d.start(), "second start joins the running loop")

	msg := currentFrame(d)
	assert.True(t, d.accept(msg))
	assert.NotNil(t, d.next(true))
	assert.Nil(t, d.next(false))
	assert.False(t, d.isRunning())
	assert.False(t, d.accept(msg), "frames from a finished run are dropped")

	require.NotNil(t, d.start())
	assert.False(t, d.accept(msg), "old tag must not match the new run")
	assert.True(t, d.accept(currentFrame(d)))
}

func TestFrameDriverRelease(t *testing.T) {
	d := newFrameDriver(60)
	d.start()
	msg := currentFrame(d)

	d.release()
	d.release()

	assert.False(t, d.accept(msg))
	assert.Nil(t, d.next(true))
	assert.Nil(t, d.start(), "a released driver never restarts")
	assert.False(t, d.isRunning())
}

func TestFrameDriversHaveDistinctIDs(t *testing.T) {
	a, b := newFrameDriver(60), newFrameDriver(60)
	assert.NotEqual(t, a.id, b.id)

	a.start()
	b.start()
	assert.False(t, b.accept(currentFrame(a)))
}

func TestInfiniteDriverReleasedOnExit(t *testing.T) {
	m, clock := newTestModel(t, nav.Main)

	send(m, runes("3"))
	view, ok := m.active.(*infiniteView)
	require.True(t, ok)
	require.True(t, view.driver.isRunning(), "starts on entry")

	for i := 0; i < 5; i++ {
		clock.Advance(view.driver.interval)
		assert.NotNil(t, send(m, currentFrame(view.driver)), "keeps ticking while shown")
	}

	stale := currentFrame(view.driver)
	send(m, esc)

	assert.False(t, view.state.Active())
	assert.False(t, view.driver.isRunning())
	assert.Nil(t, send(m, stale), "no tick is rescheduled after leaving")
}

func TestInfiniteDriverFreshOnReentry(t *testing.T) {
	m, _ := newTestModel(t, nav.Main)

	send(m, runes("3"))
	first := m.active.(*infiniteView)
	send(m, esc)
	send(m, runes("3"))
	second := m.active.(*infiniteView)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.driver.id, second.driver.id)
	assert.True(t, second.driver.isRunning())
	assert.Nil(t, send(m, currentFrame(first.driver)))
}

func TestDemoDriverStopsWhenSettled(t *testing.T) {
	m, clock := newTestModel(t, nav.Scale)
	view := m.active.(*scaleView)
	assert.False(t, view.driver.isRunning(), "idle until pressed")

	require.NotNil(t, send(m, enter))
	clock.Advance(100 * time.Millisecond)
	assert.NotNil(t, send(m, currentFrame(view.driver)))

	// interrupting keeps the same run
	tag := view.driver.tag
	assert.Nil(t, send(m, enter))
	assert.Equal(t, tag, view.driver.tag)

	clock.Advance(screens.ScaleDuration)
	assert.Nil(t, send(m, currentFrame(view.driver)))
	assert.False(t, view.driver.isRunning())
}

func TestFrameWithoutActiveScreen(t *testing.T) {
	m, _ := newTestModel(t, nav.Main)
	assert.Nil(t, send(m, frameMsg{id: 999, tag: 1}))
}
