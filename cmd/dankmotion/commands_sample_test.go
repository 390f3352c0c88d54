package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankmotion/internal/screens"
)

func noNote(time.Time) string { return "" }

func TestSampleMachineScale(t *testing.T) {
	s := screens.NewScale(screens.DefaultOptions())

	rows := sampleMachine(s, noNote, 1, 0, time.Second, 100*time.Millisecond)
	require.Len(t, rows, 11)

	assert.Equal(t, screens.ScaleRest, rows[0].Value)
	assert.True(t, rows[0].Animating)
	assert.Equal(t, screens.ScaleTapped, rows[5].Value)
	assert.False(t, rows[5].Animating)
	assert.Equal(t, []screens.Button{screens.ButtonTap}, rows[10].Buttons)
}

func TestSampleMachinePressesWithGap(t *testing.T) {
	s := screens.NewTransition(screens.DefaultOptions())

	rows := sampleMachine(s, func(time.Time) string { return s.Phase().String() }, 2, 500*time.Millisecond, time.Second, 250*time.Millisecond)
	require.Len(t, rows, 5)

	assert.Equal(t, "launched", rows[1].Note)
	assert.Equal(t, []screens.Button{screens.ButtonLand}, rows[1].Buttons)
	assert.Equal(t, "grounded", rows[2].Note)
	assert.Equal(t, screens.Grounded, s.Phase())
	assert.Len(t, s.Buttons(), 1)
}

func TestSampleMachineNoPresses(t *testing.T) {
	s := screens.NewEnterExit(screens.DefaultOptions())

	rows := sampleMachine(s, noNote, 0, 0, 300*time.Millisecond, 100*time.Millisecond)
	for _, r := range rows {
		assert.Equal(t, screens.OpacityVisible, r.Value)
		assert.False(t, r.Animating)
	}
}
