package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankmotion/internal/log"
	"github.com/AvengeMedia/dankmotion/internal/nav"
	"github.com/AvengeMedia/dankmotion/internal/screens"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <screen>",
	Short: "Sample a screen's animation without a terminal UI",
	Long:  "Press a screen's button and print the animated value over time. Useful as a smoke check on machines without a TTY.",
	Args:  cobra.ExactArgs(1),
	Run:   runSample,
}

func init() {
	sampleCmd.Flags().Int("presses", 1, "Number of button presses")
	sampleCmd.Flags().Duration("gap", 0, "Time between presses")
	sampleCmd.Flags().Duration("duration", 2*time.Second, "How long to sample after the first press")
	sampleCmd.Flags().Duration("step", 100*time.Millisecond, "Sampling interval")
}

var sampleEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type sampleRow struct {
	At        time.Duration
	Value     float64
	Animating bool
	Buttons   []screens.Button
	Note      string
}

// sampleMachine replays presses against a fresh state machine starting at
// sampleEpoch and records its value every step.
func sampleMachine(machine screens.Machine, note func(time.Time) string, presses int, gap, duration, step time.Duration) []sampleRow {
	nextPress := sampleEpoch
	pressed := 0
	var rows []sampleRow

	for at := time.Duration(0); at <= duration; at += step {
		now := sampleEpoch.Add(at)
		for pressed < presses && !nextPress.After(now) {
			machine.Press(nextPress)
			pressed++
			nextPress = nextPress.Add(gap)
		}

		rows = append(rows, sampleRow{
			At:        at,
			Value:     machine.Value(now),
			Animating: machine.Animating(now),
			Buttons:   machine.Buttons(),
			Note:      note(now),
		})
	}
	return rows
}

func runSample(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	id, err := nav.ParseScreenID(args[0])
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	presses, _ := cmd.Flags().GetInt("presses")
	gap, _ := cmd.Flags().GetDuration("gap")
	duration, _ := cmd.Flags().GetDuration("duration")
	step, _ := cmd.Flags().GetDuration("step")
	if step <= 0 {
		log.Fatalf("--step must be positive")
	}
	if presses < 0 {
		log.Fatalf("--presses must not be negative")
	}

	opts := cfg.ScreenOptions()
	var machine screens.Machine
	var note func(time.Time) string

	switch id {
	case nav.Transition:
		s := screens.NewTransition(opts)
		machine, note = s, func(time.Time) string { return s.Phase().String() }
	case nav.Scale:
		s := screens.NewScale(opts)
		machine, note = s, func(time.Time) string { return s.Phase().String() }
	case nav.Infinite:
		s := screens.NewInfinite(opts)
		s.Start(sampleEpoch)
		defer s.Release()
		machine, note = s, func(now time.Time) string { return fmt.Sprintf("toward %.1f", s.TargetAt(now)) }
	case nav.EnterExit:
		s := screens.NewEnterExit(opts)
		machine, note = s, func(now time.Time) string {
			return fmt.Sprintf("%s mounted=%v", s.Visibility(), s.Mounted(now))
		}
	default:
		log.Fatalf("Screen %s has no animation", id)
	}

	rows := sampleMachine(machine, note, presses, gap, duration, step)

	fmt.Printf("%-8s  %-8s  %-9s  %-8s  %s\n", "Time", "Value", "Animating", "Buttons", "State")
	fmt.Println(strings.Repeat("─", 56))
	for _, r := range rows {
		buttons := make([]string, len(r.Buttons))
		for i, b := range r.Buttons {
			buttons[i] = string(b)
		}
		fmt.Printf("%-8s  %-8.3f  %-9v  %-8s  %s\n",
			r.At,
			r.Value,
			r.Animating,
			strings.Join(buttons, ","),
			r.Note,
		)
	}
}
