// Package tui hosts the reef runner in a terminal with Bubble Tea. It turns
// key and mouse events into input frames, drives the simulation with the real
// time between ticks and projects each frame onto a character screen.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Loop identifies the model
// that scheduled it, so a model never consumes ticks of one it replaced.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next tick of a loop at the given frame rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}

// frameDelta returns the seconds between two ticks. The first tick of a run
// uses the nominal interval.
func frameDelta(last, now time.Time, tickRate int) float64 {
	if last.IsZero() || !now.After(last) {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	return now.Sub(last).Seconds()
}
