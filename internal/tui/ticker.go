package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	gen int
}

// ticker implements session.Ticker on top of tea.Tick. Each Start or Stop
// bumps the generation so ticks scheduled for an earlier run are dropped.
type ticker struct {
	interval  time.Duration
	gen       int
	running   bool
	scheduled bool
}

func (t *ticker) Start() {
	t.gen++
	t.running = true
	t.scheduled = false
}

func (t *ticker) Stop() {
	t.gen++
	t.running = false
	t.scheduled = false
}

// accept reports whether msg belongs to the current run.
func (t *ticker) accept(msg tickMsg) bool {
	if !t.running || msg.gen != t.gen {
		return false
	}
	t.scheduled = false
	return true
}

// next schedules the following tick if one is due.
func (t *ticker) next() tea.Cmd {
	if !t.running || t.scheduled {
		return nil
	}
	t.scheduled = true
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
