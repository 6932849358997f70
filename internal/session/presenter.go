package session

import "github.com/verte-zerg/typesprint/internal/model"

// Presenter renders controller output. Index arguments address bytes of the target text.
type Presenter interface {
	DisplayTarget(text string)
	SetCharStatus(index int, status model.CharStatus)
	SetLiveStats(wpm, accuracy, errors, remainingSeconds int)
	SetControlsEnabled(inputEnabled, difficultyEnabled bool)
	SetActionButtons(showStart, showReset bool)
	ShowFinalResults(results model.Results)
}

// NopPresenter discards all output.
type NopPresenter struct{}

func (NopPresenter) DisplayTarget(string) {}
func (NopPresenter) SetCharStatus(int, model.CharStatus) {}
func (NopPresenter) SetLiveStats(int, int, int, int) {}
func (NopPresenter) SetControlsEnabled(bool, bool) {}
func (NopPresenter) SetActionButtons(bool, bool) {}
func (NopPresenter) ShowFinalResults(model.Results) {}

// Ticker delivers one Tick call per second while started.
// Stop must also discard any tick already scheduled.
type Ticker interface {
	Start()
	Stop()
}

// ManualTicker is a Ticker driven by the caller. It only tracks whether it is running.
type ManualTicker struct {
	running bool
	starts  int
	stops   int
}

// Start marks the ticker as running.
func (t *ManualTicker) Start() {
	t.running = true
	t.starts++
}

// Stop marks the ticker as stopped.
func (t *ManualTicker) Stop() {
	t.running = false
	t.stops++
}

// Running reports whether the ticker is started.
func (t *ManualTicker) Running() bool {
	return t.running
}
