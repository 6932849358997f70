// Package session drives a single typing attempt from idle through running to finished.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typesprint/internal/diff"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// ErrRejected is returned for events that are not valid in the current state.
// A rejected event leaves the session unchanged.
var ErrRejected = errors.New("action rejected")

// SampleSource supplies target texts.
type SampleSource interface {
	Pick(d model.Difficulty) (string, error)
}

// Snapshot is the observable state of a controller.
type Snapshot struct {
	ID         string
	Status     model.Status
	Difficulty model.Difficulty
	Target     string
	TypedText  string
	Remaining  int
	Statuses   []model.CharStatus
	Stats      model.Stats
	Errors     int
	TotalTyped int
	Results    *model.Results
}

// Controller owns one session. It is not safe for concurrent use;
// the host must deliver events serially.
type Controller struct {
	bank      SampleSource
	presenter Presenter
	ticker    Ticker
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string

	id         string
	difficulty model.Difficulty
	status     model.Status
	target     string
	typed      string
	remaining  int
	startedAt  time.Time
	result     diff.Result
	results    *model.Results
}

// Option configures a Controller.
type Option func(*Controller)

// WithPresenter sets the presentation layer.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) { c.presenter = p }
}

// WithTicker sets the countdown ticker.
func WithTicker(t Ticker) Option {
	return func(c *Controller) { c.ticker = t }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithClock overrides the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithDifficulty sets the initial difficulty.
func WithDifficulty(d model.Difficulty) Option {
	return func(c *Controller) { c.difficulty = d }
}

// New returns an idle controller with a sample already loaded.
func New(bank SampleSource, opts ...Option) (*Controller, error) {
	c := &Controller{
		bank:       bank,
		presenter:  NopPresenter{},
		ticker:     &ManualTicker{},
		log:        zerolog.Nop(),
		now:        time.Now,
		newID:      uuid.NewString,
		difficulty: model.Easy,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.difficulty.Valid() {
		return nil, fmt.Errorf("%w %q", model.ErrUnknownDifficulty, c.difficulty)
	}
	text, err := bank.Pick(c.difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to pick sample: %w", err)
	}
	c.enterIdle(text)
	return c, nil
}

// Status returns the current lifecycle state.
func (c *Controller) Status() model.Status {
	return c.status
}

// Start begins the countdown. Only valid while idle.
func (c *Controller) Start() error {
	if c.status != model.Idle {
		return c.reject("start")
	}
	c.id = c.newID()
	c.status = model.Running
	c.typed = ""
	c.remaining = model.SessionSeconds
	c.startedAt = c.now()
	c.results = nil
	c.result = diff.Result{Statuses: make([]model.CharStatus, len(c.target))}
	c.ticker.Start()

	c.log.Debug().Str("session", c.id).Str("difficulty", string(c.difficulty)).Msg("session started")
	c.presenter.SetControlsEnabled(true, false)
	c.presenter.SetActionButtons(false, true)
	c.applyInput("")
	return nil
}

// Tick advances the countdown by one second and finishes the session at zero.
func (c *Controller) Tick() error {
	if c.status != model.Running {
		return c.reject("tick")
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.finish(model.EndTimeout)
		return nil
	}
	c.pushLiveStats()
	return nil
}

// InputChanged rescores the full typed text. An exact match finishes the session.
func (c *Controller) InputChanged(typed string) error {
	if c.status != model.Running {
		return c.reject("input")
	}
	c.applyInput(typed)
	if c.typed == c.target {
		c.finish(model.EndCompleted)
	}
	return nil
}

// Reset abandons the current attempt and returns to idle with a new sample.
func (c *Controller) Reset() error {
	if c.status == model.Running {
		c.ticker.Stop()
		c.log.Debug().Str("session", c.id).Msg("session abandoned")
	}
	c.enterIdle(c.mustPick(c.difficulty))
	return nil
}

// SelectDifficulty switches the sample pool. Only valid while idle.
func (c *Controller) SelectDifficulty(d model.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w %q", model.ErrUnknownDifficulty, d)
	}
	if c.status != model.Idle {
		return c.reject("select difficulty")
	}
	c.difficulty = d
	c.enterIdle(c.mustPick(d))
	return nil
}

// Snapshot returns a copy of the observable state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         c.id,
		Status:     c.status,
		Difficulty: c.difficulty,
		Target:     c.target,
		TypedText:  c.typed,
		Remaining:  c.remaining,
		Statuses:   append([]model.CharStatus(nil), c.result.Statuses...),
		Stats:      c.liveStats(),
		Errors:     c.result.Incorrect,
		TotalTyped: c.result.Typed,
	}
	if c.results != nil {
		res := *c.results
		snap.Results = &res
	}
	return snap
}

func (c *Controller) enterIdle(text string) {
	c.status = model.Idle
	c.id = ""
	c.target = text
	c.typed = ""
	c.remaining = model.SessionSeconds
	c.startedAt = time.Time{}
	c.result = diff.Result{Statuses: make([]model.CharStatus, len(text))}
	c.results = nil

	c.presenter.DisplayTarget(text)
	c.pushLiveStats()
	c.presenter.SetControlsEnabled(false, true)
	c.presenter.SetActionButtons(true, false)
}

func (c *Controller) applyInput(typed string) {
	prev := c.result.Statuses
	c.typed = typed
	c.result = diff.Classify(c.target, typed)
	for i, st := range c.result.Statuses {
		if i >= len(prev) || prev[i] != st {
			c.presenter.SetCharStatus(i, st)
		}
	}
	c.pushLiveStats()
}

func (c *Controller) finish(reason model.EndReason) {
	c.ticker.Stop()
	c.status = model.Finished

	st := c.liveStats()
	tier := stats.TierFor(st.WPM, st.Accuracy)
	c.results = &model.Results{
		SessionID:      c.id,
		Difficulty:     c.difficulty,
		Reason:         reason,
		StartedAt:      c.startedAt,
		EndedAt:        c.now(),
		ElapsedSeconds: stats.ElapsedSeconds(c.remaining),
		WPM:            st.WPM,
		Accuracy:       st.Accuracy,
		Errors:         c.result.Incorrect,
		TotalTyped:     c.result.Typed,
		Tier:           tier,
		Message:        tier.Message(),
	}

	c.log.Info().
		Str("session", c.id).
		Str("difficulty", string(c.difficulty)).
		Str("reason", string(reason)).
		Int("wpm", st.WPM).
		Int("accuracy", st.Accuracy).
		Int("errors", c.result.Incorrect).
		Msg("session finished")

	c.pushLiveStats()
	c.presenter.SetControlsEnabled(false, false)
	c.presenter.SetActionButtons(false, true)
	c.presenter.ShowFinalResults(*c.results)
}

func (c *Controller) liveStats() model.Stats {
	return stats.Compute(c.result.Correct, c.result.Typed, c.remaining)
}

func (c *Controller) pushLiveStats() {
	st := c.liveStats()
	c.presenter.SetLiveStats(st.WPM, st.Accuracy, c.result.Incorrect, c.remaining)
}

func (c *Controller) mustPick(d model.Difficulty) string {
	text, err := c.bank.Pick(d)
	if err != nil {
		panic(fmt.Sprintf("sample bank misconfigured: %v", err))
	}
	return text
}

func (c *Controller) reject(action string) error {
	c.log.Debug().Str("action", action).Stringer("status", c.status).Msg("action rejected")
	return fmt.Errorf("%w: %s while %s", ErrRejected, action, c.status)
}
