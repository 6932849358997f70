// Package script drives a session controller from line-oriented commands.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// ErrUnknownCommand is returned for commands the runner does not understand.
var ErrUnknownCommand = errors.New("unknown command")

// Controller is the subset of session.Controller the runner needs.
type Controller interface {
	Start() error
	Tick() error
	InputChanged(typed string) error
	Reset() error
	SelectDifficulty(d model.Difficulty) error
	Snapshot() session.Snapshot
}

// Runner executes commands and prints the resulting state. It also serves as
// the controller's presenter so it can print final results when they are shown.
type Runner struct {
	session.NopPresenter

	ctrl    Controller
	out     io.Writer
	prompt  string
	pending *model.Results
}

// NewRunner returns a runner writing to out. Bind must be called before Run.
func NewRunner(out io.Writer, prompt string) *Runner {
	return &Runner{out: out, prompt: prompt}
}

// Bind attaches the controller the runner drives.
func (r *Runner) Bind(ctrl Controller) {
	r.ctrl = ctrl
}

// ShowFinalResults implements session.Presenter.
func (r *Runner) ShowFinalResults(res model.Results) {
	r.pending = &res
}

// Run reads commands from in until EOF. Blank lines and lines starting with # are skipped.
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	if err := r.writePrompt(); err != nil {
		return err
	}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			if err := r.Exec(strings.TrimLeft(line, " \t")); err != nil {
				return err
			}
		}
		if err := r.writePrompt(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// Exec runs a single command line and prints the state. Only write errors are returned.
func (r *Runner) Exec(line string) error {
	name, arg, _ := strings.Cut(line, " ")
	err := r.dispatch(name, arg)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrRejected):
		if _, werr := fmt.Fprintf(r.out, "rejected: %v\n", err); werr != nil {
			return werr
		}
	default:
		if _, werr := fmt.Fprintf(r.out, "error: %v\n", err); werr != nil {
			return werr
		}
		return nil
	}
	if err := r.printState(); err != nil {
		return err
	}
	if r.pending != nil {
		res := *r.pending
		r.pending = nil
		if err := stats.RenderResults(r.out, res); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) dispatch(name, arg string) error {
	switch strings.ToLower(name) {
	case "start":
		return r.ctrl.Start()
	case "type":
		return r.ctrl.InputChanged(arg)
	case "tick":
		n := 1
		if s := strings.TrimSpace(arg); s != "" {
			parsed, err := strconv.Atoi(s)
			if err != nil || parsed < 1 {
				return fmt.Errorf("tick count must be a positive integer, got %q", s)
			}
			n = parsed
		}
		for i := 0; i < n; i++ {
			if err := r.ctrl.Tick(); err != nil {
				return err
			}
		}
		return nil
	case "reset":
		return r.ctrl.Reset()
	case "select-difficulty":
		d, err := model.ParseDifficulty(arg)
		if err != nil {
			return err
		}
		return r.ctrl.SelectDifficulty(d)
	case "state":
		return nil
	default:
		return fmt.Errorf("%w %q (want start, type, tick, reset, select-difficulty, state)", ErrUnknownCommand, name)
	}
}

func (r *Runner) printState() error {
	snap := r.ctrl.Snapshot()
	if _, err := fmt.Fprintf(r.out, "status=%s difficulty=%s remaining=%d wpm=%d accuracy=%d errors=%d typed=%d\n",
		snap.Status, snap.Difficulty, snap.Remaining, snap.Stats.WPM, snap.Stats.Accuracy, snap.Errors, snap.TotalTyped); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.out, "target=%q input=%q\n", snap.Target, snap.TypedText); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.out, "chars=%s\n", StatusLine(snap.Statuses))
	return err
}

func (r *Runner) writePrompt() error {
	if r.prompt == "" {
		return nil
	}
	_, err := io.WriteString(r.out, r.prompt)
	return err
}

// StatusLine encodes statuses as one letter per position:
// c correct, x incorrect, > current, . untouched.
func StatusLine(statuses []model.CharStatus) string {
	var b strings.Builder
	b.Grow(len(statuses))
	for _, st := range statuses {
		switch st {
		case model.Correct:
			b.WriteByte('c')
		case model.Incorrect:
			b.WriteByte('x')
		case model.Current:
			b.WriteByte('>')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
