package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/samples"
	"github.com/verte-zerg/typesprint/internal/session"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func newRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	bank, err := samples.New(map[model.Difficulty][]string{
		model.Easy:   {"cat"},
		model.Medium: {"hello"},
		model.Hard:   {"zebra"},
	}, zeroSource{})
	require.NoError(t, err)

	var out bytes.Buffer
	runner := NewRunner(&out, "")
	ctrl, err := session.New(bank, session.WithPresenter(runner))
	require.NoError(t, err)
	runner.Bind(ctrl)
	return runner, &out
}

func TestRunCompletesSession(t *testing.T) {
	runner, out := newRunner(t)
	script := "# warm up\nstart\n\ntype ca\ntick 2\ntype cat\n"
	require.NoError(t, runner.Run(strings.NewReader(script)))

	text := out.String()
	assert.Contains(t, text, "status=running difficulty=easy remaining=60 wpm=0 accuracy=100 errors=0 typed=0\n")
	assert.Contains(t, text, "chars=>..\n")
	assert.Contains(t, text, "chars=cc>\n")
	assert.Contains(t, text, "status=running difficulty=easy remaining=58")
	assert.Contains(t, text, "status=finished difficulty=easy remaining=58")
	assert.Contains(t, text, "chars=ccc\n")
	assert.Contains(t, text, "Results\n")
	assert.Contains(t, text, "completed")
}

func TestRunTypeKeepsWhitespace(t *testing.T) {
	runner, out := newRunner(t)
	require.NoError(t, runner.Run(strings.NewReader("select-difficulty medium\nstart\ntype he  \n")))
	assert.Contains(t, out.String(), `target="hello" input="he  "`)
	assert.Contains(t, out.String(), "chars=ccxx>\n")
}

func TestRunTimeout(t *testing.T) {
	runner, out := newRunner(t)
	require.NoError(t, runner.Run(strings.NewReader("start\ntick 60\n")))
	text := out.String()
	assert.Contains(t, text, "status=finished difficulty=easy remaining=0 wpm=0 accuracy=100 errors=0 typed=0")
	assert.Contains(t, text, "timeout")
	assert.Contains(t, text, model.TierEncourage.Message())
}

func TestRunRejectsDifficultyWhileRunning(t *testing.T) {
	runner, out := newRunner(t)
	require.NoError(t, runner.Run(strings.NewReader("start\nselect-difficulty hard\n")))
	text := out.String()
	assert.Contains(t, text, "rejected: action rejected: select difficulty while running")
	assert.NotContains(t, text, "difficulty=hard")
	assert.NotContains(t, text, "zebra")
}

func TestRunReportsBadInput(t *testing.T) {
	runner, out := newRunner(t)
	require.NoError(t, runner.Run(strings.NewReader("jump\ntick zero\nselect-difficulty insane\nstate\n")))
	text := out.String()
	assert.Contains(t, text, `error: unknown command "jump"`)
	assert.Contains(t, text, "error: tick count must be a positive integer")
	assert.Contains(t, text, "error: unknown difficulty")
	assert.Contains(t, text, "status=idle difficulty=easy")
}

func TestRunPrompt(t *testing.T) {
	bank := samples.Default(zeroSource{})
	var out bytes.Buffer
	runner := NewRunner(&out, "> ")
	ctrl, err := session.New(bank, session.WithPresenter(runner))
	require.NoError(t, err)
	runner.Bind(ctrl)

	require.NoError(t, runner.Run(strings.NewReader("state\n")))
	assert.True(t, strings.HasPrefix(out.String(), "> status=idle"))
	assert.True(t, strings.HasSuffix(out.String(), "> "))
}

func TestStatusLine(t *testing.T) {
	got := StatusLine([]model.CharStatus{model.Correct, model.Incorrect, model.Current, model.Untouched})
	assert.Equal(t, "cx>.", got)
}
