// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
)

// Model implements the Bubble Tea typing UI and acts as the session presenter.
type Model struct {
	ctrl   *session.Controller
	ticker *ticker
	keys   keyMap
	help   help.Model
	input  textinput.Model

	width  int
	height int

	difficulty model.Difficulty
	target     string
	statuses   []model.CharStatus

	wpm       int
	accuracy  int
	errors    int
	remaining int

	inputEnabled      bool
	difficultyEnabled bool
	showStart         bool
	showReset         bool

	results   *model.Results
	modalOpen bool
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = currentWordStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	activeDiffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Underline(true)
	diffStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	lockedDiffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	modalStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	modalValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs the typing UI around a fresh idle session.
func NewModel(bank session.SampleSource, difficulty model.Difficulty, log zerolog.Logger) (*Model, error) {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "press enter to start"
	input.CharLimit = 0

	m := &Model{
		ticker: &ticker{interval: time.Second},
		keys:   newKeyMap(),
		help:   help.New(),
		input:  input,
	}
	ctrl, err := session.New(bank,
		session.WithPresenter(m),
		session.WithTicker(m.ticker),
		session.WithLogger(log),
		session.WithDifficulty(difficulty),
	)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	m.difficulty = difficulty
	m.keys.syncEnabled(m)
	return m, nil
}

// DisplayTarget implements session.Presenter.
func (m *Model) DisplayTarget(text string) {
	m.target = text
	m.statuses = make([]model.CharStatus, len(text))
	m.results = nil
	m.modalOpen = false
	m.input.SetValue("")
}

// SetCharStatus implements session.Presenter.
func (m *Model) SetCharStatus(index int, status model.CharStatus) {
	if index >= 0 && index < len(m.statuses) {
		m.statuses[index] = status
	}
}

// SetLiveStats implements session.Presenter.
func (m *Model) SetLiveStats(wpm, accuracy, errors, remainingSeconds int) {
	m.wpm = wpm
	m.accuracy = accuracy
	m.errors = errors
	m.remaining = remainingSeconds
}

// SetControlsEnabled implements session.Presenter.
func (m *Model) SetControlsEnabled(inputEnabled, difficultyEnabled bool) {
	m.inputEnabled = inputEnabled
	m.difficultyEnabled = difficultyEnabled
	if inputEnabled {
		m.input.SetValue("")
		m.input.Placeholder = ""
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// SetActionButtons implements session.Presenter.
func (m *Model) SetActionButtons(showStart, showReset bool) {
	m.showStart = showStart
	m.showReset = showReset
	if showStart {
		m.input.Placeholder = "press enter to start"
	}
}

// ShowFinalResults implements session.Presenter.
func (m *Model) ShowFinalResults(results model.Results) {
	m.results = &results
	m.modalOpen = true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = m.contentWidth()
	case tickMsg:
		if m.ticker.accept(msg) {
			_ = m.ctrl.Tick()
		}
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	}
	m.keys.syncEnabled(m)
	return m, tea.Batch(cmd, m.ticker.next())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.CloseModal):
		m.modalOpen = false
		return nil
	case key.Matches(msg, m.keys.Reset):
		_ = m.ctrl.Reset()
		return nil
	case key.Matches(msg, m.keys.Start):
		_ = m.ctrl.Start()
		return textinput.Blink
	case key.Matches(msg, m.keys.Easy):
		m.selectDifficulty(model.Easy)
		return nil
	case key.Matches(msg, m.keys.Medium):
		m.selectDifficulty(model.Medium)
		return nil
	case key.Matches(msg, m.keys.Hard):
		m.selectDifficulty(model.Hard)
		return nil
	case key.Matches(msg, m.keys.Cycle):
		m.selectDifficulty(nextDifficulty(m.difficulty))
		return nil
	}
	if !m.inputEnabled {
		return nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		_ = m.ctrl.InputChanged(after)
	}
	return cmd
}

func (m *Model) selectDifficulty(d model.Difficulty) {
	if err := m.ctrl.SelectDifficulty(d); err == nil {
		m.difficulty = d
	}
}

func nextDifficulty(d model.Difficulty) model.Difficulty {
	for i, candidate := range model.Difficulties {
		if candidate == d {
			return model.Difficulties[(i+1)%len(model.Difficulties)]
		}
	}
	return model.Easy
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.target == "" {
		return ""
	}
	if m.modalOpen && m.results != nil {
		modal := m.renderResults()
		if m.width == 0 || m.height == 0 {
			return modal
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	styled := buildStyledRunes(m.target, m.statuses)
	contentWidth := m.contentWidth()
	text := wrapStyledRunes(styled, contentWidth)
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDifficulties(),
		"",
		lipgloss.NewStyle().Width(contentWidth).Render(text),
		"",
		m.input.View(),
		"",
		m.renderFooter(),
	)
	helpLine := m.help.View(m.keys)
	if m.width == 0 || m.height < 3 {
		return body + "\n" + helpLine
	}
	main := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	return main + "\n" + lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		return 60
	}
	return w
}

func (m *Model) renderDifficulties() string {
	parts := make([]string, 0, len(model.Difficulties))
	for i, d := range model.Difficulties {
		label := fmt.Sprintf("%d %s", i+1, d)
		switch {
		case d == m.difficulty:
			parts = append(parts, activeDiffStyle.Render(label))
		case m.difficultyEnabled:
			parts = append(parts, diffStyle.Render(label))
		default:
			parts = append(parts, lockedDiffStyle.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Time %ds", m.remaining),
		fmt.Sprintf("WPM %d", m.wpm),
		fmt.Sprintf("Accuracy %d%%", m.accuracy),
		fmt.Sprintf("Errors %d", m.errors),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) renderResults() string {
	r := m.results
	rows := []struct{ label, value string }{
		{"WPM", fmt.Sprintf("%d", r.WPM)},
		{"Accuracy", fmt.Sprintf("%d%%", r.Accuracy)},
		{"Errors", fmt.Sprintf("%d", r.Errors)},
		{"Characters", fmt.Sprintf("%d", r.TotalTyped)},
		{"Time", fmt.Sprintf("%ds", r.ElapsedSeconds)},
	}
	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		lines = append(lines, modalTitleStyle.Render(fmt.Sprintf("%-11s", row.label))+modalValueStyle.Render(row.value))
	}
	lines = append(lines, "", r.Message, "", footerStyle.Render("enter close · ctrl+r new text"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}
