package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	decideLabel     = "Checking the pantry..."
	decideSlowLabel = "Still weighing tonight's options..."

	// After this long the label switches to reassure the user the
	// arbiter is still working, not hung.
	decideSlowHintAfter = 2 * time.Second
)

type decideDoneMsg struct {
	err error
}

type decideSpinnerModel struct {
	spinner   spinner.Model
	startedAt time.Time
	decide    tea.Cmd
	err       error
	done      bool
}

func newDecideSpinnerModel(decide tea.Cmd, startedAt time.Time) decideSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("212"))),
	)

	return decideSpinnerModel{
		spinner:   s,
		startedAt: startedAt,
		decide:    decide,
	}
}

func (m decideSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.decide)
}

func (m decideSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case decideDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m decideSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label(time.Now()))
}

func (m decideSpinnerModel) label(now time.Time) string {
	if now.Sub(m.startedAt) >= decideSlowHintAfter {
		return decideSlowLabel
	}
	return decideLabel
}

func runDecideSpinner(ctx context.Context, output io.Writer, decide func(context.Context) error) error {
	decideCmd := func() tea.Msg {
		return decideDoneMsg{err: decide(ctx)}
	}

	p := tea.NewProgram(
		newDecideSpinnerModel(decideCmd, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(decideSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
