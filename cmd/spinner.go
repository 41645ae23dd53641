package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/argent-bank-cli/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskSettledMsg arrives once the task's outcome has been dispatched.
type taskSettledMsg struct{}

// abortMsg carries the reason the command gave up waiting.
type abortMsg struct {
	err error
}

// taskSpinnerModel shows a spinner while a store task is in flight. When the
// command context ends it cancels the task and keeps spinning until the
// task settles, so the store never misses the outcome.
type taskSpinnerModel struct {
	spinner   spinner.Model
	task      *application.Task
	label     string
	requestID string
	err       error
	aborting  bool
	settled   bool
}

func newTaskSpinnerModel(label string, task *application.Task) taskSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return taskSpinnerModel{
		spinner:   s,
		task:      task,
		label:     label,
		requestID: lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("#%d", task.Request())),
	}
}

func (m taskSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, awaitTask(m.task))
}

func (m taskSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case abortMsg:
		if m.aborting || m.settled {
			return m, nil
		}
		m.aborting = true
		m.err = msg.err
		m.task.Cancel()
		return m, nil
	case taskSettledMsg:
		m.settled = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m taskSpinnerModel) View() string {
	if m.settled {
		return ""
	}

	label := m.label
	if m.aborting {
		label = "Cancelling..."
	}
	return fmt.Sprintf("%s %s %s", m.spinner.View(), label, m.requestID)
}

func awaitTask(task *application.Task) tea.Cmd {
	return func() tea.Msg {
		<-task.Done()
		return taskSettledMsg{}
	}
}

// watchContext reports ctx ending; it yields nothing once the task settled.
func watchContext(ctx context.Context, task *application.Task) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return abortMsg{err: ctx.Err()}
		case <-task.Done():
			return nil
		}
	}
}

// waitWithSpinner shows a spinner on output until task settles. It returns
// the context error when ctx ended first.
func waitWithSpinner(ctx context.Context, output io.Writer, label string, task *application.Task) error {
	p := tea.NewProgram(
		newTaskSpinnerModel(label, task),
		tea.WithInput(nil),
		tea.WithOutput(output),
	)

	go func() {
		if msg := watchContext(ctx, task)(); msg != nil {
			p.Send(msg)
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		task.Cancel()
		<-task.Done()
		return err
	}

	result, ok := finalModel.(taskSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if result.err == nil {
		return ctx.Err()
	}
	return result.err
}
