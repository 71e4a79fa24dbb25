// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/b64u16/internal/logger"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is a [Prompter] that shows each question as a single-line bubbletea
// program. It needs a terminal on both ends; use [New] to fall back to
// [Line] otherwise.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI returns a terminal UI prompter over in and out.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// Ask implements [Prompter]. Enter submits, Esc and Ctrl+C abort with
// ErrUserQuit.
func (p *TUI) Ask(ctx context.Context, question string) (string, error) {
	log := logger.FromContext(ctx)

	program := tea.NewProgram(newAskModel(question),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	finalModel, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Debug().Err(ctxErr).Msg("tui prompt cancelled")
		return "", ctxErr
	}
	if err != nil {
		log.Error().Err(err).Msg("tui prompt failed")
		return "", fmt.Errorf("error running prompt: %w", err)
	}

	return answerOf(finalModel, log)
}

// answerOf extracts the submitted answer from the final model of a prompt
// program.
func answerOf(finalModel tea.Model, log *logger.Logger) (string, error) {
	result, ok := finalModel.(askModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		log.Debug().Msg("tui prompt aborted by user")
		return "", ErrUserQuit
	}

	log.Debug().Int("answer_len", len(result.answer)).Msg("tui prompt answered")
	return result.answer, nil
}

// askModel is a one-question form: a styled question followed by a text
// input.
type askModel struct {
	question string
	input    textinput.Model

	answer     string
	submitted  bool
	quitByUser bool
}

func newAskModel(question string) askModel {
	input := textinput.New()
	input.Prompt = questionStyle.Render(question)
	input.Focus()

	return askModel{
		question: question,
		input:    input,
	}
}

func (m askModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitByUser = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m askModel) View() string {
	switch {
	case m.submitted:
		return questionStyle.Render(m.question) + answerStyle.Render(m.answer) + "\n"
	case m.quitByUser:
		return ""
	}

	return m.input.View() + "\n" + helpStyle.Render("enter: submit • esc: cancel") + "\n"
}
