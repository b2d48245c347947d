// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shellkit/complete"
	"shellkit/history"
	"shellkit/ui"
)

// SubmitMsg is emitted when the user presses Enter on the prompt.
type SubmitMsg struct{ Statement string }

// Model is the shell prompt: a textinput with history walking, tab
// completion and an inline error line.
type Model struct {
	input     textinput.Model
	hist      *history.Store
	completer *complete.Completer

	histPos    int
	draft      string // line being typed before history walking began
	walking    bool
	errorMsg   string
	candidates []string
}

func New(hist *history.Store, completer *complete.Completer) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 1024
	ti.Focus()

	return &Model{input: ti, hist: hist, completer: completer}
}

// SetPrompt styles the prompt text with the configured color.
func (m *Model) SetPrompt(prompt, color string) {
	m.input.Prompt = lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render(prompt)
}

func (m *Model) SetWidth(w int) {
	m.input.Width = w - lipgloss.Width(m.input.Prompt) - 2
	if m.input.Width < 8 {
		m.input.Width = 8
	}
}

func (m *Model) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) Blur() { m.input.Blur() }

// ShowError displays an error message under the prompt.
func (m *Model) ShowError(msg string) {
	m.errorMsg = msg
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "enter":
		val := strings.TrimSpace(m.input.Value())
		if val == "" {
			return nil
		}
		m.input.Reset()
		m.errorMsg = ""
		m.candidates = nil
		m.walking = false
		return func() tea.Msg { return SubmitMsg{Statement: val} }

	case "tab":
		if m.completer == nil {
			return nil
		}
		comp := m.completer.Complete(m.input.Value())
		m.input.SetValue(comp.Line)
		m.input.CursorEnd()
		m.candidates = comp.Candidates
		return nil

	case "up":
		if m.hist.Len() == 0 {
			return nil
		}
		if !m.walking {
			m.walking = true
			m.draft = m.input.Value()
			m.histPos = m.hist.Len() + 1
		}
		if m.histPos > 1 {
			m.histPos--
		} else {
			m.histPos = 1
		}
		if e, err := m.hist.Get(m.histPos); err == nil {
			m.input.SetValue(e.Statement)
			m.input.CursorEnd()
		}
		return nil

	case "down":
		if !m.walking {
			return nil
		}
		if m.histPos < m.hist.Len() {
			m.histPos++
			if e, err := m.hist.Get(m.histPos); err == nil {
				m.input.SetValue(e.Statement)
			}
		} else {
			m.walking = false
			m.input.SetValue(m.draft)
		}
		m.input.CursorEnd()
		return nil
	}

	// Any edit clears stale feedback.
	if m.errorMsg != "" || len(m.candidates) > 0 {
		if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeyBackspace {
			m.errorMsg = ""
			m.candidates = nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the prompt plus any candidate or error line.
func (m *Model) View() string {
	view := m.input.View()

	if len(m.candidates) > 0 {
		view += "\n" + ui.FaintStyle.Render(strings.Join(m.candidates, "  "))
	}
	if m.errorMsg != "" {
		view += "\n" + ui.ErrorStyle.Render(m.errorMsg)
	}
	return view
}

// Value returns the current prompt contents.
func (m *Model) Value() string { return m.input.Value() }
