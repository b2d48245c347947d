// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package console implements the main REPL screen: a scrollback
// viewport with the shell prompt beneath it. Statements run inside a
// tea.Cmd so the UI stays responsive, and a running command can be
// interrupted with ctrl+c through context cancellation.
package console

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shellkit/complete"
	"shellkit/shell"
	"shellkit/ui"
	"shellkit/views/commandinput"
	"shellkit/views/helpbar"
	"shellkit/views/view"
)

const ViewName = view.NameConsole

// ResultMsg carries one finished statement's output back to the UI. It
// is the only moment the command goroutine has stopped touching shell
// state, so the app refreshes state-derived widgets when it arrives.
type ResultMsg struct {
	output string
	err    error
}

type Model struct {
	sh     *shell.Shell
	vp     viewport.Model
	prompt *commandinput.Model
	spin   spinner.Model

	width, height int
	scrollback    []string
	running       bool
	cancel        context.CancelFunc
}

func New(width, height int, sh *shell.Shell) *Model {
	vp := viewport.New(width, height)
	m := &Model{
		sh:     sh,
		vp:     vp,
		prompt: commandinput.New(sh.History(), complete.New(sh)),
		spin:   ui.BubbleSpinner(),
		width:  width,
		height: height,
	}
	m.refreshPrompt()
	m.layout()
	return m
}

func (m *Model) Name() string     { return ViewName }
func (m *Model) Init() tea.Cmd    { return m.prompt.Focus() }
func (m *Model) OnEnter() tea.Cmd { return m.prompt.Focus() }
func (m *Model) OnExit() tea.Cmd  { m.prompt.Blur(); return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "tab", Desc: "complete"},
		{Key: "↑/↓", Desc: "history"},
		{Key: "pgup/pgdn", Desc: "scroll"},
		{Key: "ctrl+l", Desc: "clear"},
		{Key: "ctrl+c", Desc: "interrupt"},
	}
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.layout()
}

func (m *Model) layout() {
	promptLines := lipgloss.Height(m.prompt.View())
	vpHeight := m.height - promptLines - 1
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.vp.Width = m.width
	m.vp.Height = vpHeight
	m.prompt.SetWidth(m.width)
	m.refreshViewport()
}

// refreshPrompt re-renders the prompt text; called whenever the prompt
// setting, its color or the interpreter mode may have changed.
func (m *Model) refreshPrompt() {
	m.prompt.SetPrompt(m.sh.Prompt(), m.sh.Settings().PromptColor)
}

func (m *Model) refreshViewport() {
	m.vp.SetContent(strings.Join(m.scrollback, "\n"))
	m.vp.GotoBottom()
}

// AppendOutput adds text to the scrollback.
func (m *Model) AppendOutput(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	m.scrollback = append(m.scrollback, strings.Split(text, "\n")...)
	if len(m.scrollback) > 5000 {
		m.scrollback = m.scrollback[len(m.scrollback)-5000:]
	}
	m.refreshViewport()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commandinput.SubmitMsg:
		return m.submit(msg.Statement)

	case ResultMsg:
		m.running = false
		m.cancel = nil
		m.AppendOutput(msg.output)
		if msg.err != nil {
			m.AppendOutput(ui.ErrorStyle.Render("error: " + msg.err.Error()))
		}
		m.refreshPrompt()
		m.layout()
		if m.sh.Exited() {
			return tea.Quit
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.running && m.cancel != nil {
				m.cancel()
				return nil
			}
			return tea.Quit

		case "ctrl+l":
			m.scrollback = nil
			m.refreshViewport()
			return nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return cmd
		}

		if m.running {
			// Discard typing while a statement runs; the prompt is busy.
			return nil
		}
		cmd := m.prompt.Update(msg)
		m.layout()
		return cmd

	case spinner.TickMsg:
		if !m.running {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd
	}

	var cmds []tea.Cmd
	cmds = append(cmds, m.prompt.Update(msg))
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// submit echoes the statement, records it and runs it asynchronously.
func (m *Model) submit(statement string) tea.Cmd {
	promptText := m.sh.Prompt()
	m.AppendOutput(ui.FaintStyle.Render(promptText) + statement)
	if !m.sh.InterpActive() {
		m.sh.History().Append(statement)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true

	run := func() tea.Msg {
		out, err := m.sh.CaptureStatement(ctx, statement)
		cancel()
		return ResultMsg{output: out, err: err}
	}
	return tea.Batch(run, m.spin.Tick)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	if m.running {
		b.WriteString(m.spin.View() + " running…")
	} else {
		b.WriteString(m.prompt.View())
	}
	return b.String()
}
