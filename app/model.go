// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"shellkit/shell"
	"shellkit/views/console"
	loadingview "shellkit/views/loading"
	"shellkit/views/statusbar"
	"shellkit/views/view"
)

// Model holds app state: the shell session, the active view and the
// navigation stack behind it.
type Model struct {
	sh      *shell.Shell
	version string

	width, height int

	currentView view.View
	viewStack   view.Stack
	console     *console.Model
	status      *statusbar.Model

	noRC bool
}

// setupDoneMsg reports the result of session restore and rc execution.
type setupDoneMsg struct{ err error }

func InitialModel(sh *shell.Shell, version string, noRC bool) *Model {
	return &Model{
		sh:          sh,
		version:     version,
		width:       80,
		height:      24,
		currentView: loadingview.New(80, 24, "Restoring session..."),
		status:      statusbar.New(sh, version),
		noRC:        noRC,
	}
}

// Init starts session restore in the background while the loading view
// spins.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.currentView.Init(), m.setup())
}

func (m *Model) setup() tea.Cmd {
	return func() tea.Msg {
		if err := m.sh.LoadState(shell.StatePath()); err != nil {
			return setupDoneMsg{err: err}
		}
		if err := m.sh.History().Load(shell.HistoryPath()); err != nil {
			return setupDoneMsg{err: err}
		}
		if !m.noRC {
			if err := m.sh.RunStartupScript(context.Background()); err != nil {
				return setupDoneMsg{err: err}
			}
		}
		return setupDoneMsg{}
	}
}

// Shutdown persists session state; called once the program ends.
func (m *Model) Shutdown() {
	_ = m.sh.SaveState(shell.StatePath())
	_ = m.sh.History().Save(shell.HistoryPath())
}
