// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"shellkit/views/commandinput"
	"shellkit/views/console"
	"shellkit/views/historyview"
	"shellkit/views/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setupDoneMsg:
		m.registerViews()
		m.status.Refresh()
		if msg.err != nil {
			return m, m.replaceView(view.NameLoading, fmt.Sprintf("Error restoring session: %v", msg.err))
		}
		return m, m.replaceView(view.NameConsole, nil)

	case console.ResultMsg:
		// The statement's goroutine has finished; shell state is quiet
		// again, so derived widgets may read it.
		var cmd tea.Cmd
		if m.console != nil {
			cmd = m.console.Update(msg)
		}
		m.status.Refresh()
		return m, cmd

	case view.NavigateToMsg:
		if msg.Replace {
			return m, m.replaceView(msg.ViewName, msg.Payload)
		}
		return m, m.switchToView(msg.ViewName, msg.Payload)

	case view.NavigateBackMsg:
		return m, m.goBack()

	case historyview.RunEntryMsg:
		// Re-run lands on the console after the history view closed.
		if m.console != nil {
			return m, m.console.Update(commandinput.SubmitMsg{Statement: msg.Statement})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		resizeView(m.currentView, m.width, m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "f1":
			if m.currentView.Name() != view.NameHelp {
				return m, m.switchToView(view.NameHelp, nil)
			}
			return m, m.goBack()

		case "ctrl+r":
			if m.currentView.Name() == view.NameConsole {
				return m, m.switchToView(view.NameHistory, m.sh.History().All())
			}

		case "esc":
			if m.viewStack.Len() > 0 {
				return m, m.goBack()
			}
			// esc on the root view stays put; quitting is explicit.
			return m, m.currentView.Update(msg)
		}
	}

	return m, m.currentView.Update(msg)
}
