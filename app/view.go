// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"shellkit/ui"
	"shellkit/views/helpbar"
	"shellkit/views/view"
)

// headerHeight is the number of lines the statusbar/helpbar block takes
// above the active view; the stack bar takes one more below it.
const headerHeight = 4

func (m *Model) contentHeight() int {
	h := m.height - headerHeight - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) View() string {
	sessionInfo := m.status.View()

	globalHelp := []helpbar.HelpEntry{{Key: "f1", Desc: "help"}}
	if m.currentView.Name() == view.NameHelp {
		globalHelp = nil
	}

	help := helpbar.New(m.width).
		WithGlobalHelp(globalHelp).
		WithViewHelp(m.currentView.ShortHelpItems()).
		View(sessionInfo)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		help,
		m.currentView.View(),
		m.renderStackBar(),
	)
}

func (m *Model) renderStackBar() string {
	stack := append(m.viewStack.Views(), m.currentView)

	var parts []string
	for i, v := range stack {
		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Faint(true).Render(" → "))
		}
		style := ui.Rainbow[i%len(ui.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", v.Name())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
