// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"shellkit/views/helpbar"
)

// View name constants for type-safe navigation
const (
	NameConsole = "console"
	NameHelp    = "help"
	NameHistory = "history"
	NameLoading = "loading"
)

// View is one screen of the shell UI.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Name() string

	// Lifecycle hooks, run when the view becomes (in)active.
	OnEnter() tea.Cmd
	OnExit() tea.Cmd

	// ShortHelpItems feeds the help bar.
	ShortHelpItems() []helpbar.HelpEntry
}

// Factory builds a view at a given size with an optional payload.
type Factory func(width, height int, payload any) (View, tea.Cmd)

// NavigateToMsg asks the app to switch views.
type NavigateToMsg struct {
	ViewName string
	Payload  any
	// Replace indicates whether the target view should replace the
	// current view instead of being pushed onto the navigation stack.
	Replace bool
}

// NavigateBackMsg asks the app to pop the navigation stack.
type NavigateBackMsg struct{}

// Resizable is implemented by views that track their own dimensions.
type Resizable interface {
	SetSize(width, height int)
}
