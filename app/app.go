// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"shellkit/history"
	"shellkit/views/console"
	"shellkit/views/helpview"
	"shellkit/views/historyview"
	loadingview "shellkit/views/loading"
	"shellkit/views/view"
)

var viewRegistry = map[string]view.Factory{}

func registerView(name string, factory view.Factory) {
	viewRegistry[name] = factory
}

// registerViews wires the view factories once the shell exists; the
// console view is long-lived and reused across navigation.
func (m *Model) registerViews() {
	registerView(view.NameLoading, func(w, h int, payload any) (view.View, tea.Cmd) {
		v := loadingview.New(w, h, payload)
		return v, v.Init()
	})
	registerView(view.NameConsole, func(w, h int, payload any) (view.View, tea.Cmd) {
		if m.console == nil {
			m.console = console.New(w, h, m.sh)
		} else {
			m.console.SetSize(w, h)
		}
		return m.console, m.console.Init()
	})
	registerView(view.NameHelp, func(w, h int, payload any) (view.View, tea.Cmd) {
		var infos []helpview.CommandInfo
		for _, c := range m.sh.Registry().All() {
			infos = append(infos, helpview.CommandInfo{Name: c.Name(), Synopsis: c.Synopsis()})
		}
		return helpview.New(w, h, infos), nil
	})
	registerView(view.NameHistory, func(w, h int, payload any) (view.View, tea.Cmd) {
		entries, _ := payload.([]history.Entry)
		return historyview.New(w, h, entries), nil
	})
}

func (m *Model) switchToView(name string, data any) tea.Cmd {
	factory, ok := viewRegistry[name]
	if !ok {
		return nil
	}

	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.width, m.contentHeight(), data)
	resizeView(newView, m.width, m.contentHeight())

	m.viewStack.Push(m.currentView)
	m.currentView = newView

	enterCmd := newView.OnEnter()
	return tea.Batch(exitCmd, loadCmd, enterCmd)
}

func (m *Model) replaceView(name string, data any) tea.Cmd {
	factory, ok := viewRegistry[name]
	if !ok {
		return nil
	}

	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.width, m.contentHeight(), data)
	resizeView(newView, m.width, m.contentHeight())

	m.currentView = newView
	m.viewStack.Reset()

	enterCmd := newView.OnEnter()
	return tea.Batch(exitCmd, loadCmd, enterCmd)
}

func (m *Model) goBack() tea.Cmd {
	if m.viewStack.Len() == 0 {
		exitCmd := m.currentView.OnExit()
		return tea.Batch(exitCmd, tea.Quit)
	}

	oldView := m.currentView
	exitCmd := oldView.OnExit()

	m.currentView = m.viewStack.Pop()
	resizeView(m.currentView, m.width, m.contentHeight())

	enterCmd := m.currentView.OnEnter()
	return tea.Batch(exitCmd, enterCmd)
}

func resizeView(v view.View, width, height int) {
	if r, ok := v.(view.Resizable); ok {
		r.SetSize(width, height)
	}
}
