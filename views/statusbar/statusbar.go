// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package statusbar renders the session info block: version, command
// and alias counts, history length and the active mode. The block is
// rebuilt only on Refresh, and only when the underlying state's hash
// changed; View returns the cached render so it never touches shell
// state that a running command may be writing.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shellkit/core/primitives/hash"
	"shellkit/shell"
)

type Model struct {
	sh      *shell.Shell
	version string

	tracker  hash.Tracker
	rendered string
}

func New(sh *shell.Shell, version string) *Model {
	m := &Model{sh: sh, version: version}
	m.Refresh()
	return m
}

// snapshot is the hashed state; any field change invalidates the cache.
type snapshot struct {
	Commands int
	Aliases  int
	History  int
	Settings uint64
	Interp   bool
}

// Refresh re-reads the session counters and re-renders if they changed.
// Callers must not invoke it while a statement is executing; a running
// command writes the same state concurrently.
func (m *Model) Refresh() {
	snap := snapshot{
		Commands: len(m.sh.Registry().Names()),
		Aliases:  m.sh.Aliases().Len(),
		History:  m.sh.History().Len(),
		Settings: m.sh.Settings().Hash(),
		Interp:   m.sh.InterpActive(),
	}
	if !m.tracker.Changed(snap) && m.rendered != "" {
		return
	}

	mode := "shell"
	if snap.Interp {
		mode = "interpreter"
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("shellkit:"), m.version)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("mode:"), mode)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("commands:"), snap.Commands)
	fmt.Fprintf(&b, "%s %d", labelStyle.Render("history:"), snap.History)

	m.rendered = b.String()
}

func (m *Model) View() string { return m.rendered }
