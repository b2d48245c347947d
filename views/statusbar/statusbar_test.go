// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusbar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shellkit/shell"
)

// View must never read shell state directly; a statement running in a
// goroutine may be writing it. It returns the render cached by the
// last Refresh.
func TestViewReturnsCachedRender(t *testing.T) {
	sh := shell.New()
	m := New(sh, "test")

	before := m.View()
	require.Contains(t, before, "history:")
	require.Contains(t, before, "shell")

	sh.History().Append("speak hi")
	require.Equal(t, before, m.View())

	m.Refresh()
	require.NotEqual(t, before, m.View())
}

func TestRefreshPicksUpMode(t *testing.T) {
	sh := shell.New()
	m := New(sh, "test")

	sh.EnterInterp()
	m.Refresh()
	require.Contains(t, m.View(), "interpreter")

	sh.LeaveInterp()
	m.Refresh()
	require.NotContains(t, m.View(), "interpreter")
}
