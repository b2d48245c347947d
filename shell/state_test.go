// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	sh := New()
	require.NoError(t, sh.Settings().Set("prompt", "$ "))
	require.NoError(t, sh.Settings().Set("timing", "true"))
	require.NoError(t, sh.Aliases().Set("ll", "shell ls -la"))
	require.NoError(t, sh.SaveState(path))

	restored := New()
	require.NoError(t, restored.LoadState(path))
	require.Equal(t, "$ ", restored.Settings().Prompt)
	require.True(t, restored.Settings().Timing)

	exp, ok := restored.Aliases().Get("ll")
	require.True(t, ok)
	require.Equal(t, "shell ls -la", exp)
}

func TestLoadStateMissingFile(t *testing.T) {
	sh := New()
	require.NoError(t, sh.LoadState(filepath.Join(t.TempDir(), "absent.json")))
	require.Equal(t, "(shellkit) ", sh.Settings().Prompt)
}

func TestAliases(t *testing.T) {
	a := NewAliases()

	require.NoError(t, a.Set("ls", "shell ls"))
	require.Error(t, a.Set("two words", "x"), "multi-word names are rejected")
	require.Error(t, a.Set("", "x"))
	require.Error(t, a.Set("blank", "  "))

	require.Equal(t, []string{"ls"}, a.Names())
	require.True(t, a.Unset("ls"))
	require.False(t, a.Unset("ls"))
	require.Zero(t, a.Len())
}
