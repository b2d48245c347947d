// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package complete

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"shellkit/args"
	"shellkit/shell"
)

type stubCmd struct {
	shell.Meta
}

func (c *stubCmd) Flags(fs *pflag.FlagSet) {
	fs.Bool("recurse", false, "")
	fs.Bool("relative", false, "")
	fs.Int("count", 0, "")
}

func (c *stubCmd) Execute(ctx *shell.Context, a *args.Args) error { return nil }

func newCompleter(t *testing.T) *Completer {
	t.Helper()
	sh := shell.New(shell.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))
	sh.Register(
		&stubCmd{shell.Meta{CmdName: "load", Paths: true, Max: -1}},
		&stubCmd{shell.Meta{CmdName: "list", Max: -1}},
		&stubCmd{shell.Meta{CmdName: "speak", Max: -1}},
	)
	require.NoError(t, sh.Aliases().Set("ll", "shell ls -la"))
	return New(sh)
}

func TestCompleteCommandNames(t *testing.T) {
	c := newCompleter(t)

	// Unique prefix completes fully and closes the word.
	got := c.Complete("sp")
	require.Equal(t, "speak ", got.Line)
	require.Empty(t, got.Candidates)

	// Ambiguous prefix extends to the common prefix and lists candidates.
	got = c.Complete("l")
	require.Equal(t, "l", got.Line)
	require.ElementsMatch(t, []string{"load", "list", "ll"}, got.Candidates)

	got = c.Complete("li")
	require.Equal(t, "list ", got.Line)

	// No match leaves the line alone.
	got = c.Complete("zzz")
	require.Equal(t, "zzz", got.Line)
	require.Empty(t, got.Candidates)
}

func TestCompleteAliasNames(t *testing.T) {
	c := newCompleter(t)

	got := c.Complete("ll")
	require.Equal(t, "ll ", got.Line)
}

func TestCompleteFlags(t *testing.T) {
	c := newCompleter(t)

	got := c.Complete("speak --c")
	require.Equal(t, "speak --count ", got.Line)

	// --re is shared by --recurse and --relative.
	got = c.Complete("speak --re")
	require.Equal(t, "speak --re", got.Line)
	require.ElementsMatch(t, []string{"--recurse", "--relative"}, got.Candidates)

	// The implicit help flag completes too.
	got = c.Complete("speak --he")
	require.Equal(t, "speak --help ", got.Line)
}

func TestCompletePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.txt"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))

	c := newCompleter(t)
	prefix := "load " + dir + string(filepath.Separator)

	got := c.Complete(prefix + "setu")
	require.Equal(t, prefix+"setup.txt ", got.Line)

	got = c.Complete(prefix + "set")
	require.Equal(t, prefix+"set", got.Line, "common prefix is already typed")
	require.Len(t, got.Candidates, 2)

	// Directories complete with a separator and stay open.
	got = c.Complete(prefix + "scr")
	require.Equal(t, prefix+"scripts"+string(filepath.Separator), got.Line)
}

func TestCompletePathsOnlyForPathCommands(t *testing.T) {
	c := newCompleter(t)

	// speak has no PathArgs, so its positionals do not path-complete.
	got := c.Complete("speak set")
	require.Equal(t, "speak set", got.Line)
	require.Empty(t, got.Candidates)
}

func TestCompleteRedirectTargets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "capture.txt"), nil, 0o644))

	c := newCompleter(t)
	prefix := dir + string(filepath.Separator)

	// Any command's redirection target path-completes.
	got := c.Complete("speak hi > " + prefix + "cap")
	require.Equal(t, "speak hi > "+prefix+"capture.txt ", got.Line)

	got = c.Complete("speak hi >>" + prefix + "cap")
	require.Equal(t, "speak hi >>"+prefix+"capture.txt ", got.Line)
}

func TestCompleteExecutables(t *testing.T) {
	binDir := t.TempDir()
	exe := filepath.Join(binDir, "frobnicate")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", binDir)

	c := newCompleter(t)
	got := c.Complete("!frob")
	require.Equal(t, "!frobnicate ", got.Line)
}

func TestCompleteUnparseableLine(t *testing.T) {
	c := newCompleter(t)
	got := c.Complete(`speak "open`)
	require.Equal(t, `speak "open`, got.Line)
}
