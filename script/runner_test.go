// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// recordingRunner collects executed statements; nested `load`/`rload`
// statements recurse into the runner like the shell's load commands do.
func recordingRunner(t *testing.T) (*Runner, *[]string) {
	t.Helper()
	var lines []string
	r := &Runner{}
	r.Exec = func(ctx context.Context, line string) error {
		if rest, ok := strings.CutPrefix(line, "load "); ok {
			return r.Load(ctx, strings.TrimSpace(rest))
		}
		if rest, ok := strings.CutPrefix(line, "rload "); ok {
			return r.LoadRelative(ctx, strings.TrimSpace(rest))
		}
		lines = append(lines, line)
		return nil
	}
	return r, &lines
}

func TestLoadRunsStatementsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "basic.txt", "one\ntwo\n\nthree\n")

	r, lines := recordingRunner(t)
	require.NoError(t, r.Load(context.Background(), path))
	require.Equal(t, []string{"one", "two", "three"}, *lines)
}

func TestLoadMissingFile(t *testing.T) {
	r, _ := recordingRunner(t)
	err := r.Load(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot load script")
}

func TestNestedLoad(t *testing.T) {
	dir := t.TempDir()
	inner := writeScript(t, dir, "inner.txt", "inner-1\ninner-2\n")
	outer := writeScript(t, dir, "outer.txt", "outer-1\nload "+inner+"\nouter-2\n")

	r, lines := recordingRunner(t)
	require.NoError(t, r.Load(context.Background(), outer))
	require.Equal(t, []string{"outer-1", "inner-1", "inner-2", "outer-2"}, *lines)
}

func TestRecursiveLoadRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "self.txt")
	writeScript(t, dir, "self.txt", "load "+path+"\n")

	r, _ := recordingRunner(t)
	err := r.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "recursive load")
}

func TestMutuallyRecursiveLoadRejected(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.txt")
	bPath := filepath.Join(dir, "b.txt")
	writeScript(t, dir, "a.txt", "load "+bPath+"\n")
	writeScript(t, dir, "b.txt", "load "+aPath+"\n")

	r, _ := recordingRunner(t)
	err := r.Load(context.Background(), aPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "recursive load")
}

func TestSequentialReloadAllowed(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "again.txt", "hello\n")

	r, lines := recordingRunner(t)
	ctx := context.Background()

	// The load tree resets between top-level runs, so loading the same
	// script twice in a row is fine.
	require.NoError(t, r.Load(ctx, path))
	require.NoError(t, r.Load(ctx, path))
	require.Equal(t, []string{"hello", "hello"}, *lines)
}

func TestLoadRelative(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	writeScript(t, sub, "child.txt", "from-child\n")
	outer := writeScript(t, dir, "outer.txt", "rload sub/child.txt\nafter\n")

	r, lines := recordingRunner(t)
	require.NoError(t, r.Load(context.Background(), outer))
	require.Equal(t, []string{"from-child", "after"}, *lines)
}

func TestLoadRelativeAtTopLevel(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "top.txt", "top-line\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	r, lines := recordingRunner(t)
	require.NoError(t, r.LoadRelative(context.Background(), "top.txt"))
	require.Equal(t, []string{"top-line"}, *lines)
}

func TestContinuationJoinsLines(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "cont.txt", "speak \"first\nsecond\"\nplain\n")

	r, lines := recordingRunner(t)
	r.Incomplete = func(line string) bool {
		return strings.Count(line, `"`)%2 == 1
	}
	require.NoError(t, r.Load(context.Background(), path))
	require.Equal(t, []string{"speak \"first\nsecond\"", "plain"}, *lines)
}

func TestUnterminatedStatementAtEOF(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "open.txt", "speak \"never closed\n")

	r, _ := recordingRunner(t)
	r.Incomplete = func(line string) bool {
		return strings.Count(line, `"`)%2 == 1
	}
	err := r.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated statement")
}

func TestExecErrorCarriesLineNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "bad.txt", "fine\nboom\n")

	r := &Runner{}
	r.Exec = func(ctx context.Context, line string) error {
		if line == "boom" {
			return errors.New("boom failed")
		}
		return nil
	}
	err := r.Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.txt:2")
	require.Contains(t, err.Error(), "boom failed")
}

func TestEchoCallback(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, "echo.txt", "one\ntwo\n")

	var echoed []string
	r, _ := recordingRunner(t)
	r.Echo = func(line string) { echoed = append(echoed, line) }

	require.NoError(t, r.Load(context.Background(), path))
	require.Equal(t, []string{"one", "two"}, echoed)
}
