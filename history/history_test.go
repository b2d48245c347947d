// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fill(s *Store, statements ...string) {
	for _, st := range statements {
		s.Append(st)
	}
}

func TestAppendAndGet(t *testing.T) {
	s := New()
	fill(s, "one", "two", "three")

	require.Equal(t, 3, s.Len())

	e, err := s.Get(2)
	require.NoError(t, err)
	require.Equal(t, "two", e.Statement)

	_, err = s.Get(0)
	require.Error(t, err)
	_, err = s.Get(4)
	require.Error(t, err)
}

func TestAppendSkipsBlanksAndRepeats(t *testing.T) {
	s := New()
	fill(s, "one", "", "   ", "one", "one", "two", "one")

	var got []string
	for _, e := range s.All() {
		got = append(got, e.Statement)
	}
	require.Equal(t, []string{"one", "two", "one"}, got)
}

func TestLimit(t *testing.T) {
	s := New().WithLimit(3)
	fill(s, "a", "b", "c", "d", "e")

	require.Equal(t, 3, s.Len())
	e, err := s.Get(1)
	require.NoError(t, err)
	require.Equal(t, "c", e.Statement, "oldest entries drop first")
}

func TestSpan(t *testing.T) {
	s := New()
	fill(s, "a", "b", "c", "d", "e")

	tests := []struct {
		sel  string
		want []string
	}{
		{"", []string{"a", "b", "c", "d", "e"}},
		{"3", []string{"c"}},
		{"2..4", []string{"b", "c", "d"}},
		{"1..1", []string{"a"}},
	}
	for _, tc := range tests {
		entries, err := s.Span(tc.sel)
		require.NoError(t, err, "selector %q", tc.sel)
		var got []string
		for _, e := range entries {
			got = append(got, e.Statement)
		}
		require.Equal(t, tc.want, got, "selector %q", tc.sel)
	}

	for _, sel := range []string{"0", "6", "4..2", "x", "1..y"} {
		_, err := s.Span(sel)
		require.Error(t, err, "selector %q", sel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s := New()
	fill(s, "first", "second")
	require.NoError(t, s.Save(path))

	loaded := New()
	require.NoError(t, loaded.Load(path))
	require.Equal(t, 2, loaded.Len())
	e, err := loaded.Get(1)
	require.NoError(t, err)
	require.Equal(t, "first", e.Statement)
}

func TestLoadMissingFile(t *testing.T) {
	s := New()
	require.NoError(t, s.Load(filepath.Join(t.TempDir(), "absent.json")))
	require.Zero(t, s.Len())
}

func TestSaveStatements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.txt")

	s := New()
	fill(s, "speak hi", "speak bye")
	require.NoError(t, s.SaveStatements(path, s.All()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "speak hi\nspeak bye\n", string(data))
}

func TestClear(t *testing.T) {
	s := New()
	fill(s, "a", "b")
	s.Clear()
	require.Zero(t, s.Len())
}
