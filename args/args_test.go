// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package args

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, argv ...string) *Args {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "")
	fs.IntP("count", "n", 0, "")
	fs.StringP("name", "", "", "")
	require.NoError(t, fs.Parse(argv))
	return &Args{Flags: fs, Positionals: fs.Args()}
}

func TestArgsFlagAccess(t *testing.T) {
	a := parseArgs(t, "-v", "-n", "3", "--name", "widget", "alpha", "beta")

	require.True(t, a.Bool("verbose"))
	require.Equal(t, 3, a.Int("count"))
	require.Equal(t, "widget", a.Get("name"))

	require.True(t, a.Has("verbose"))
	require.False(t, a.Has("missing"))

	require.Equal(t, []string{"alpha", "beta"}, a.Positionals)
	require.Equal(t, "alpha", a.At(0))
	require.Equal(t, "beta", a.At(1))
	require.Equal(t, "", a.At(2))
	require.Equal(t, "", a.At(-1))
}

func TestArgsDefaults(t *testing.T) {
	a := parseArgs(t)

	require.False(t, a.Bool("verbose"))
	require.Equal(t, 0, a.Int("count"))
	require.Equal(t, "", a.Get("name"))
	require.False(t, a.Has("verbose"))
}

func TestArgsNilFlagSet(t *testing.T) {
	a := &Args{Raw: "anything goes here"}

	require.Equal(t, "", a.Get("name"))
	require.False(t, a.Has("name"))
	require.False(t, a.Bool("name"))
	require.Equal(t, 0, a.Int("name"))
	require.Equal(t, "anything goes here", a.Raw)
}
