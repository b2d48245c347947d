// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string
	Count int
}

func TestComputeIsStructural(t *testing.T) {
	h1, err := Compute(sample{Name: "a", Count: 1})
	require.NoError(t, err)
	h2, err := Compute(sample{Name: "a", Count: 1})
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	h3, err := Compute(sample{Name: "a", Count: 2})
	require.NoError(t, err)
	require.NotEqual(t, h1, h3)
}

func TestFmtWidth(t *testing.T) {
	require.Len(t, Fmt(0), 16)
	require.Equal(t, "00000000000000ff", Fmt(255))
}

func TestTrackerChanged(t *testing.T) {
	var tr Tracker

	require.True(t, tr.Changed(sample{Name: "a"}), "first observation always reports change")
	require.False(t, tr.Changed(sample{Name: "a"}))
	require.True(t, tr.Changed(sample{Name: "b"}))
	require.False(t, tr.Changed(sample{Name: "b"}))
}
