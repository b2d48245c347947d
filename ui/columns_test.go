// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistributeColumnsExactFit(t *testing.T) {
	got := DistributeColumns(22, 1, 2, []int{8, 12}, []int{1})
	require.Equal(t, []int{8, 12}, got)
}

func TestDistributeColumnsFlexAbsorbsExtra(t *testing.T) {
	got := DistributeColumns(40, 1, 2, []int{8, 12}, []int{1})
	require.Equal(t, []int{8, 30}, got)
}

func TestDistributeColumnsShrinksFlexible(t *testing.T) {
	got := DistributeColumns(16, 1, 2, []int{8, 12}, []int{1})
	require.Equal(t, []int{8, 6}, got)
}

func TestDistributeColumnsNeverBelowOne(t *testing.T) {
	got := DistributeColumns(3, 1, 2, []int{8, 12}, []int{0, 1})
	for _, w := range got {
		require.GreaterOrEqual(t, w, 1)
	}
}
