// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsSetGet(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Set("prompt", "-> "))
	require.Equal(t, "-> ", s.Prompt)

	v, err := s.Get("prompt")
	require.NoError(t, err)
	require.Equal(t, "-> ", v)

	require.NoError(t, s.Set("timing", "true"))
	require.True(t, s.Timing)
	require.NoError(t, s.Set("timing", "false"))
	require.False(t, s.Timing)
}

func TestSettingsBoolValidation(t *testing.T) {
	s := DefaultSettings()

	err := s.Set("echo", "maybe")
	require.Error(t, err)
	require.Contains(t, err.Error(), "true or false")
	require.False(t, s.Echo)
}

func TestSettingsUnknownParameter(t *testing.T) {
	s := DefaultSettings()

	err := s.Set("nonsense", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nonsense")
	// The error lists what is settable.
	require.Contains(t, err.Error(), "prompt")

	_, err = s.Get("nonsense")
	require.Error(t, err)
}

func TestSettingsPromptColor(t *testing.T) {
	s := DefaultSettings()

	// Any parsable color normalizes to hex.
	require.NoError(t, s.Set("prompt_color", "rgb(255,0,0)"))
	require.Equal(t, "#ff0000", s.PromptColor)

	require.NoError(t, s.Set("prompt_color", "#00ff00"))
	require.Equal(t, "#00ff00", s.PromptColor)

	err := s.Set("prompt_color", "not-a-color")
	require.Error(t, err)
	require.Equal(t, "#00ff00", s.PromptColor, "failed set must not clobber the value")
}

func TestSettingNames(t *testing.T) {
	names := SettingNames()
	require.Contains(t, names, "prompt")
	require.Contains(t, names, "echo")
	require.Contains(t, names, "timing")
	require.Contains(t, names, "quiet")
	require.Contains(t, names, "editor")
	require.IsNonDecreasing(t, names, "names must be sorted")
}

func TestSettingsHash(t *testing.T) {
	s := DefaultSettings()
	h1 := s.Hash()
	require.NotZero(t, h1)

	require.NoError(t, s.Set("prompt", "other "))
	require.NotEqual(t, h1, s.Hash())
}
