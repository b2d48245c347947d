// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"shellkit/core/primitives/hash"
)

// Settings holds the user-settable shell parameters exposed through the
// `set` and `show` commands.
type Settings struct {
	Prompt             string `json:"prompt"`
	ContinuationPrompt string `json:"continuation_prompt"`
	PromptColor        string `json:"prompt_color"`
	Echo               bool   `json:"echo"`
	Timing             bool   `json:"timing"`
	Quiet              bool   `json:"quiet"`
	Editor             string `json:"editor"`
}

func DefaultSettings() *Settings {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &Settings{
		Prompt:             "(shellkit) ",
		ContinuationPrompt: "> ",
		PromptColor:        "#00d7ff",
		Editor:             editor,
	}
}

type settingDef struct {
	help string
	get  func(s *Settings) string
	set  func(s *Settings, v string) error
}

func boolSetting(dst func(s *Settings) *bool, help string) settingDef {
	return settingDef{
		help: help,
		get:  func(s *Settings) string { return strconv.FormatBool(*dst(s)) },
		set: func(s *Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*dst(s) = b
			return nil
		},
	}
}

var settingDefs = map[string]settingDef{
	"prompt": {
		help: "text shown before each command",
		get:  func(s *Settings) string { return s.Prompt },
		set:  func(s *Settings, v string) error { s.Prompt = v; return nil },
	},
	"continuation_prompt": {
		help: "text shown for continued statements",
		get:  func(s *Settings) string { return s.ContinuationPrompt },
		set:  func(s *Settings, v string) error { s.ContinuationPrompt = v; return nil },
	},
	"prompt_color": {
		help: "prompt color (hex or rgb)",
		get:  func(s *Settings) string { return s.PromptColor },
		set: func(s *Settings, v string) error {
			c, err := colors.Parse(v)
			if err != nil {
				return errors.Wrapf(err, "invalid color %q", v)
			}
			s.PromptColor = c.ToHEX().String()
			return nil
		},
	},
	"echo":   boolSetting(func(s *Settings) *bool { return &s.Echo }, "echo script commands before running them"),
	"timing": boolSetting(func(s *Settings) *bool { return &s.Timing }, "report elapsed time after each command"),
	"quiet":  boolSetting(func(s *Settings) *bool { return &s.Quiet }, "suppress non-error feedback"),
	"editor": {
		help: "program used by the edit command",
		get:  func(s *Settings) string { return s.Editor },
		set:  func(s *Settings, v string) error { s.Editor = v; return nil },
	},
}

// SettingNames returns all settable parameter names, sorted.
func SettingNames() []string {
	names := make([]string, 0, len(settingDefs))
	for n := range settingDefs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Set assigns a parameter by name, validating the value.
func (s *Settings) Set(name, value string) error {
	def, ok := settingDefs[name]
	if !ok {
		return fmt.Errorf("unknown parameter %q (settable: %v)", name, SettingNames())
	}
	return def.set(s, value)
}

// Get returns the display value of one parameter.
func (s *Settings) Get(name string) (string, error) {
	def, ok := settingDefs[name]
	if !ok {
		return "", fmt.Errorf("unknown parameter %q (settable: %v)", name, SettingNames())
	}
	return def.get(s), nil
}

// Help returns the description of one parameter, empty when unknown.
func (s *Settings) Help(name string) string {
	if def, ok := settingDefs[name]; ok {
		return def.help
	}
	return ""
}

// Hash returns a structural hash of the settings, used to gate derived
// state recomputation in the UI.
func (s *Settings) Hash() uint64 {
	h, err := hash.Compute(s)
	if err != nil {
		return 0
	}
	return h
}
