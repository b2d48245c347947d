// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"fmt"
	"sort"
	"strings"
)

var ErrEmptyCommand = fmt.Errorf("empty command")

func errUnknownCommand(input string) error {
	return fmt.Errorf("unknown command: %s", input)
}

func errAmbiguousCommand(input string, cands []string) error {
	return fmt.Errorf("ambiguous command %q: could be %s", input, strings.Join(cands, ", "))
}

// Registry maps command names (possibly multi-word) to commands.
type Registry struct {
	cmds map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: map[string]Command{}}
}

// Register adds a command; a later registration with the same name wins.
func (r *Registry) Register(cmd Command) {
	r.cmds[cmd.Name()] = cmd
}

// Get returns a command by exact name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns every registered command sorted by name.
func (r *Registry) All() []Command {
	names := r.Names()
	cmds := make([]Command, 0, len(names))
	for _, n := range names {
		cmds = append(cmds, r.cmds[n])
	}
	return cmds
}

// Names returns all command names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Suggest returns all command names that start with the given prefix.
func (r *Registry) Suggest(prefix string) []string {
	var out []string
	for name := range r.cmds {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Resolve finds the command named by the leading tokens. The longest
// exact multi-word match wins; failing that, a unique name prefix of the
// first word resolves, and an ambiguous prefix errors with candidates.
// Returns the command and how many tokens its name consumed.
func (r *Registry) Resolve(toks []Token) (Command, int, error) {
	if len(toks) == 0 {
		return nil, 0, ErrEmptyCommand
	}

	for i := len(toks); i > 0; i-- {
		parts := make([]string, i)
		for j := 0; j < i; j++ {
			parts[j] = toks[j].Text
		}
		if cmd, ok := r.cmds[strings.Join(parts, " ")]; ok {
			return cmd, i, nil
		}
	}

	// Unique-prefix fallback on the first word, single-word names only.
	first := toks[0].Text
	var cands []string
	for name := range r.cmds {
		if !strings.Contains(name, " ") && strings.HasPrefix(name, first) {
			cands = append(cands, name)
		}
	}
	sort.Strings(cands)
	switch len(cands) {
	case 0:
		return nil, 0, errUnknownCommand(first)
	case 1:
		return r.cmds[cands[0]], 1, nil
	default:
		return nil, 0, errAmbiguousCommand(first, cands)
	}
}
