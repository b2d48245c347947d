// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"fmt"
	"sort"
	"strings"
)

// Aliases maps a first word to its replacement text. Expansion is a
// single level: the replacement is spliced into the statement and the
// result is never expanded again, so recursive aliases cannot loop.
type Aliases struct {
	m map[string]string
}

func NewAliases() *Aliases {
	return &Aliases{m: map[string]string{}}
}

// Set defines or replaces an alias.
func (a *Aliases) Set(name, expansion string) error {
	if name == "" {
		return fmt.Errorf("alias name must not be empty")
	}
	if strings.ContainsAny(name, " \t") {
		return fmt.Errorf("alias name must be a single word: %q", name)
	}
	if strings.TrimSpace(expansion) == "" {
		return fmt.Errorf("alias %q: expansion must not be empty", name)
	}
	a.m[name] = expansion
	return nil
}

// Unset removes an alias, reporting whether it existed.
func (a *Aliases) Unset(name string) bool {
	_, ok := a.m[name]
	delete(a.m, name)
	return ok
}

// Get returns the expansion for a name.
func (a *Aliases) Get(name string) (string, bool) {
	v, ok := a.m[name]
	return v, ok
}

// Names returns all alias names sorted.
func (a *Aliases) Names() []string {
	names := make([]string, 0, len(a.m))
	for n := range a.m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the alias table, for persistence.
func (a *Aliases) Map() map[string]string {
	out := make(map[string]string, len(a.m))
	for k, v := range a.m {
		out[k] = v
	}
	return out
}

// Replace swaps in a whole table, for loading persisted state.
func (a *Aliases) Replace(m map[string]string) {
	a.m = map[string]string{}
	for k, v := range m {
		a.m[k] = v
	}
}

func (a *Aliases) Len() int { return len(a.m) }
