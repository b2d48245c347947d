// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package args

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Args holds the parsed input of a single command invocation: the flag set
// after parsing, the remaining positional arguments, and, for raw
// commands, the unparsed remainder of the line.
type Args struct {
	Flags       *pflag.FlagSet
	Positionals []string
	Raw         string
}

// Get returns the string value of a flag or empty string if not present.
func (a *Args) Get(name string) string {
	if a.Flags == nil {
		return ""
	}
	f := a.Flags.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// Has returns true if a flag was set on the command line.
func (a *Args) Has(name string) bool {
	if a.Flags == nil {
		return false
	}
	return a.Flags.Changed(name)
}

// Bool returns the boolean value of a flag, false when absent or not boolean.
func (a *Args) Bool(name string) bool {
	v, err := strconv.ParseBool(a.Get(name))
	return err == nil && v
}

// Int returns the integer value of a flag, 0 when absent or malformed.
func (a *Args) Int(name string) int {
	v, err := strconv.Atoi(a.Get(name))
	if err != nil {
		return 0
	}
	return v
}

// At returns the positional at index i or empty string when out of range.
func (a *Args) At(i int) string {
	if i < 0 || i >= len(a.Positionals) {
		return ""
	}
	return a.Positionals[i]
}

// String provides a debug-friendly representation.
func (a Args) String() string {
	return fmt.Sprintf("Args{Positionals=%v, Raw=%q}", a.Positionals, a.Raw)
}
