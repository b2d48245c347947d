// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"strings"

	"shellkit/args"
	"shellkit/shell"
)

// Set assigns a settable shell parameter.
type Set struct{ shell.Meta }

func (Set) Name() string     { return "set" }
func (Set) Synopsis() string { return "Change a settable shell parameter" }
func (Set) Usage() string    { return "set <parameter> <value>" }
func (Set) MinArgs() int     { return 2 }
func (Set) MaxArgs() int     { return -1 }

func (Set) Execute(ctx *shell.Context, a *args.Args) error {
	name := a.Positionals[0]
	// Values may span words: `set prompt my shell:`.
	value := strings.Join(a.Positionals[1:], " ")
	if err := ctx.Shell.Settings().Set(name, value); err != nil {
		return err
	}
	cur, _ := ctx.Shell.Settings().Get(name)
	ctx.Feedback("%s - was changed to: %s\n", name, cur)
	return nil
}

// Show prints settable parameters and their current values.
type Show struct{ shell.Meta }

func (Show) Name() string     { return "show" }
func (Show) Synopsis() string { return "Show settable shell parameters" }
func (Show) Usage() string    { return "show [parameter]" }
func (Show) MinArgs() int     { return 0 }
func (Show) MaxArgs() int     { return 1 }

func (Show) Execute(ctx *shell.Context, a *args.Args) error {
	settings := ctx.Shell.Settings()

	if name := a.At(0); name != "" {
		v, err := settings.Get(name)
		if err != nil {
			return err
		}
		ctx.Printf("%s: %s\n", name, v)
		return nil
	}

	for _, name := range shell.SettingNames() {
		v, _ := settings.Get(name)
		ctx.Printf("%-20s %-16s # %s\n", name, v, settings.Help(name))
	}
	return nil
}
