// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"shellkit/args"
	"shellkit/shell"
)

// Load runs a script file of shell statements.
type Load struct{ shell.Meta }

func (Load) Name() string     { return "load" }
func (Load) Synopsis() string { return "Run a script file of shell statements" }
func (Load) Usage() string    { return "load <file>" }
func (Load) MinArgs() int     { return 1 }
func (Load) MaxArgs() int     { return 1 }
func (Load) PathArgs() bool   { return true }

func (Load) Execute(ctx *shell.Context, a *args.Args) error {
	return ctx.Shell.Scripts().Load(ctx.Ctx, a.Positionals[0])
}

// RelativeLoad runs a script resolved against the directory of the
// script currently executing. Scripts use it to include their neighbors
// regardless of the shell's working directory.
type RelativeLoad struct{ shell.Meta }

func (RelativeLoad) Name() string     { return "_relative_load" }
func (RelativeLoad) Synopsis() string { return "Run a script relative to the current script" }
func (RelativeLoad) Usage() string    { return "_relative_load <file>" }
func (RelativeLoad) MinArgs() int     { return 1 }
func (RelativeLoad) MaxArgs() int     { return 1 }
func (RelativeLoad) PathArgs() bool   { return true }

func (RelativeLoad) Execute(ctx *shell.Context, a *args.Args) error {
	return ctx.Shell.Scripts().LoadRelative(ctx.Ctx, a.Positionals[0])
}
