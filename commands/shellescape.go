// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"os/exec"

	"github.com/pkg/errors"

	"shellkit/args"
	"shellkit/shell"
)

// ShellEscape runs an operating-system command. The `!` shortcut
// expands to it, so `!ls -l` and `shell ls -l` are the same statement.
// Raw input: the rest of the line goes to the system shell verbatim.
type ShellEscape struct{ shell.Meta }

func (ShellEscape) Name() string     { return "shell" }
func (ShellEscape) Synopsis() string { return "Run a command in the operating-system shell" }
func (ShellEscape) Usage() string    { return "shell <command> (shortcut: !<command>)" }
func (ShellEscape) Raw() bool        { return true }

func (ShellEscape) Execute(ctx *shell.Context, a *args.Args) error {
	if a.Raw == "" {
		return errors.New("shell: no command given")
	}
	cmd := exec.CommandContext(ctx.Ctx, "/bin/sh", "-c", a.Raw)
	cmd.Stdout = ctx.Out
	cmd.Stderr = ctx.Err
	return errors.Wrapf(cmd.Run(), "shell command %q", a.Raw)
}
