// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"shellkit/args"
	"shellkit/interp"
	"shellkit/shell"
)

// Py enters the embedded expression interpreter, or evaluates a single
// expression when one is given on the line. Interpreter variables
// persist for the shell's lifetime, and shell("…") runs a shell
// statement from inside a session.
type Py struct{ shell.Meta }

func (Py) Name() string     { return "py" }
func (Py) Synopsis() string { return "Evaluate an expression, or enter an interpreter session" }
func (Py) Usage() string    { return "py [expression]" }
func (Py) Raw() bool        { return true }

func (Py) Execute(ctx *shell.Context, a *args.Args) error {
	env := ctx.Shell.Interp()

	if a.Raw != "" {
		v, err := env.Run(a.Raw)
		if err != nil {
			return err
		}
		if v != nil {
			ctx.Printf("%s\n", interp.Format(v))
		}
		return nil
	}

	ctx.Shell.EnterInterp()
	ctx.Feedback("entering interpreter session, exit() to return\n")
	return nil
}
