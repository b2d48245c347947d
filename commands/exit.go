// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"fmt"
	"strconv"

	"shellkit/args"
	"shellkit/shell"
)

// Exit stops the shell loop. Registered under both "exit" and "quit".
type Exit struct {
	shell.Meta
	name string
}

func (e Exit) Name() string     { return e.name }
func (e Exit) Synopsis() string { return "Exit the shell" }
func (e Exit) Usage() string    { return e.name + " [code]" }
func (Exit) MinArgs() int       { return 0 }
func (Exit) MaxArgs() int       { return 1 }

func (e Exit) Execute(ctx *shell.Context, a *args.Args) error {
	code := 0
	if s := a.At(0); s != "" {
		var err error
		if code, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("exit code must be an integer, got %q", s)
		}
	}
	ctx.Shell.RequestExit(code)
	return nil
}
