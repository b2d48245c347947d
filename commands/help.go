// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"fmt"
	"strings"

	"shellkit/args"
	"shellkit/shell"
)

// Help lists the available commands or prints one command's usage.
type Help struct{ shell.Meta }

func (Help) Name() string     { return "help" }
func (Help) Synopsis() string { return "List available commands, or show help for one command" }
func (Help) Usage() string    { return "help [command]" }
func (Help) MinArgs() int     { return 0 }
func (Help) MaxArgs() int     { return 1 }

func (h Help) Execute(ctx *shell.Context, a *args.Args) error {
	reg := ctx.Shell.Registry()

	if name := a.At(0); name != "" {
		cmd, ok := reg.Get(name)
		if !ok {
			return fmt.Errorf("no help for unknown command %q", name)
		}
		ctx.Printf("%s", shell.UsageText(cmd))
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nAvailable commands:\n\n")
	for _, c := range reg.All() {
		fmt.Fprintf(&b, "  %-16s %s\n", c.Name(), c.Synopsis())
	}
	if names := ctx.Shell.Aliases().Names(); len(names) > 0 {
		fmt.Fprintf(&b, "\nAliases: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "\n")
	ctx.Printf("%s", b.String())
	return nil
}
