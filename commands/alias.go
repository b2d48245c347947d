// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"fmt"
	"strings"

	"shellkit/args"
	"shellkit/shell"
)

// Alias defines shorthand first words: `alias name = expansion`. With no
// argument it lists the current table. Raw input keeps the expansion's
// quoting intact.
type Alias struct{ shell.Meta }

func (Alias) Name() string     { return "alias" }
func (Alias) Synopsis() string { return "Define or list command aliases" }
func (Alias) Usage() string    { return "alias [name = expansion]" }
func (Alias) Raw() bool        { return true }

func (Alias) Execute(ctx *shell.Context, a *args.Args) error {
	rest := strings.TrimSpace(a.Raw)
	aliases := ctx.Shell.Aliases()

	if rest == "" {
		if aliases.Len() == 0 {
			ctx.Feedback("no aliases defined\n")
			return nil
		}
		for _, name := range aliases.Names() {
			exp, _ := aliases.Get(name)
			ctx.Printf("alias %s = %s\n", name, exp)
		}
		return nil
	}

	eq := strings.Index(rest, "=")
	if eq < 0 {
		// `alias name` shows a single entry.
		if exp, ok := aliases.Get(rest); ok {
			ctx.Printf("alias %s = %s\n", rest, exp)
			return nil
		}
		return fmt.Errorf("no alias named %q (define with: alias name = expansion)", rest)
	}

	name := strings.TrimSpace(rest[:eq])
	expansion := strings.TrimSpace(rest[eq+1:])
	if err := aliases.Set(name, expansion); err != nil {
		return err
	}
	ctx.Feedback("alias %s = %s\n", name, expansion)
	return nil
}

// Unalias removes aliases.
type Unalias struct{ shell.Meta }

func (Unalias) Name() string     { return "unalias" }
func (Unalias) Synopsis() string { return "Remove command aliases" }
func (Unalias) Usage() string    { return "unalias name..." }
func (Unalias) MinArgs() int     { return 1 }
func (Unalias) MaxArgs() int     { return -1 }

func (Unalias) Execute(ctx *shell.Context, a *args.Args) error {
	for _, name := range a.Positionals {
		if !ctx.Shell.Aliases().Unset(name) {
			return fmt.Errorf("no alias named %q", name)
		}
	}
	return nil
}
