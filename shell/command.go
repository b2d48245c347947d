// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"shellkit/args"
)

// Command is one shell command. The dispatcher builds the flag set,
// parses the argument vector and enforces help/usage and arity before
// Execute runs; Execute only ever sees valid input.
type Command interface {
	Name() string
	Synopsis() string
	Usage() string

	// Flags declares the command's flags. `-h/--help` is added by the
	// dispatcher and must not be declared here.
	Flags(fs *pflag.FlagSet)

	// MinArgs/MaxArgs bound the positional count. MaxArgs -1 means
	// unbounded.
	MinArgs() int
	MaxArgs() int

	// Raw commands skip flag and operator parsing entirely and receive
	// the unparsed remainder of the line.
	Raw() bool

	// PathArgs marks commands whose positionals are file-system paths,
	// which drives tab completion.
	PathArgs() bool

	Execute(ctx *Context, a *args.Args) error
}

// Meta supplies Command boilerplate; concrete commands embed it and
// override what they need (typically Flags and Execute).
type Meta struct {
	CmdName  string
	Desc     string
	CmdUsage string
	Min      int
	Max      int
	RawLine  bool
	Paths    bool
}

func (m Meta) Name() string            { return m.CmdName }
func (m Meta) Synopsis() string        { return m.Desc }
func (m Meta) Flags(fs *pflag.FlagSet) {}
func (m Meta) MinArgs() int            { return m.Min }
func (m Meta) MaxArgs() int            { return m.Max }
func (m Meta) Raw() bool               { return m.RawLine }
func (m Meta) PathArgs() bool          { return m.Paths }

func (m Meta) Usage() string {
	if m.CmdUsage != "" {
		return m.CmdUsage
	}
	return m.CmdName
}

// Context is handed to every executing command. Out is already wrapped
// by any redirection clause on the statement; Err never is.
type Context struct {
	Ctx   context.Context
	Shell *Shell
	Out   io.Writer
	Err   io.Writer
}

func (c *Context) Printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}

func (c *Context) Println(a ...any) {
	fmt.Fprintln(c.Out, a...)
}

// Feedback prints informational output unless the quiet setting is on.
func (c *Context) Feedback(format string, a ...any) {
	if c.Shell != nil && c.Shell.Settings().Quiet {
		return
	}
	fmt.Fprintf(c.Out, format, a...)
}

// UsageText renders the generated help for a command: synopsis line,
// description, then the flag table.
func UsageText(cmd Command) string {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	cmd.Flags(fs)
	fs.BoolP("help", "h", false, "show this help message")

	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s\n", cmd.Usage())
	if cmd.Synopsis() != "" {
		fmt.Fprintf(&b, "\n%s\n", cmd.Synopsis())
	}
	fmt.Fprintf(&b, "\nflags:\n%s", fs.FlagUsages())
	return b.String()
}
