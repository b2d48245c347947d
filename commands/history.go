// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"shellkit/args"
	"shellkit/shell"
	"shellkit/transcript"
)

// History lists, re-runs, edits, saves and clears the command history.
type History struct{ shell.Meta }

func (History) Name() string     { return "history" }
func (History) Synopsis() string { return "Show, run or manage the command history" }
func (History) Usage() string    { return "history [span] [-r N | -e N | -c | -s FILE | -t FILE]" }
func (History) MinArgs() int     { return 0 }
func (History) MaxArgs() int     { return 1 }

func (History) Flags(fs *pflag.FlagSet) {
	fs.IntP("run", "r", 0, "re-run history entry N")
	fs.IntP("edit", "e", 0, "edit history entry N, then run the result")
	fs.BoolP("clear", "c", false, "clear the history")
	fs.StringP("save", "s", "", "save selected statements to FILE")
	fs.StringP("transcript", "t", "", "write selected commands and their output as a transcript to FILE")
}

func (h History) Execute(ctx *shell.Context, a *args.Args) error {
	hist := ctx.Shell.History()

	switch {
	case a.Bool("clear"):
		hist.Clear()
		ctx.Feedback("history cleared\n")
		return nil

	case a.Has("run"):
		entry, err := hist.Get(a.Int("run"))
		if err != nil {
			return err
		}
		ctx.Feedback("%s%s\n", ctx.Shell.Settings().Prompt, entry.Statement)
		return ctx.Shell.RunStatement(ctx.Ctx, entry.Statement)

	case a.Has("edit"):
		entry, err := hist.Get(a.Int("edit"))
		if err != nil {
			return err
		}
		edited, err := editText(ctx, entry.Statement)
		if err != nil {
			return err
		}
		return runLines(ctx, edited)

	case a.Has("save"):
		entries, err := hist.Span(a.At(0))
		if err != nil {
			return err
		}
		if err := hist.SaveStatements(a.Get("save"), entries); err != nil {
			return err
		}
		ctx.Feedback("saved %d statement(s) to %s\n", len(entries), a.Get("save"))
		return nil

	case a.Has("transcript"):
		entries, err := hist.Span(a.At(0))
		if err != nil {
			return err
		}
		f, err := os.Create(a.Get("transcript"))
		if err != nil {
			return errors.Wrap(err, "create transcript")
		}
		defer f.Close()
		statements := make([]string, len(entries))
		for i, e := range entries {
			statements[i] = e.Statement
		}
		if err := transcript.Write(ctx.Ctx, ctx.Shell, statements, f); err != nil {
			return err
		}
		ctx.Feedback("wrote transcript of %d command(s) to %s\n", len(entries), a.Get("transcript"))
		return nil
	}

	entries, err := hist.Span(a.At(0))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Feedback("history is empty\n")
		return nil
	}

	// Numbering follows the span's position in the full history.
	offset := 1
	if a.At(0) != "" {
		all := hist.All()
		for i, e := range all {
			if e == entries[0] {
				offset = i + 1
				break
			}
		}
	}
	for i, e := range entries {
		ctx.Printf("%5d  %s\n", offset+i, e.Statement)
	}
	return nil
}

func runLines(ctx *shell.Context, text string) error {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ctx.Feedback("%s%s\n", ctx.Shell.Settings().Prompt, line)
		if err := ctx.Shell.RunStatement(ctx.Ctx, line); err != nil {
			return err
		}
	}
	return nil
}
