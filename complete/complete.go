// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package complete produces tab-completion candidates for partially
// typed shell input: command names, flag names, file-system paths and
// executables on $PATH.
package complete

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"shellkit/shell"
)

// Completion is the outcome of one tab press.
type Completion struct {
	// Line is the input with the completion applied. Equal to the
	// original when nothing could be completed.
	Line string
	// Candidates lists the alternatives when the completion is
	// ambiguous; empty on a unique or failed completion.
	Candidates []string
}

// Completer derives candidates from a shell's registry and settings.
type Completer struct {
	sh *shell.Shell
}

func New(sh *shell.Shell) *Completer {
	return &Completer{sh: sh}
}

// Complete completes the final word of line.
func (c *Completer) Complete(line string) Completion {
	// Shell escapes complete against $PATH.
	if strings.HasPrefix(line, "!") {
		rest := strings.TrimPrefix(line, "!")
		if !strings.Contains(strings.TrimSpace(rest), " ") {
			return c.executables(line, strings.TrimSpace(rest))
		}
		return c.paths(line, lastWord(line))
	}

	toks, err := shell.Tokenize(line)
	if err != nil {
		return Completion{Line: line}
	}

	endsOpen := len(line) > 0 && !strings.HasSuffix(line, " ")

	// Still typing the first word: complete command names.
	if len(toks) == 0 || (len(toks) == 1 && endsOpen) {
		prefix := ""
		if len(toks) == 1 {
			prefix = toks[0].Text
		}
		cands := c.sh.Registry().Suggest(prefix)
		cands = append(cands, c.aliasMatches(prefix)...)
		sort.Strings(cands)
		return apply(line, prefix, cands, " ")
	}

	cmd, _, err := c.sh.Registry().Resolve(toks)
	if err != nil {
		return Completion{Line: line}
	}

	word := ""
	if endsOpen {
		word = toks[len(toks)-1].Text
	}

	// Redirection targets are paths regardless of the command.
	if target, ok := redirectTarget(toks, endsOpen); ok {
		return c.paths(line, target)
	}

	// Flag completion for words starting with a dash.
	if strings.HasPrefix(word, "-") {
		return apply(line, word, flagNames(cmd, word), " ")
	}

	if cmd.PathArgs() {
		return c.paths(line, word)
	}
	return Completion{Line: line}
}

// redirectTarget reports whether the word being completed is the target
// of a `>` or `>>` clause, and returns that partial target.
func redirectTarget(toks []shell.Token, endsOpen bool) (string, bool) {
	if len(toks) == 0 {
		return "", false
	}
	last := toks[len(toks)-1]
	if last.Quoted {
		return "", false
	}
	if !endsOpen {
		// `cmd > ` with the cursor after the operator.
		return "", last.Text == ">" || last.Text == ">>"
	}
	if t := strings.TrimLeft(last.Text, ">"); t != last.Text {
		// Attached form: `>out` or `>>out`.
		return t, true
	}
	if len(toks) >= 2 {
		prev := toks[len(toks)-2]
		if !prev.Quoted && (prev.Text == ">" || prev.Text == ">>") {
			return last.Text, true
		}
	}
	return "", false
}

func (c *Completer) aliasMatches(prefix string) []string {
	var out []string
	for _, name := range c.sh.Aliases().Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

func flagNames(cmd shell.Command, prefix string) []string {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.Flags(fs)
	fs.BoolP("help", "h", false, "")

	var out []string
	fs.VisitAll(func(f *pflag.Flag) {
		long := "--" + f.Name
		if strings.HasPrefix(long, prefix) {
			out = append(out, long)
		}
	})
	sort.Strings(out)
	return out
}

// paths completes a file-system path word. Directories complete with a
// trailing separator and keep the completion open.
func (c *Completer) paths(line, word string) Completion {
	dir, base := filepath.Split(word)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return Completion{Line: line}
	}

	var cands []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if base == "" && strings.HasPrefix(name, ".") {
			continue
		}
		cand := dir + name
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		cands = append(cands, cand)
	}
	sort.Strings(cands)

	comp := apply(line, word, cands, " ")
	// A directory completion stays open for further typing.
	if len(cands) == 1 && strings.HasSuffix(cands[0], string(filepath.Separator)) {
		comp.Line = strings.TrimSuffix(comp.Line, " ")
	}
	return comp
}

// executables completes a word against every executable on $PATH.
func (c *Completer) executables(line, word string) Completion {
	seen := map[string]bool{}
	var cands []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasPrefix(name, word) || seen[name] {
				continue
			}
			info, err := e.Info()
			if err != nil || info.IsDir() || info.Mode()&0o111 == 0 {
				continue
			}
			seen[name] = true
			cands = append(cands, name)
		}
	}
	sort.Strings(cands)
	return apply(line, word, cands, " ")
}

// apply fills in the completion: unique candidates complete fully plus
// suffix, multiple candidates extend to their longest common prefix.
func apply(line, word string, cands []string, suffix string) Completion {
	switch len(cands) {
	case 0:
		return Completion{Line: line}
	case 1:
		return Completion{Line: line[:len(line)-len(word)] + cands[0] + suffix}
	default:
		lcp := commonPrefix(cands)
		if len(lcp) > len(word) {
			return Completion{Line: line[:len(line)-len(word)] + lcp, Candidates: cands}
		}
		return Completion{Line: line, Candidates: cands}
	}
}

func commonPrefix(ss []string) string {
	prefix := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

func lastWord(line string) string {
	if i := strings.LastIndexAny(line, " \t"); i >= 0 {
		return line[i+1:]
	}
	return line
}
