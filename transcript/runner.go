// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"

	"shellkit/shell"
)

// Failure describes one command whose output did not match.
type Failure struct {
	Entry Entry
	Diff  string
}

// Result summarizes one transcript run.
type Result struct {
	Commands int
	Failures []Failure
}

func (r Result) OK() bool { return len(r.Failures) == 0 }

// Run replays a transcript against a shell, comparing each command's
// captured output to the expected block. Execution errors render into
// the actual output the way the interactive loop would print them, so
// transcripts can assert on error messages too.
func Run(ctx context.Context, sh *shell.Shell, entries []Entry) Result {
	res := Result{Commands: len(entries)}

	for _, e := range entries {
		var buf bytes.Buffer
		if err := sh.RunStatementTo(ctx, e.Command, &buf); err != nil {
			fmt.Fprintf(&buf, "error: %v\n", err)
		}
		actual := splitOutput(buf.String())
		if diff := matchBlock(e.Expected, actual); diff != "" {
			res.Failures = append(res.Failures, Failure{Entry: e, Diff: diff})
		}
		if sh.Exited() {
			break
		}
	}
	return res
}

// Report writes a human-readable summary and returns true on success.
func (r Result) Report(w io.Writer, name string) bool {
	if r.OK() {
		fmt.Fprintf(w, "%s: %d commands, all passed\n", name, r.Commands)
		return true
	}
	for _, f := range r.Failures {
		fmt.Fprintf(w, "%s:%d: output mismatch for %q\n%s\n", name, f.Entry.Line, f.Entry.Command, f.Diff)
	}
	fmt.Fprintf(w, "%s: %d commands, %d failed\n", name, r.Commands, len(r.Failures))
	return false
}

func splitOutput(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return lines
}

// matchBlock compares expected lines (with /regex/ support) against
// actual lines and returns a diff when they disagree.
func matchBlock(expected, actual []string) string {
	if len(expected) == len(actual) {
		ok := true
		for i, exp := range expected {
			if !matchLine(exp, actual[i]) {
				ok = false
				break
			}
		}
		if ok {
			return ""
		}
	}
	return cmp.Diff(expected, actual)
}

func matchLine(expected, actual string) bool {
	if isRegexLine(expected) {
		re, err := regexp.Compile("^" + expected[1:len(expected)-1] + "$")
		if err != nil {
			return false
		}
		return re.MatchString(actual)
	}
	return expected == actual
}
