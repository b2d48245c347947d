// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package transcript implements session transcripts: recorded
// command/output logs that replay as regression tests.
//
// The format is line-oriented. A line beginning with the shell prompt
// holds a command; every following line up to the next prompt line (or
// EOF) is that command's expected output. An expected line that both
// starts and ends with a slash is a regular expression, matched fully
// anchored against the corresponding actual line. All other lines must
// match exactly after trailing-whitespace normalization.
package transcript

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Entry is one command with its expected output block.
type Entry struct {
	Command  string
	Expected []string
	Line     int // line number of the command in the transcript
}

// Parse reads a transcript. Lines before the first prompt are ignored
// so transcripts can carry free-form headers.
func Parse(r io.Reader, prompt string) ([]Entry, error) {
	if prompt == "" {
		return nil, errors.New("transcript prompt must not be empty")
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries []Entry
		cur     *Entry
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, prompt) {
			if cur != nil {
				entries = append(entries, trimEntry(*cur))
			}
			cur = &Entry{Command: strings.TrimSpace(strings.TrimPrefix(line, prompt)), Line: lineNo}
			continue
		}
		if cur != nil {
			cur.Expected = append(cur.Expected, strings.TrimRight(line, " \t"))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read transcript")
	}
	if cur != nil {
		entries = append(entries, trimEntry(*cur))
	}
	if len(entries) == 0 {
		return nil, errors.New("transcript contains no commands")
	}
	return entries, nil
}

// trimEntry drops trailing blank expected lines; they separate commands
// visually and carry no assertion.
func trimEntry(e Entry) Entry {
	for len(e.Expected) > 0 && e.Expected[len(e.Expected)-1] == "" {
		e.Expected = e.Expected[:len(e.Expected)-1]
	}
	return e
}

// isRegexLine reports whether an expected line is a /regex/ assertion.
func isRegexLine(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/")
}
