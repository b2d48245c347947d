// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnterminated is returned when a statement ends inside an open quote.
// Script runners use it to join the next line onto the current statement.
var ErrUnterminated = errors.New("unterminated quoted string")

// Token is one shell word with its location in the original line.
// Off/End index the raw line so callers can recover unparsed remainders
// (raw commands, pipe targets) with quoting intact.
type Token struct {
	Text   string
	Off    int
	End    int
	Quoted bool
}

// Statement is one parsed input line: the command words plus any trailing
// output clause. Operators inside quotes are data, not operators.
type Statement struct {
	Raw    string
	Tokens []Token

	// Output redirection: `> path` truncates, `>> path` appends.
	Output string
	Append bool

	// Pipe holds the raw text after an unquoted `|`, to be run by the
	// system shell with the command's output as its stdin.
	Pipe string
}

// Tokenize splits a line into words. Single quotes are literal, double
// quotes honor backslash escapes, an unquoted `#` starts a comment, and a
// backslash outside quotes escapes the next rune.
func Tokenize(line string) ([]Token, error) {
	var (
		toks    []Token
		cur     strings.Builder
		start   = -1
		quoted  bool
		inWord  bool
		quote   rune // active quote char, 0 outside quotes
		escaped bool
	)

	flush := func(end int) {
		if !inWord {
			return
		}
		toks = append(toks, Token{Text: cur.String(), Off: start, End: end, Quoted: quoted})
		cur.Reset()
		inWord = false
		quoted = false
		start = -1
	}

	for i, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false

		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}

		case quote == '"':
			switch r {
			case '\\':
				escaped = true
			case '"':
				quote = 0
			default:
				cur.WriteRune(r)
			}

		case r == '\'' || r == '"':
			if !inWord {
				inWord = true
				start = i
			}
			quote = r
			quoted = true

		case r == '\\':
			if !inWord {
				inWord = true
				start = i
			}
			escaped = true

		case r == ' ' || r == '\t':
			flush(i)

		case r == '#' && !inWord:
			return toks, nil

		default:
			if !inWord {
				inWord = true
				start = i
			}
			cur.WriteRune(r)
		}
	}

	if quote != 0 || escaped {
		return nil, ErrUnterminated
	}
	flush(len(line))
	return toks, nil
}

// Incomplete reports whether line ends mid-quote and needs continuation.
func Incomplete(line string) bool {
	_, err := Tokenize(line)
	return errors.Is(err, ErrUnterminated)
}

// Parse tokenizes a line and extracts trailing redirection and pipe
// clauses. Attached forms (`>file`, `>>file`, `|wc -l`) are accepted.
func Parse(line string) (*Statement, error) {
	toks, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	st := &Statement{Raw: line}

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.Quoted {
			st.Tokens = append(st.Tokens, t)
			continue
		}
		switch {
		case t.Text == "|":
			if i+1 >= len(toks) {
				return nil, errors.New("no command after |")
			}
			st.Pipe = strings.TrimSpace(line[toks[i+1].Off:])
			return st, nil

		case strings.HasPrefix(t.Text, "|"):
			st.Pipe = strings.TrimSpace(line[t.Off+1:])
			if st.Pipe == "" {
				return nil, errors.New("no command after |")
			}
			return st, nil

		case t.Text == ">" || t.Text == ">>":
			if i+1 >= len(toks) {
				return nil, fmt.Errorf("no redirection target after %s", t.Text)
			}
			st.Output = toks[i+1].Text
			st.Append = t.Text == ">>"
			i++

		case strings.HasPrefix(t.Text, ">>"):
			st.Output = t.Text[2:]
			st.Append = true

		case strings.HasPrefix(t.Text, ">"):
			st.Output = t.Text[1:]
			st.Append = false
			if st.Output == "" {
				return nil, errors.New("no redirection target after >")
			}

		default:
			st.Tokens = append(st.Tokens, t)
		}
	}
	return st, nil
}

// Words returns the token texts.
func (st *Statement) Words() []string {
	out := make([]string, len(st.Tokens))
	for i, t := range st.Tokens {
		out[i] = t.Text
	}
	return out
}
