// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shellkit/args"
	"shellkit/shell"
)

const prompt = "(shellkit) "

type speakCmd struct {
	shell.Meta
}

func (c *speakCmd) Execute(ctx *shell.Context, a *args.Args) error {
	ctx.Println(strings.Join(a.Positionals, " "))
	return nil
}

func newShell() *shell.Shell {
	sh := shell.New(shell.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))
	sh.Register(&speakCmd{shell.Meta{CmdName: "speak", Min: 0, Max: -1}})
	return sh
}

func TestParse(t *testing.T) {
	in := `Shell regression transcript.
Header lines before the first prompt are ignored.

(shellkit) speak hello
hello

(shellkit) speak one two
one two
`
	entries, err := Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "speak hello", entries[0].Command)
	require.Equal(t, []string{"hello"}, entries[0].Expected)
	require.Equal(t, 4, entries[0].Line)

	require.Equal(t, "speak one two", entries[1].Command)
	require.Equal(t, []string{"one two"}, entries[1].Expected)
}

func TestParseNoCommands(t *testing.T) {
	_, err := Parse(strings.NewReader("just prose, no prompts\n"), prompt)
	require.Error(t, err)

	_, err = Parse(strings.NewReader("(shellkit) speak hi\n"), "")
	require.Error(t, err)
}

func TestParseCommandWithNoOutput(t *testing.T) {
	in := "(shellkit) speak\n(shellkit) speak hi\nhi\n"
	entries, err := Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Empty(t, entries[0].Expected)
}

func TestRunPassing(t *testing.T) {
	in := "(shellkit) speak hello\nhello\n(shellkit) speak bye\nbye\n"
	entries, err := Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)

	res := Run(context.Background(), newShell(), entries)
	require.True(t, res.OK())
	require.Equal(t, 2, res.Commands)
}

func TestRunFailing(t *testing.T) {
	in := "(shellkit) speak hello\ngoodbye\n"
	entries, err := Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)

	res := Run(context.Background(), newShell(), entries)
	require.False(t, res.OK())
	require.Len(t, res.Failures, 1)
	require.Equal(t, "speak hello", res.Failures[0].Entry.Command)
	require.NotEmpty(t, res.Failures[0].Diff)

	var report bytes.Buffer
	require.False(t, res.Report(&report, "fail.txt"))
	require.Contains(t, report.String(), "fail.txt:1")
	require.Contains(t, report.String(), "1 failed")
}

func TestRunRegexLines(t *testing.T) {
	// A /re/ line matches fully anchored; a partial match is not enough.
	in := "(shellkit) speak abc123\n/[a-z]+\\d+/\n"
	entries, err := Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)
	res := Run(context.Background(), newShell(), entries)
	require.True(t, res.OK())

	in = "(shellkit) speak abc123 tail\n/[a-z]+\\d+/\n"
	entries, err = Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)
	res = Run(context.Background(), newShell(), entries)
	require.False(t, res.OK(), "anchoring must reject the trailing text")
}

func TestRunAssertsErrorOutput(t *testing.T) {
	in := "(shellkit) nosuch\nerror: unknown command: nosuch\n"
	entries, err := Parse(strings.NewReader(in), prompt)
	require.NoError(t, err)

	res := Run(context.Background(), newShell(), entries)
	require.True(t, res.OK(), "error text is part of the comparable output")
}

func TestWriteProducesReplayableTranscript(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, Write(ctx, newShell(), []string{"speak hello", "speak two words"}, &buf))

	// What Write produces, Parse+Run must accept against a fresh shell.
	entries, err := Parse(&buf, prompt)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	res := Run(ctx, newShell(), entries)
	require.True(t, res.OK())
}
