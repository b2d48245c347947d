// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, line string) []string {
	t.Helper()
	toks, err := Tokenize(line)
	require.NoError(t, err)
	var out []string
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain words", "speak hello world", []string{"speak", "hello", "world"}},
		{"extra whitespace", "  speak   hello\tworld  ", []string{"speak", "hello", "world"}},
		{"double quotes keep spaces", `speak "hello world"`, []string{"speak", "hello world"}},
		{"single quotes are literal", `speak 'it "is" fine'`, []string{"speak", `it "is" fine`}},
		{"escape in double quotes", `speak "a \"b\" c"`, []string{"speak", `a "b" c`}},
		{"backslash outside quotes", `speak hello\ world`, []string{"speak", "hello world"}},
		{"comment line", "# a comment", nil},
		{"trailing comment", "speak hi # trailing", []string{"speak", "hi"}},
		{"hash inside word is data", "speak a#b", []string{"speak", "a#b"}},
		{"hash inside quotes is data", `speak "#nope"`, []string{"speak", "#nope"}},
		{"empty line", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := words(t, tc.line)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	line := `speak "hello there" friend`
	toks, err := Tokenize(line)
	require.NoError(t, err)
	require.Len(t, toks, 3)

	// Offsets index the raw line, quotes included, so callers can
	// recover verbatim remainders.
	require.Equal(t, "speak", line[toks[0].Off:toks[0].End])
	require.Equal(t, `"hello there"`, line[toks[1].Off:toks[1].End])
	require.Equal(t, "friend", line[toks[2].Off:toks[2].End])
	require.True(t, toks[1].Quoted)
	require.False(t, toks[2].Quoted)
}

func TestTokenizeUnterminated(t *testing.T) {
	for _, line := range []string{`speak "open`, `speak 'open`, `speak trailing\`} {
		_, err := Tokenize(line)
		require.ErrorIs(t, err, ErrUnterminated, "line %q", line)
		require.True(t, Incomplete(line))
	}
	require.False(t, Incomplete(`speak "closed"`))
}

func TestParseRedirection(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantWords  []string
		wantOutput string
		wantAppend bool
	}{
		{"no redirection", "speak hi", []string{"speak", "hi"}, "", false},
		{"truncate", "speak hi > out.txt", []string{"speak", "hi"}, "out.txt", false},
		{"append", "speak hi >> out.txt", []string{"speak", "hi"}, "out.txt", true},
		{"attached truncate", "speak hi >out.txt", []string{"speak", "hi"}, "out.txt", false},
		{"attached append", "speak hi >>out.txt", []string{"speak", "hi"}, "out.txt", true},
		{"quoted gt is data", `speak ">"`, []string{"speak", ">"}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, err := Parse(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.wantWords, st.Words())
			require.Equal(t, tc.wantOutput, st.Output)
			require.Equal(t, tc.wantAppend, st.Append)
		})
	}
}

func TestParsePipe(t *testing.T) {
	st, err := Parse("show all | grep foo -c")
	require.NoError(t, err)
	require.Equal(t, []string{"show", "all"}, st.Words())
	require.Equal(t, "grep foo -c", st.Pipe)

	// Attached form.
	st, err = Parse("show all |wc -l")
	require.NoError(t, err)
	require.Equal(t, []string{"show", "all"}, st.Words())
	require.Equal(t, "wc -l", st.Pipe)

	// Everything after the pipe is verbatim, quoting preserved.
	st, err = Parse(`show all | grep "two words"`)
	require.NoError(t, err)
	require.Equal(t, `grep "two words"`, st.Pipe)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("speak hi >")
	require.Error(t, err)

	_, err = Parse("speak hi |")
	require.Error(t, err)

	_, err = Parse(`speak "unterminated`)
	require.ErrorIs(t, err, ErrUnterminated)
}
