package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, e *Env, input string) any {
	t.Helper()
	v, err := e.Run(input)
	require.NoError(t, err, "input %q", input)
	return v
}

func TestArithmetic(t *testing.T) {
	e := NewEnv()
	tests := []struct {
		input string
		want  any
	}{
		{"1 + 2", int64(3)},
		{"10 - 4", int64(6)},
		{"3 * 4", int64(12)},
		{"10 / 3", int64(3)},
		{"10 % 3", int64(1)},
		{"2 + 3 * 4", int64(14)},
		{"(2 + 3) * 4", int64(20)},
		{"-5 + 2", int64(-3)},
		{"1.5 + 2", 3.5},
		{"1 / 2.0", 0.5},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, run(t, e, tc.input), "input %q", tc.input)
	}
}

func TestComparisonAndLogic(t *testing.T) {
	e := NewEnv()
	tests := []struct {
		input string
		want  bool
	}{
		{"1 < 2", true},
		{"2 <= 2", true},
		{"3 > 4", false},
		{"1 == 1.0", true},
		{"1 != 2", true},
		{`"a" == "a"`, true},
		{`"a" == "b"`, false},
		{"true && false", false},
		{"true || false", true},
		{"!false", true},
		{"1 < 2 && 2 < 3", true},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, run(t, e, tc.input), "input %q", tc.input)
	}
}

func TestShortCircuit(t *testing.T) {
	e := NewEnv()
	// The right side would error; short-circuit must skip it.
	require.Equal(t, false, run(t, e, "false && undefined_var"))
	require.Equal(t, true, run(t, e, "true || undefined_var"))
}

func TestStrings(t *testing.T) {
	e := NewEnv()
	require.Equal(t, "helloworld", run(t, e, `"hello" + "world"`))
	require.Equal(t, "HI", run(t, e, `upper("hi")`))
	require.Equal(t, "hi", run(t, e, `lower("HI")`))
	require.Equal(t, "x", run(t, e, `trim("  x  ")`))
	require.Equal(t, int64(5), run(t, e, `len("hello")`))
	require.Equal(t, "e", run(t, e, `"hello"[1]`))
}

func TestLists(t *testing.T) {
	e := NewEnv()
	require.Equal(t, []any{int64(1), int64(2), int64(3)}, run(t, e, "[1, 2, 3]"))
	require.Equal(t, int64(3), run(t, e, "len([1, 2, 3])"))
	require.Equal(t, int64(20), run(t, e, "[10, 20, 30][1]"))
	require.Equal(t, []any{"a", "b"}, run(t, e, `split("a,b", ",")`))

	_, err := e.Run("[1, 2][5]")
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestVariables(t *testing.T) {
	e := NewEnv()

	// Assignments evaluate silently.
	require.Nil(t, run(t, e, "x = 6 * 7"))
	require.Equal(t, int64(42), run(t, e, "x"))
	require.Equal(t, int64(84), run(t, e, "x + x"))

	require.Nil(t, run(t, e, "x = x + 1"))
	require.Equal(t, int64(43), run(t, e, "x"))

	_, err := e.Run("nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "undefined variable")
}

func TestConversions(t *testing.T) {
	e := NewEnv()
	require.Equal(t, int64(3), run(t, e, "int(3.9)"))
	require.Equal(t, int64(7), run(t, e, `int("7")`))
	require.Equal(t, 2.5, run(t, e, `float("2.5")`))
	require.Equal(t, "42", run(t, e, "str(42)"))
	require.Equal(t, int64(5), run(t, e, "abs(-5)"))
	require.Equal(t, 1.5, run(t, e, "abs(-1.5)"))
}

func TestExit(t *testing.T) {
	e := NewEnv()
	_, err := e.Run("exit()")
	require.ErrorIs(t, err, ErrExit)
	_, err = e.Run("quit()")
	require.ErrorIs(t, err, ErrExit)
}

func TestErrors(t *testing.T) {
	e := NewEnv()
	for _, input := range []string{
		"1 / 0",
		"1 +",
		"(1 + 2",
		`"open`,
		"nosuchfn(1)",
		`1 + "s"`,
		"[1] + [2]",
	} {
		_, err := e.Run(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestRegisterFunc(t *testing.T) {
	e := NewEnv()
	e.RegisterFunc("double", func(args []any) (any, error) {
		return args[0].(int64) * 2, nil
	})
	require.Equal(t, int64(10), run(t, e, "double(5)"))
}

func TestFormat(t *testing.T) {
	require.Equal(t, "42", Format(int64(42)))
	require.Equal(t, "3.5", Format(3.5))
	require.Equal(t, "true", Format(true))
	require.Equal(t, "nil", Format(nil))
	require.Equal(t, "plain", Format("plain"))
	require.Equal(t, `["a", 1]`, Format([]any{"a", int64(1)}))
}
