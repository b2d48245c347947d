// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"shellkit/args"
	"shellkit/history"
	"shellkit/interp"
	"shellkit/script"
	shlog "shellkit/utils/log"
)

// Shell is one interactive session: the command registry, settable
// parameters, aliases, history, the embedded interpreter environment and
// the output streams. It is front-end agnostic; the terminal UI, script
// runner and transcript tester all drive it through RunStatement.
type Shell struct {
	reg      *Registry
	settings *Settings
	aliases  *Aliases
	hist     *history.Store
	env      *interp.Env
	scripts  *script.Runner

	out    io.Writer
	errOut io.Writer

	interpActive  bool
	exitRequested bool
	exitCode      int
}

// Option configures a Shell at construction.
type Option func(*Shell)

// WithOutput sets the output and error streams.
func WithOutput(out, errOut io.Writer) Option {
	return func(sh *Shell) {
		sh.out = out
		sh.errOut = errOut
	}
}

// WithSettings replaces the default settings.
func WithSettings(s *Settings) Option {
	return func(sh *Shell) { sh.settings = s }
}

func New(opts ...Option) *Shell {
	sh := &Shell{
		reg:      NewRegistry(),
		settings: DefaultSettings(),
		aliases:  NewAliases(),
		hist:     history.New(),
		env:      interp.NewEnv(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(sh)
	}

	sh.scripts = &script.Runner{
		Exec:       sh.runScriptStatement,
		Incomplete: Incomplete,
		Echo:       sh.echoStatement,
	}

	// Interpreter sessions can call back into the shell: shell("…")
	// runs a statement and returns its captured output.
	sh.env.RegisterFunc("shell", func(argv []any) (any, error) {
		if len(argv) != 1 {
			return nil, fmt.Errorf("shell takes 1 argument")
		}
		line, ok := argv[0].(string)
		if !ok {
			return nil, fmt.Errorf("shell: argument must be a string")
		}
		out, err := sh.CaptureStatement(context.Background(), line)
		if err != nil {
			return nil, err
		}
		return strings.TrimRight(out, "\n"), nil
	})

	return sh
}

func (sh *Shell) Registry() *Registry     { return sh.reg }
func (sh *Shell) Settings() *Settings     { return sh.settings }
func (sh *Shell) Aliases() *Aliases       { return sh.aliases }
func (sh *Shell) History() *history.Store { return sh.hist }
func (sh *Shell) Interp() *interp.Env     { return sh.env }
func (sh *Shell) Scripts() *script.Runner { return sh.scripts }
func (sh *Shell) Out() io.Writer          { return sh.out }
func (sh *Shell) ErrOut() io.Writer       { return sh.errOut }

// Register adds commands to the shell.
func (sh *Shell) Register(cmds ...Command) {
	for _, c := range cmds {
		sh.reg.Register(c)
	}
}

// RequestExit asks the loop driving this shell to stop.
func (sh *Shell) RequestExit(code int) {
	sh.exitRequested = true
	sh.exitCode = code
}

func (sh *Shell) Exited() bool  { return sh.exitRequested }
func (sh *Shell) ExitCode() int { return sh.exitCode }

// EnterInterp switches statement routing to the embedded interpreter
// until its exit() runs.
func (sh *Shell) EnterInterp()       { sh.interpActive = true }
func (sh *Shell) LeaveInterp()       { sh.interpActive = false }
func (sh *Shell) InterpActive() bool { return sh.interpActive }

// Prompt returns the prompt for the current mode.
func (sh *Shell) Prompt() string {
	if sh.interpActive {
		return ">>> "
	}
	return sh.settings.Prompt
}

// Shortcut prefixes, checked in order so `@@` wins over `@`.
var shortcuts = []struct{ prefix, command string }{
	{"!", "shell "},
	{"@@", "_relative_load "},
	{"@", "load "},
	{"?", "help "},
}

func expandShortcuts(line string) string {
	for _, s := range shortcuts {
		if strings.HasPrefix(line, s.prefix) {
			return s.command + strings.TrimSpace(line[len(s.prefix):])
		}
	}
	return line
}

// RunStatement executes one input line: shortcut and alias expansion,
// command resolution, flag parsing, redirection, then the command body.
// Command errors are returned, never fatal to the caller's loop.
func (sh *Shell) RunStatement(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	// Interpreter mode swallows every line until exit().
	if sh.interpActive {
		return sh.runInterpLine(line)
	}

	if strings.HasPrefix(line, "#") {
		return nil
	}
	line = expandShortcuts(line)

	// Single-level alias expansion on the first word.
	toks, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(toks) == 0 {
		return nil
	}
	if !toks[0].Quoted {
		if exp, ok := sh.aliases.Get(toks[0].Text); ok {
			line = exp + line[toks[0].End:]
			if toks, err = Tokenize(line); err != nil {
				return err
			}
			if len(toks) == 0 {
				return ErrEmptyCommand
			}
		}
	}

	// Resolution happens before redirection extraction so that raw
	// commands keep `>`, `>>` and `|` as data on their line.
	cmd, consumed, err := sh.reg.Resolve(toks)
	if err != nil {
		return err
	}

	if cmd.Raw() {
		start := time.Now()
		rest := strings.TrimSpace(line[toks[consumed-1].End:])
		err = sh.execute(ctx, cmd, &args.Args{Raw: rest}, nopCloser{sh.out})
		sh.reportTiming(start)
		return err
	}

	st, err := Parse(line)
	if err != nil {
		return err
	}

	start := time.Now()
	err = sh.dispatch(ctx, cmd, st, consumed)

	sh.reportTiming(start)
	return err
}

func (sh *Shell) reportTiming(start time.Time) {
	if sh.settings.Timing {
		fmt.Fprintf(sh.errOut, "elapsed: %s\n", time.Since(start).Round(time.Microsecond))
	}
}

// dispatch handles the parsed path: flags, help, arity, redirection.
func (sh *Shell) dispatch(ctx context.Context, cmd Command, st *Statement, consumed int) error {
	words := st.Words()[consumed:]

	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.Flags(fs)
	help := fs.BoolP("help", "h", false, "show this help message")

	if err := fs.Parse(words); err != nil {
		return errors.Wrap(err, cmd.Name())
	}
	pos := fs.Args()

	sink, err := sh.openSink(ctx, st)
	if err != nil {
		return err
	}

	if *help {
		fmt.Fprint(sink, UsageText(cmd))
		return sink.Close()
	}

	if len(pos) < cmd.MinArgs() {
		_ = sink.Close()
		return fmt.Errorf("%s requires at least %d argument(s)\n%s", cmd.Name(), cmd.MinArgs(), UsageText(cmd))
	}
	if max := cmd.MaxArgs(); max >= 0 && len(pos) > max {
		_ = sink.Close()
		return fmt.Errorf("%s takes at most %d argument(s)\n%s", cmd.Name(), max, UsageText(cmd))
	}

	execErr := sh.execute(ctx, cmd, &args.Args{Flags: fs, Positionals: pos}, sink)
	if cerr := sink.Close(); execErr == nil {
		execErr = cerr
	}
	return execErr
}

func (sh *Shell) execute(ctx context.Context, cmd Command, a *args.Args, sink io.WriteCloser) error {
	cctx := &Context{Ctx: ctx, Shell: sh, Out: sink, Err: sh.errOut}
	shlog.L().Debugw("executing command", "command", cmd.Name(), "args", a.String())
	return cmd.Execute(cctx, a)
}

// runInterpLine feeds one line to the embedded interpreter.
func (sh *Shell) runInterpLine(line string) error {
	v, err := sh.env.Run(line)
	if err != nil {
		if errors.Is(err, interp.ErrExit) {
			sh.LeaveInterp()
			return nil
		}
		return err
	}
	if v != nil {
		fmt.Fprintln(sh.out, interp.Format(v))
	}
	return nil
}

// RunStatementTo executes a statement with output captured by out.
// Redirection clauses still apply on top of the override.
func (sh *Shell) RunStatementTo(ctx context.Context, line string, out io.Writer) error {
	prev := sh.out
	sh.out = out
	defer func() { sh.out = prev }()
	return sh.RunStatement(ctx, line)
}

// CaptureStatement runs a statement and returns what it wrote.
func (sh *Shell) CaptureStatement(ctx context.Context, line string) (string, error) {
	var buf bytes.Buffer
	err := sh.RunStatementTo(ctx, line, &buf)
	return buf.String(), err
}

// runScriptStatement is the script runner's executor: errors print but
// do not abort the script, matching interactive behavior. Exit requests
// do abort.
func (sh *Shell) runScriptStatement(ctx context.Context, line string) error {
	if err := sh.RunStatement(ctx, line); err != nil {
		fmt.Fprintf(sh.errOut, "error: %v\n", err)
	}
	if sh.exitRequested {
		return errors.New("shell exited")
	}
	return ctx.Err()
}

// echoStatement prints a statement the way it would look typed in.
// Continued lines of a joined statement render under the continuation
// prompt.
func (sh *Shell) echoStatement(line string) {
	if !sh.settings.Echo || sh.settings.Quiet {
		return
	}
	for i, l := range strings.Split(line, "\n") {
		p := sh.Prompt()
		if i > 0 {
			p = sh.settings.ContinuationPrompt
		}
		fmt.Fprintf(sh.out, "%s%s\n", p, l)
	}
}

// RunStartupScript executes ~/.shellkitrc when present.
func (sh *Shell) RunStartupScript(ctx context.Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	rc := home + string(os.PathSeparator) + ".shellkitrc"
	if _, err := os.Stat(rc); err != nil {
		return nil
	}
	shlog.L().Infow("running startup script", "path", rc)
	return sh.scripts.Load(ctx, rc)
}
