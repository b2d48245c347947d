// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// openSink turns a statement's output clause into the writer the command
// executes against. With no clause it returns the shell's own output
// behind a no-op closer.
func (sh *Shell) openSink(ctx context.Context, st *Statement) (io.WriteCloser, error) {
	switch {
	case st.Pipe != "":
		return newPipeSink(ctx, st.Pipe, sh.out, sh.errOut)
	case st.Output != "":
		path, err := expandHome(st.Output)
		if err != nil {
			return nil, err
		}
		flags := os.O_CREATE | os.O_WRONLY
		if st.Append {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(path, flags, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot redirect to %s", st.Output)
		}
		return f, nil
	default:
		return nopCloser{sh.out}, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// pipeSink feeds command output into an external process started through
// the system shell. The process's own output streams back to the shell.
type pipeSink struct {
	stdin io.WriteCloser
	cmd   *exec.Cmd
	g     *errgroup.Group
}

func newPipeSink(ctx context.Context, command string, out, errw io.Writer) (*pipeSink, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "pipe stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "pipe stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Wrap(err, "pipe stderr")
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "cannot start pipe command %q", command)
	}

	g := &errgroup.Group{}
	g.Go(func() error {
		_, err := io.Copy(out, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(errw, stderr)
		return err
	})

	return &pipeSink{stdin: stdin, cmd: cmd, g: g}, nil
}

func (p *pipeSink) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

// Close flushes the pipeline: closes the process's stdin, drains its
// output and joins its exit status.
func (p *pipeSink) Close() error {
	err := p.stdin.Close()
	if cerr := p.g.Wait(); err == nil {
		err = cerr
	}
	if werr := p.cmd.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		return errors.Wrap(err, "pipe command")
	}
	return nil
}

// expandHome resolves a leading ~ against the current user's home.
func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "cannot resolve ~")
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
