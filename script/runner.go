// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package script

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// Runner executes script files of shell statements. It is decoupled from
// the engine through the Exec callback so it can run against any
// statement executor.
type Runner struct {
	// Exec runs one statement. Required.
	Exec func(ctx context.Context, line string) error

	// Incomplete reports that a line ends mid-statement and the next
	// line should be joined onto it. Optional.
	Incomplete func(line string) bool

	// Echo is called with each statement before execution when the
	// shell's echo setting is on. Optional.
	Echo func(line string)

	// loads tracks the active load tree; an edge that would close a
	// cycle means a script is loading itself, directly or through a
	// chain.
	loads graph.Graph[string, string]
	stack []string
}

// Load executes a script file. Nested loads are allowed; recursion is
// rejected.
func (r *Runner) Load(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", path)
	}
	return r.load(ctx, abs)
}

// LoadRelative executes a script file resolved against the directory of
// the script currently running. At top level it behaves like Load.
func (r *Runner) LoadRelative(ctx context.Context, path string) error {
	if !filepath.IsAbs(path) {
		if base := r.BaseDir(); base != "" {
			path = filepath.Join(base, path)
		}
	}
	return r.Load(ctx, path)
}

// BaseDir returns the directory of the script currently executing, or ""
// at top level.
func (r *Runner) BaseDir() string {
	if len(r.stack) == 0 {
		return ""
	}
	return filepath.Dir(r.stack[len(r.stack)-1])
}

// Depth returns how many scripts are currently nested.
func (r *Runner) Depth() int { return len(r.stack) }

func (r *Runner) load(ctx context.Context, abs string) error {
	if len(r.stack) == 0 {
		// Fresh load tree per top-level run.
		r.loads = graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	}
	_ = r.loads.AddVertex(abs)

	if len(r.stack) > 0 {
		parent := r.stack[len(r.stack)-1]
		err := r.loads.AddEdge(parent, abs)
		if errors.Is(err, graph.ErrEdgeCreatesCycle) || parent == abs {
			return errors.Errorf("recursive load of %s", abs)
		}
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return errors.Wrapf(err, "track load of %s", abs)
		}
	}

	f, err := os.Open(abs)
	if err != nil {
		return errors.Wrapf(err, "cannot load script")
	}
	defer f.Close()

	r.stack = append(r.stack, abs)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending string
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if pending != "" {
			line = pending + "\n" + line
			pending = ""
		}
		if r.Incomplete != nil && r.Incomplete(line) {
			pending = line
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if r.Echo != nil {
			r.Echo(line)
		}
		if err := r.Exec(ctx, line); err != nil {
			return errors.Wrapf(err, "%s:%d", filepath.Base(abs), lineNo)
		}
	}
	if pending != "" {
		return errors.Errorf("%s: unterminated statement at end of file", filepath.Base(abs))
	}
	return errors.Wrapf(sc.Err(), "read %s", abs)
}
