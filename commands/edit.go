// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"shellkit/args"
	"shellkit/shell"
)

// Edit opens a file in the configured editor. With no argument it edits
// a scratch buffer and runs the result as a script afterwards.
type Edit struct{ shell.Meta }

func (Edit) Name() string     { return "edit" }
func (Edit) Synopsis() string { return "Edit a file, or edit and run a scratch script" }
func (Edit) Usage() string    { return "edit [file]" }
func (Edit) MinArgs() int     { return 0 }
func (Edit) MaxArgs() int     { return 1 }
func (Edit) PathArgs() bool   { return true }

func (Edit) Execute(ctx *shell.Context, a *args.Args) error {
	if path := a.At(0); path != "" {
		return openEditor(ctx, path)
	}

	tmp, err := os.CreateTemp("", "shellkit-edit-*.txt")
	if err != nil {
		return errors.Wrap(err, "create scratch file")
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := openEditor(ctx, path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		ctx.Feedback("nothing to run\n")
		return nil
	}
	return ctx.Shell.Scripts().Load(ctx.Ctx, path)
}

// editText runs the editor over seed text and returns the edited result.
func editText(ctx *shell.Context, seed string) (string, error) {
	tmp, err := os.CreateTemp("", "shellkit-edit-*.txt")
	if err != nil {
		return "", errors.Wrap(err, "create scratch file")
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(seed); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "seed scratch file")
	}
	tmp.Close()

	if err := openEditor(ctx, path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read edited file")
	}
	return string(data), nil
}

func openEditor(ctx *shell.Context, path string) error {
	editor := ctx.Shell.Settings().Editor
	if editor == "" {
		return errors.New("no editor configured (set editor <program>)")
	}
	cmd := exec.CommandContext(ctx.Ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return errors.Wrapf(cmd.Run(), "editor %s", editor)
}
