// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package transcript

import (
	"context"
	"fmt"
	"io"
	"strings"

	"shellkit/shell"
)

// Write re-runs the given statements against the shell and writes a
// transcript of commands with their captured output. This is how
// `history -t` turns a session into a regression fixture.
func Write(ctx context.Context, sh *shell.Shell, statements []string, w io.Writer) error {
	prompt := sh.Settings().Prompt
	for _, stmt := range statements {
		if _, err := fmt.Fprintf(w, "%s%s\n", prompt, stmt); err != nil {
			return err
		}
		out, runErr := sh.CaptureStatement(ctx, stmt)
		if runErr != nil {
			out += fmt.Sprintf("error: %v\n", runErr)
		}
		out = strings.TrimRight(out, "\n")
		if out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}
