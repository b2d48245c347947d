// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"shellkit/app"
	"shellkit/commands"
	"shellkit/shell"
	"shellkit/transcript"
	shlog "shellkit/utils/log"
)

var version = "dev"

func main() {
	var (
		noRC     bool
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:   "shellkit",
		Short: "Interactive command shell",
		Long:  "shellkit is an interactive command shell with scripting, output redirection,\nan embedded expression interpreter and transcript-based regression testing.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			shlog.Init("shellkit")
			if logLevel != "" {
				if lvl, err := zapcore.ParseLevel(logLevel); err == nil {
					shlog.SetLevel(lvl)
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(noRC)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noRC, "no-rc", false, "Skip ~/.shellkitrc on startup")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd(&noRC), transcriptCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		shlog.Sync()
		os.Exit(1)
	}
	shlog.Sync()
}

func newShell() *shell.Shell {
	sh := shell.New()
	commands.Install(sh)
	return sh
}

func runInteractive(noRC bool) error {
	sh := newShell()

	m := app.InitialModel(sh, version, noRC)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	m.Shutdown()
	if code := sh.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}

func runCmd(noRC *bool) *cobra.Command {
	var (
		echo  bool
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script file headlessly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := newShell()
			ctx := context.Background()

			if err := sh.LoadState(shell.StatePath()); err != nil {
				return err
			}
			sh.Settings().Echo = echo
			sh.Settings().Quiet = quiet

			if !*noRC {
				if err := sh.RunStartupScript(ctx); err != nil {
					return err
				}
			}

			if err := sh.Scripts().Load(ctx, args[0]); err != nil {
				return err
			}
			if code := sh.ExitCode(); code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&echo, "echo", false, "Echo each statement before running it")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress feedback output")
	return cmd
}

func transcriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Record and replay shell transcripts",
	}
	cmd.AddCommand(transcriptTestCmd(), transcriptRecordCmd())
	return cmd
}

func transcriptTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <file>...",
		Short: "Replay transcript files and compare output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			failed := false

			for _, path := range args {
				// Each transcript replays against a fresh shell so files
				// cannot leak aliases or settings into each other.
				sh := newShell()

				f, err := os.Open(path)
				if err != nil {
					return err
				}
				entries, err := transcript.Parse(f, sh.Settings().Prompt)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				res := transcript.Run(ctx, sh, entries)
				if !res.Report(os.Stdout, path) {
					failed = true
				}
			}

			if failed {
				os.Exit(1)
			}
			return nil
		},
	}
}

func transcriptRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <file>",
		Short: "Record an interactive session to a transcript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := newShell()
			ctx := context.Background()

			var statements []string
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprint(os.Stdout, sh.Prompt())
				if !scanner.Scan() {
					break
				}
				line := scanner.Text()
				if err := sh.RunStatement(ctx, line); err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
				}
				statements = append(statements, line)
				if sh.Exited() {
					break
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			// Re-run the session against a clean shell so the recorded
			// output matches what a later replay will see.
			out, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer out.Close()
			return transcript.Write(context.Background(), newShell(), statements, out)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shellkit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("shellkit", version)
		},
	}
}
