// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package commands holds the built-in commands every shellkit shell
// starts with: help, exit, alias management, settable parameters,
// history, script loading, editing, shell escapes and the embedded
// interpreter.
package commands

import "shellkit/shell"

// Install registers all built-in commands on a shell.
func Install(sh *shell.Shell) {
	sh.Register(
		Help{},
		Exit{name: "exit"},
		Exit{name: "quit"},
		Alias{},
		Unalias{},
		Set{},
		Show{},
		History{},
		Load{},
		RelativeLoad{},
		Edit{},
		ShellEscape{},
		Py{},
	)
}
