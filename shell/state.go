// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package shell

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	shlog "shellkit/utils/log"
)

const appName = "shellkit"

// stateFile is what persists between sessions: settable parameters and
// the alias table.
type stateFile struct {
	Settings *Settings         `json:"settings"`
	Aliases  map[string]string `json:"aliases"`
}

// StatePath returns the location of the persisted shell state.
func StatePath() string {
	return filepath.Join(shlog.StateDir(appName), "settings.json")
}

// HistoryPath returns the location of the persisted history.
func HistoryPath() string {
	return filepath.Join(shlog.StateDir(appName), "history.json")
}

// LoadState restores settings and aliases from disk. A missing file is
// not an error.
func (sh *Shell) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read state")
	}
	var st stateFile
	if err := json.Unmarshal(data, &st); err != nil {
		return errors.Wrap(err, "decode state")
	}
	if st.Settings != nil {
		sh.settings = st.Settings
	}
	if st.Aliases != nil {
		sh.aliases.Replace(st.Aliases)
	}
	return nil
}

// SaveState writes settings and aliases atomically.
func (sh *Shell) SaveState(path string) error {
	st := stateFile{Settings: sh.settings, Aliases: sh.aliases.Map()}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode state")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create state dir")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write state")
	}
	return errors.Wrap(os.Rename(tmp, path), "replace state")
}
