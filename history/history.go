// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultLimit = 1000

// Entry is one recorded statement.
type Entry struct {
	Statement string    `json:"statement"`
	When      time.Time `json:"when"`
}

// Store is a bounded, ordered command history. Numbering is 1-based and
// stable within a session; consecutive duplicates collapse into one
// entry.
type Store struct {
	entries []Entry
	limit   int
}

func New() *Store {
	return &Store{limit: defaultLimit}
}

// WithLimit caps the number of retained entries.
func (s *Store) WithLimit(n int) *Store {
	if n > 0 {
		s.limit = n
	}
	return s
}

// Append records a statement. Empty statements and immediate repeats of
// the previous entry are ignored.
func (s *Store) Append(statement string) {
	statement = strings.TrimSpace(statement)
	if statement == "" {
		return
	}
	if n := len(s.entries); n > 0 && s.entries[n-1].Statement == statement {
		return
	}
	s.entries = append(s.entries, Entry{Statement: statement, When: time.Now()})
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Get returns entry n (1-based).
func (s *Store) Get(n int) (Entry, error) {
	if n < 1 || n > len(s.entries) {
		return Entry{}, fmt.Errorf("no history entry %d (history has %d entries)", n, len(s.entries))
	}
	return s.entries[n-1], nil
}

// All returns a copy of every entry in order.
func (s *Store) All() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear drops all entries.
func (s *Store) Clear() { s.entries = nil }

// Span selects entries by a 1-based selector: "4" is one entry and
// "2..5" is an inclusive range. An empty selector selects everything.
func (s *Store) Span(sel string) ([]Entry, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return s.All(), nil
	}

	lo, hi := sel, sel
	if i := strings.Index(sel, ".."); i >= 0 {
		lo, hi = sel[:i], sel[i+2:]
	}

	start, err := strconv.Atoi(lo)
	if err != nil {
		return nil, fmt.Errorf("bad history selector %q", sel)
	}
	end := start
	if hi != lo {
		if end, err = strconv.Atoi(hi); err != nil {
			return nil, fmt.Errorf("bad history selector %q", sel)
		}
	}

	if start < 1 || end > len(s.entries) || start > end {
		return nil, fmt.Errorf("history selector %q out of range (1..%d)", sel, len(s.entries))
	}
	out := make([]Entry, end-start+1)
	copy(out, s.entries[start-1:end])
	return out, nil
}

// Save writes the history as JSON via a temp file and rename.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode history")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create history dir")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "write history")
	}
	return errors.Wrap(os.Rename(tmp, path), "replace history")
}

// Load replaces the store contents from a JSON file. A missing file
// leaves the store empty without error.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read history")
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return errors.Wrap(err, "decode history")
	}
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}
	s.entries = entries
	return nil
}

// SaveStatements writes bare statements, one per line, for `history -s`.
func (s *Store) SaveStatements(path string, entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Statement)
		b.WriteByte('\n')
	}
	return errors.Wrapf(os.WriteFile(path, []byte(b.String()), 0o644), "write %s", path)
}
