// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hash

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Fmt renders a hash in the fixed-width form used in logs.
func Fmt(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// Compute hashes an arbitrary value structurally.
func Compute(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

// Tracker remembers the last observed hash of a value so callers can
// cheaply skip recomputing derived state (status bars, cached renders)
// when nothing changed.
type Tracker struct {
	last  uint64
	valid bool
}

// Changed reports whether v hashes differently from the last call and
// records the new hash. The first observation always reports true.
// Unhashable values conservatively report true.
func (t *Tracker) Changed(v any) bool {
	h, err := Compute(v)
	if err != nil {
		t.valid = false
		return true
	}
	if t.valid && t.last == h {
		return false
	}
	t.last = h
	t.valid = true
	return true
}
