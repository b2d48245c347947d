// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// Stack is the navigation history of views behind the current one.
type Stack struct {
	views []View
}

// Push a view onto the stack.
func (s *Stack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop returns the last view and removes it, nil when empty.
func (s *Stack) Pop() View {
	if len(s.views) == 0 {
		return nil
	}
	last := s.views[len(s.views)-1]
	s.views = s.views[:len(s.views)-1]
	return last
}

// Views returns the full stack (shallow copy).
func (s *Stack) Views() []View {
	cpy := make([]View, len(s.views))
	copy(cpy, s.views)
	return cpy
}

// Len returns how many views are on the stack.
func (s *Stack) Len() int {
	return len(s.views)
}

// Reset clears the stack.
func (s *Stack) Reset() {
	s.views = nil
}
