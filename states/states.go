// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the decoration state tokens that describe what mode
// a component is currently in, and the canonicalized sets of them that drive
// decoration resolution.
package states

import (
	"slices"
	"strings"
)

// State is a single decoration state token, such as "focused" or "hover".
// Styles may introduce free-form custom tokens beyond the ones named here.
type State string

const (
	// Enabled means the component can be interacted with.
	Enabled State = "enabled"

	// Disabled means the component cannot be interacted with, but does display.
	Disabled State = "disabled"

	// Focused means the component currently owns keyboard focus.
	Focused State = "focused"

	// InFocusedParent means the component itself owns focus, or one of its
	// ancestors that visually tracks focus currently reports focused.
	InFocusedParent State = "in-focused-parent"

	// Hover means the pointer is currently over the component's bounds.
	Hover State = "hover"

	// LeftToRight is the left-to-right text direction token.
	LeftToRight State = "ltr"

	// RightToLeft is the right-to-left text direction token.
	RightToLeft State = "rtl"

	// Selected marks components that present a selected mode, such as
	// checked menu items. It is contributed through a Stateful host.
	Selected State = "selected"

	// Pressed marks components that are currently being pressed.
	Pressed State = "pressed"
)

// Set is an ordered, deduplicated collection of state tokens. It is always
// kept sorted so that two logically equal sets produce identical cache keys.
// The zero value is an empty, usable set.
type Set []State

// NewSet returns a new canonicalized set containing the given tokens.
func NewSet(tokens ...State) Set {
	var s Set
	return s.Add(tokens...)
}

// Add returns the set with the given tokens added, preserving the sorted,
// deduplicated invariant. The receiver is not modified.
func (s Set) Add(tokens ...State) Set {
	ns := slices.Clone(s)
	ns = append(ns, tokens...)
	slices.Sort(ns)
	return slices.Compact(ns)
}

// Uses reports whether the set contains the given token.
func (s Set) Uses(state State) bool {
	_, ok := slices.BinarySearch(s, state)
	return ok
}

// ContainsAll reports whether every token in required is present in the set.
// An empty required list is contained in every set.
func (s Set) ContainsAll(required []State) bool {
	for _, r := range required {
		if !s.Uses(r) {
			return false
		}
	}
	return true
}

// Equal reports whether the two sets have identical content.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	return slices.Clone(s)
}

// Key returns the canonical cache key for the set. Equal sets always
// produce identical keys.
func (s Set) Key() string {
	b := &strings.Builder{}
	for i, st := range s {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(string(st))
	}
	return b.String()
}

func (s Set) String() string {
	return "[" + s.Key() + "]"
}
