// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decor implements state-driven widget decorations: mergeable
// decoration fragments selected by the component's current state set,
// combined into effective decorations and cached, and the resolver that
// tracks component state and keeps the active decoration current.
package decor

import (
	"fmt"
	"image"

	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/states"
	"github.com/veneerui/veneer/styles/sides"
)

// Decoration is one mergeable decoration fragment, or the effective
// decoration combined from several fragments.
type Decoration interface {

	// ID returns the unique fragment identifier within its style.
	ID() string

	// SetID sets the fragment identifier.
	SetID(id string)

	// Kind returns the decoration kind tag, such as "box". Only fragments
	// of the same kind merge with each other.
	Kind() string

	// States returns the state tokens this fragment requires, all of which
	// must be present for the fragment to apply. An empty list applies to
	// every state set.
	States() []states.State

	// UsesState reports whether this fragment requires the given state.
	UsesState(state states.State) bool

	// ApplicableTo reports whether the fragment applies to the given
	// canonicalized state set.
	ApplicableTo(set states.Set) bool

	// Clone returns an independent deep copy.
	Clone() Decoration

	// Merge merges the other fragment of the same kind into this one and
	// returns the receiver. The other fragment is not modified.
	Merge(other Decoration) Decoration

	// IsSection reports whether this decoration covers a section of the
	// component rather than the whole component.
	IsSection() bool

	// SetSection marks the decoration as a section decoration.
	SetSection(section bool)

	// UpdateStates hands the effective decoration the resolved state set it
	// was built for.
	UpdateStates(set states.Set)

	// Activate is called when the decoration becomes the component's
	// current decoration.
	Activate(c host.Component)

	// Deactivate is called when the decoration stops being current.
	Deactivate(c host.Component)

	// BorderInsets returns the insets the decoration border and padding
	// occupy around the component content.
	BorderInsets(c host.Component) sides.Ints

	// PreferredSize returns the preferred decoration size given the
	// available space hint.
	PreferredSize(c host.Component, available image.Point) image.Point

	// Paint renders the decoration into the given bounds.
	Paint(p paint.Painter, c host.Component, bounds image.Rectangle)
}

// Decorations is the ordered fragment list of one style rule set. Order is
// merge order: later fragments override earlier ones.
type Decorations []Decoration

// NewDecorations returns the fragment list with unique identifiers assigned
// to fragments that do not carry one.
func NewDecorations(decs ...Decoration) Decorations {
	ds := Decorations(decs)
	for i, d := range ds {
		if d.ID() == "" {
			d.SetID(fmt.Sprintf("%s-%d", d.Kind(), i))
		}
	}
	return ds
}

// ApplicableTo returns the fragments applying to the given state set, in
// their original order.
func (ds Decorations) ApplicableTo(set states.Set) Decorations {
	var out Decorations
	for _, d := range ds {
		if d.ApplicableTo(set) {
			out = append(out, d)
		}
	}
	return out
}

// UsesState reports whether any fragment requires the given state.
func (ds Decorations) UsesState(state states.State) bool {
	for _, d := range ds {
		if d.UsesState(state) {
			return true
		}
	}
	return false
}
