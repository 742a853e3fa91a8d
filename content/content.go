// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package content implements the paintable fragments that decorations place
// into layout regions: text, focus rings, icons and menu arrows. Contents
// are plain mergeable data, like the decorations owning them: unset fields
// inherit through merging and every merge input stays untouched.
package content

import (
	"image"

	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/paint"
)

// Content is one paintable fragment of a decoration.
type Content interface {

	// Kind returns the content kind tag, such as "text" or "dash-focus".
	// Contents of the same kind and constraint merge with each other.
	Kind() string

	// Constraint returns the layout region this content occupies; an empty
	// constraint paints across the whole content bounds.
	Constraint() string

	// Clone returns an independent deep copy, without runtime caches.
	Clone() Content

	// Merge merges the other content of the same kind into this one and
	// returns the receiver. The other content is not modified.
	Merge(other Content) Content

	// Empty reports whether there is nothing to paint for the component.
	Empty(c host.Component) bool

	// PreferredSize returns the preferred content size given the available
	// space hint.
	PreferredSize(c host.Component, available image.Point) image.Point

	// Paint renders the content into the given bounds.
	Paint(p paint.Painter, c host.Component, bounds image.Rectangle)

	// Activate is called when the owning decoration becomes current.
	Activate(c host.Component)

	// Deactivate is called when the owning decoration stops being current.
	Deactivate(c host.Component)
}

// Base carries the fields shared by all contents.
type Base struct {

	// At is the layout region constraint this content occupies.
	At string

	// Overwrite makes this fragment's fields replace accumulated values
	// even when unset.
	Overwrite bool
}

func (b *Base) Constraint() string          { return b.At }
func (b *Base) Activate(c host.Component)   {}
func (b *Base) Deactivate(c host.Component) {}
