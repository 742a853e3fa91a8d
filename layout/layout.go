// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout implements constraint-based content layout for compound
// widget decorations: a fixed palette of named regions is measured and
// arranged within the available bounds, honoring text direction, gaps and
// emptiness.
package layout

import (
	"image"

	"github.com/veneerui/veneer/host"
)

// Region constraint names of the fixed palette.
const (
	Icon        = "icon"
	Text        = "text"
	Accelerator = "accelerator"
	Arrow       = "arrow"
)

// Data maps region constraints to the rectangles the arrange pass produced.
// Regions that are empty (or not placed by the layout) have no entry.
type Data map[string]image.Rectangle

// Source exposes per-region content information to a layout. It is
// implemented by the decoration owning the contents being laid out.
type Source interface {

	// EmptyAt reports whether the region under the given constraint has no
	// content to show.
	EmptyAt(c host.Component, constraint string) bool

	// PreferredSizeAt returns the preferred size of the region under the
	// given constraint, given the available space hint.
	PreferredSizeAt(c host.Component, constraint string, available image.Point) image.Point
}

// Layout is a mergeable content layout. Implementations are plain data
// merged with the same right-biased rule as decorations.
type Layout interface {

	// Kind returns the layout kind tag.
	Kind() string

	// Clone returns an independent deep copy.
	Clone() Layout

	// Merge merges the other layout of the same kind into this one and
	// returns the receiver. The other layout is not modified.
	Merge(other Layout) Layout

	// Empty reports whether the region under the given constraint should be
	// treated as empty, possibly overriding the source's own answer.
	Empty(c host.Component, src Source, constraint string) bool

	// PreferredSize is the measure pass: the combined preferred size of all
	// present regions including gaps.
	PreferredSize(c host.Component, src Source, available image.Point) image.Point

	// LayoutContent is the arrange pass: it places every present region
	// within bounds and returns the resulting rectangles.
	LayoutContent(c host.Component, src Source, bounds image.Rectangle) Data
}
