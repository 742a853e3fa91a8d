// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host defines the narrow interfaces through which the decoration
// engine consumes the surrounding widget toolkit: components, focus and
// hover authorities, and hierarchy notifications. The engine never reaches
// into toolkit internals beyond these interfaces.
//
// It also provides [Kit], a small headless in-memory toolkit implementing
// them, used by tests and examples.
package host

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/states"
)

// Property names forwarded to a resolver through PropertyChanged.
const (
	// EnabledProperty signals that the component enabled flag changed.
	EnabledProperty = "enabled"

	// OrientationProperty signals that the component text direction changed.
	OrientationProperty = "orientation"

	// DecorationStatesProperty signals that the custom decoration states
	// contributed by the component changed.
	DecorationStatesProperty = "decoration-states"
)

// Component is the engine's view of a toolkit widget.
type Component interface {

	// Enabled reports whether the component can be interacted with.
	Enabled() bool

	// LeftToRight reports the component text direction.
	LeftToRight() bool

	// Parent returns the parent component, or nil at the root.
	Parent() Component

	// Children returns the direct children of the component.
	Children() []Component

	// FontFace returns the font face used for the component text.
	FontFace() font.Face

	// Foreground returns the component foreground color.
	Foreground() color.RGBA

	// Relayout requests a re-layout of the component.
	Relayout()

	// Repaint requests a repaint of the component.
	Repaint()
}

// Stateful is implemented by components (or their UI delegates) that
// contribute custom decoration states beyond the built-in ones.
type Stateful interface {
	DecorationStates() []states.State
}

// Texter is implemented by components that display a text label.
type Texter interface {
	Text() string
}

// Mnemonic is implemented by components with a mnemonic character;
// MnemonicIndex returns the rune index within the text, or -1 for none.
type Mnemonic interface {
	MnemonicIndex() int
}

// Iconer is implemented by components that display an icon.
// A nil icon means none.
type Iconer interface {
	Icon() image.Image
}

// Accelerated is implemented by components with a keyboard accelerator.
// An empty string means no accelerator is assigned.
type Accelerated interface {
	AcceleratorText() string
}

// Popup is implemented by containers that act as popup menus. Menu item
// layouts reserve trailing regions (arrow, accelerator) only for items
// placed inside such containers.
type Popup interface {
	IsPopup() bool
}

// Grouping is implemented by containers whose layout visually groups their
// children, so that a child's border depends on its neighbors.
type Grouping interface {
	GroupsChildren() bool
}

// StateReporter is the view of a decoration resolver that ancestors expose
// for in-focused-parent resolution.
type StateReporter interface {

	// UsesState reports whether the resolver's decorations (including its
	// section resolvers) declare a rule depending on the given state.
	UsesState(state states.State) bool

	// Focused reports the resolver's tracked focus flag.
	Focused() bool
}

// Decorated is implemented by components that expose their decoration
// resolver to descendants. It replaces any need to reach into component
// internals when walking the ancestor chain.
type Decorated interface {
	DecorationPainter() StateReporter
}

// RichView is an externally provided rich-markup text view.
type RichView interface {

	// PreferredSize returns the preferred span of the view.
	PreferredSize() image.Point

	// Paint renders the view into the given bounds.
	Paint(p paint.Painter, bounds image.Rectangle)
}

// RichTexter is implemented by components that can build rich-markup views
// for their text. Components without it render markup text as plain text.
type RichTexter interface {
	RichView(text string, face font.Face, fg color.RGBA) RichView
}

// FocusAuthority is the toolkit focus manager as seen by the engine.
// All subscription methods return a removal function.
type FocusAuthority interface {

	// IsFocusOwner reports whether the given component currently owns focus.
	IsFocusOwner(c Component) bool

	// OnFocusChange subscribes to focus changes of one component.
	OnFocusChange(c Component, fn func(focused bool)) (remove func())

	// OnGlobalFocusChange subscribes to changes of the global focus owner.
	OnGlobalFocusChange(fn func(old, current Component)) (remove func())
}

// HoverAuthority delivers pointer enter/exit notifications.
type HoverAuthority interface {
	OnHoverChange(c Component, fn func(hover bool)) (remove func())
}

// HierarchyAuthority delivers component tree change notifications.
type HierarchyAuthority interface {

	// OnParentChange subscribes to parent changes of the given component.
	OnParentChange(c Component, fn func()) (remove func())

	// OnChildrenChange subscribes to child additions and removals on the
	// given container.
	OnChildrenChange(parent Component, fn func(child Component)) (remove func())
}

// Toolkit bundles the authorities a resolver needs from the host toolkit.
type Toolkit interface {
	Focus() FocusAuthority
	Hover() HoverAuthority
	Hierarchy() HierarchyAuthority
}
