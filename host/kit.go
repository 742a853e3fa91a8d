// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/veneerui/veneer/states"
)

// Kit is a headless in-memory toolkit: a widget tree with focus and hover
// management, delivering the notifications the decoration engine subscribes
// to. It follows the engine's single-threaded cooperative model: all calls
// must come from one goroutine and all callbacks fire synchronously.
type Kit struct {
	focusOwner Component

	nextID         int
	focusListeners map[Component]map[int]func(bool)
	globalFocus    map[int]func(old, current Component)
	hoverListeners map[Component]map[int]func(bool)
	parentChange   map[Component]map[int]func()
	childrenChange map[Component]map[int]func(Component)
}

// NewKit returns a new empty headless toolkit.
func NewKit() *Kit {
	return &Kit{
		focusListeners: map[Component]map[int]func(bool){},
		globalFocus:    map[int]func(old, current Component){},
		hoverListeners: map[Component]map[int]func(bool){},
		parentChange:   map[Component]map[int]func(){},
		childrenChange: map[Component]map[int]func(Component){},
	}
}

func (k *Kit) Focus() FocusAuthority         { return k }
func (k *Kit) Hover() HoverAuthority         { return k }
func (k *Kit) Hierarchy() HierarchyAuthority { return k }

func (k *Kit) IsFocusOwner(c Component) bool {
	return k.focusOwner == c && c != nil
}

func (k *Kit) OnFocusChange(c Component, fn func(bool)) func() {
	return addListener(k, k.focusListeners, c, fn)
}

func (k *Kit) OnGlobalFocusChange(fn func(old, current Component)) func() {
	k.nextID++
	id := k.nextID
	k.globalFocus[id] = fn
	return func() { delete(k.globalFocus, id) }
}

func (k *Kit) OnHoverChange(c Component, fn func(bool)) func() {
	return addListener(k, k.hoverListeners, c, fn)
}

func (k *Kit) OnParentChange(c Component, fn func()) func() {
	return addListener(k, k.parentChange, c, fn)
}

func (k *Kit) OnChildrenChange(parent Component, fn func(Component)) func() {
	return addListener(k, k.childrenChange, parent, fn)
}

func addListener[F any](k *Kit, m map[Component]map[int]F, c Component, fn F) func() {
	k.nextID++
	id := k.nextID
	if m[c] == nil {
		m[c] = map[int]F{}
	}
	m[c][id] = fn
	return func() { delete(m[c], id) }
}

// SetFocus moves keyboard focus to the given component (or nil to clear it),
// notifying the previous owner, the new owner and all global listeners.
func (k *Kit) SetFocus(c Component) {
	old := k.focusOwner
	if old == c {
		return
	}
	k.focusOwner = c
	if old != nil {
		for _, fn := range k.focusListeners[old] {
			fn(false)
		}
	}
	if c != nil {
		for _, fn := range k.focusListeners[c] {
			fn(true)
		}
	}
	for _, fn := range k.globalFocus {
		fn(old, c)
	}
}

// SetHover delivers a pointer enter or exit notification for the component.
func (k *Kit) SetHover(c Component, hover bool) {
	for _, fn := range k.hoverListeners[c] {
		fn(hover)
	}
}

// Widget is a basic headless component. Fields may be set directly before
// (or between) event deliveries; tree structure changes must go through
// [Widget.AddChild] and [Widget.RemoveChild] so listeners fire.
type Widget struct {
	kit      *Kit
	parent   Component
	children []Component

	// Name identifies the widget in logs and tests.
	Name string

	// Disabled inverts the default enabled state.
	Disabled bool

	// RTL sets right-to-left text direction.
	RTL bool

	// Face is the font face for text; nil falls back to a basic fixed face.
	Face font.Face

	// FG is the foreground color; the zero value paints opaque black.
	FG color.RGBA

	// States are custom decoration states contributed by the widget.
	States []states.State

	// Label is the widget text.
	Label string

	// MnemonicPos is the rune index of the mnemonic in Label, or -1.
	MnemonicPos int

	// Image is the widget icon; nil means none.
	Image image.Image

	// Accel is the accelerator text; empty means no accelerator assigned.
	Accel string

	// PopupMenu marks the widget as a popup menu container.
	PopupMenu bool

	// Grouped marks the widget as a container that groups its children.
	Grouped bool

	// Painter is the decoration resolver attached to this widget, exposed
	// to descendants for in-focused-parent resolution.
	Painter StateReporter

	// Rich builds rich-markup views; nil disables markup rendering.
	Rich func(text string, face font.Face, fg color.RGBA) RichView

	// Relayouts and Repaints count update requests, for tests.
	Relayouts int
	Repaints  int
}

// NewWidget returns a new widget registered with the kit.
func (k *Kit) NewWidget(name string) *Widget {
	return &Widget{kit: k, Name: name, MnemonicPos: -1}
}

func (w *Widget) Enabled() bool     { return !w.Disabled }
func (w *Widget) LeftToRight() bool { return !w.RTL }
func (w *Widget) Parent() Component { return w.parent }

func (w *Widget) Children() []Component { return w.children }

func (w *Widget) FontFace() font.Face {
	if w.Face != nil {
		return w.Face
	}
	return basicfont.Face7x13
}

func (w *Widget) Foreground() color.RGBA {
	if w.FG == (color.RGBA{}) {
		return color.RGBA{A: 255}
	}
	return w.FG
}

func (w *Widget) Relayout() { w.Relayouts++ }
func (w *Widget) Repaint()  { w.Repaints++ }

func (w *Widget) DecorationStates() []states.State { return w.States }
func (w *Widget) Text() string                     { return w.Label }
func (w *Widget) MnemonicIndex() int               { return w.MnemonicPos }
func (w *Widget) Icon() image.Image                { return w.Image }
func (w *Widget) AcceleratorText() string          { return w.Accel }
func (w *Widget) IsPopup() bool                    { return w.PopupMenu }
func (w *Widget) GroupsChildren() bool             { return w.Grouped }

func (w *Widget) DecorationPainter() StateReporter { return w.Painter }

func (w *Widget) RichView(text string, face font.Face, fg color.RGBA) RichView {
	if w.Rich == nil {
		return nil
	}
	return w.Rich(text, face, fg)
}

// AddChild appends child to the widget, reparenting it and notifying
// hierarchy listeners.
func (w *Widget) AddChild(child *Widget) {
	if old, ok := child.parent.(*Widget); ok {
		old.RemoveChild(child)
	}
	child.parent = w
	w.children = append(w.children, child)
	for _, fn := range w.kit.parentChange[Component(child)] {
		fn()
	}
	for _, fn := range w.kit.childrenChange[Component(w)] {
		fn(child)
	}
}

// RemoveChild removes child from the widget, clearing its parent and
// notifying hierarchy listeners.
func (w *Widget) RemoveChild(child *Widget) {
	for i, c := range w.children {
		if c == Component(child) {
			w.children = append(w.children[:i], w.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	for _, fn := range w.kit.parentChange[Component(child)] {
		fn()
	}
	for _, fn := range w.kit.childrenChange[Component(w)] {
		fn(child)
	}
}
