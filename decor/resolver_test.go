// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"image"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/content"
	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/states"
)

// probe is a test content counting activation swaps across clones.
type probe struct {
	content.Base
	acts   *int
	deacts *int
}

func newProbe() *probe {
	return &probe{acts: new(int), deacts: new(int)}
}

func (p *probe) Kind() string { return "probe" }

func (p *probe) Clone() content.Content {
	n := *p
	return &n
}

func (p *probe) Merge(other content.Content) content.Content { return p }
func (p *probe) Empty(c host.Component) bool                 { return false }

func (p *probe) PreferredSize(c host.Component, available image.Point) image.Point {
	return image.Point{}
}

func (p *probe) Paint(pt paint.Painter, c host.Component, bounds image.Rectangle) {}

func (p *probe) Activate(c host.Component)   { *p.acts++ }
func (p *probe) Deactivate(c host.Component) { *p.deacts++ }

func hoverStyle() Decorations {
	return NewDecorations(
		&Box{Background: opt.Of(blue)},
		&Box{When: []states.State{states.Hover}, Background: opt.Of(red)},
	)
}

func TestResolverPanicsBeforeInstall(t *testing.T) {
	r := NewResolver(host.NewKit(), hoverStyle())
	assert.Panics(t, func() { r.Decoration() })
}

func TestResolverBaseStates(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	r.Install(w)

	s := r.States()
	assert.True(t, s.Uses(states.Enabled))
	assert.True(t, s.Uses(states.LeftToRight))
	assert.True(t, s.Uses(states.State(runtime.GOOS)))
	assert.False(t, s.Uses(states.Hover))
}

func TestResolverStateCacheIdentity(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	r.Install(w)

	d0 := r.Decoration()
	assert.NotNil(t, d0)
	assert.Same(t, d0, r.Decoration())

	kit.SetHover(w, true)
	d1 := r.Decoration()
	assert.NotSame(t, d0, d1)
	assert.Equal(t, red, *d1.(*Box).Background)

	// Returning to the previous state set yields the identical instance.
	kit.SetHover(w, false)
	assert.Same(t, d0, r.Decoration())
	assert.Equal(t, blue, *d0.(*Box).Background)
}

func TestResolverComboCacheSharing(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	r.Install(w)

	d0 := r.Decoration()
	key0 := r.States().Key()

	// A custom state no fragment uses changes the state set but selects the
	// same fragment combination, sharing the built decoration.
	w.States = []states.State{"checked"}
	r.PropertyChanged(host.DecorationStatesProperty, nil, nil)
	assert.NotEqual(t, key0, r.States().Key())
	assert.Same(t, d0, r.Decoration())
}

func TestResolverNoApplicableFragments(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, NewDecorations(
		&Box{When: []states.State{states.Hover}, Background: opt.Of(red)},
	))
	r.Install(w)
	assert.Nil(t, r.Decoration())
	assert.Equal(t, image.Point{}, r.PreferredSize(image.Pt(100, 20)))

	kit.SetHover(w, true)
	assert.NotNil(t, r.Decoration())
}

func TestResolverHoverListenerConditional(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	// No fragment uses the hover state, so hover events are not subscribed.
	r := NewResolver(kit, NewDecorations(&Box{Background: opt.Of(blue)}))
	r.Install(w)

	kit.SetHover(w, true)
	assert.False(t, r.States().Uses(states.Hover))
	assert.Zero(t, w.Repaints)
}

func TestResolverUpdateRequests(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	r.Install(w)

	kit.SetHover(w, true)
	assert.Equal(t, 1, w.Relayouts)
	assert.Equal(t, 1, w.Repaints)

	// A notification that does not change the state set requests nothing.
	r.PropertyChanged(host.OrientationProperty, false, true)
	assert.Equal(t, 1, w.Relayouts)
	assert.Equal(t, 1, w.Repaints)

	w.RTL = true
	r.PropertyChanged(host.OrientationProperty, false, true)
	assert.Equal(t, 2, w.Repaints)
	assert.True(t, r.States().Uses(states.RightToLeft))
}

func TestResolverEnabledProperty(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	r.Install(w)

	w.Disabled = true
	r.PropertyChanged(host.EnabledProperty, true, false)
	s := r.States()
	assert.True(t, s.Uses(states.Disabled))
	assert.False(t, s.Uses(states.Enabled))
}

func TestResolverActivationLifecycle(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	pr := newProbe()
	r := NewResolver(kit, NewDecorations(
		&Box{Background: opt.Of(blue), Contents: []content.Content{pr}},
		&Box{When: []states.State{states.Hover}, Background: opt.Of(red)},
	))
	r.Install(w)
	assert.Equal(t, 1, *pr.acts)

	kit.SetHover(w, true)
	assert.Equal(t, 1, *pr.deacts)
	assert.Equal(t, 2, *pr.acts)

	r.Uninstall()
	assert.Equal(t, 2, *pr.deacts)
}

func TestResolverUninstall(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	r.Install(w)
	r.Uninstall()

	assert.Panics(t, func() { r.Decoration() })
	// Listeners are gone; hover events no longer reach the resolver.
	assert.NotPanics(t, func() { kit.SetHover(w, true) })
	assert.Zero(t, w.Repaints)
}

func TestResolverFocusState(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, NewDecorations(
		&Box{Background: opt.Of(blue)},
		&Box{When: []states.State{states.Focused}, BorderColor: opt.Of(green)},
	))
	r.Install(w)
	assert.False(t, r.Focused())

	kit.SetFocus(w)
	assert.True(t, r.Focused())
	assert.True(t, r.States().Uses(states.Focused))
	assert.NotNil(t, r.Decoration().(*Box).BorderColor)

	kit.SetFocus(nil)
	assert.False(t, r.States().Uses(states.Focused))
}

func TestResolverInFocusedParent(t *testing.T) {
	kit := host.NewKit()
	menu := kit.NewWidget("menu")
	item := kit.NewWidget("item")
	menu.AddChild(item)

	mr := NewResolver(kit, NewDecorations(
		&Box{When: []states.State{states.Focused}, BorderColor: opt.Of(green)},
	))
	mr.Install(menu)
	menu.Painter = mr

	ir := NewResolver(kit, NewDecorations(
		&Box{Background: opt.Of(blue)},
		&Box{When: []states.State{states.InFocusedParent}, Background: opt.Of(red)},
	))
	ir.Install(item)
	assert.False(t, ir.States().Uses(states.InFocusedParent))

	kit.SetFocus(menu)
	assert.True(t, ir.States().Uses(states.InFocusedParent))
	assert.Equal(t, red, *ir.Decoration().(*Box).Background)

	kit.SetFocus(nil)
	assert.False(t, ir.States().Uses(states.InFocusedParent))

	// The component owning focus itself is also in a focused parent.
	kit.SetFocus(item)
	assert.True(t, ir.States().Uses(states.InFocusedParent))
}

func TestResolverSections(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, hoverStyle())
	sec := NewResolver(kit, NewDecorations(
		&Box{Background: opt.Of(green)},
		&Box{When: []states.State{states.Hover}, Background: opt.Of(red)},
	))
	r.AddSection(sec)
	r.Install(w)

	sd := sec.Decoration()
	assert.NotNil(t, sd)
	assert.True(t, sd.IsSection())
	assert.False(t, r.Decoration().IsSection())
	assert.Equal(t, green, *sd.(*Box).Background)

	// Sections follow the owner's state updates.
	kit.SetHover(w, true)
	assert.Equal(t, red, *sec.Decoration().(*Box).Background)
}

func TestResolverSetDecorations(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, NewDecorations(&Box{Background: opt.Of(blue)}))
	r.Install(w)
	d0 := r.Decoration()

	// A skin change invalidates both cache levels and swaps the decoration;
	// the hover subscription appears with the new fragments.
	r.SetDecorations(hoverStyle())
	d1 := r.Decoration()
	assert.NotSame(t, d0, d1)
	assert.Equal(t, 1, w.Relayouts)
	assert.Equal(t, 1, w.Repaints)

	kit.SetHover(w, true)
	assert.Equal(t, red, *r.Decoration().(*Box).Background)
}

func TestResolverMixedKindsLastWins(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	r := NewResolver(kit, NewDecorations(
		&fakeDeco{id: "f"},
		&Box{Id: "b", Background: opt.Of(blue)},
	))
	r.Install(w)

	d := r.Decoration()
	b, ok := d.(*Box)
	assert.True(t, ok)
	assert.Equal(t, blue, *b.Background)
}

// fakeDeco is a minimal non-box decoration kind.
type fakeDeco struct {
	Box
	id string
}

func (f *fakeDeco) ID() string      { return f.id }
func (f *fakeDeco) SetID(id string) { f.id = id }
func (f *fakeDeco) Kind() string    { return "fake" }

func (f *fakeDeco) Clone() Decoration {
	n := *f
	return &n
}
