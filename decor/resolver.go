// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"image"
	"log/slog"
	"runtime"
	"strings"

	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/states"
	"github.com/veneerui/veneer/styles"
	"github.com/veneerui/veneer/styles/sides"
)

// Resolver tracks the decoration states of one component and resolves the
// effective decoration for the current state set. Resolution is cached on
// two levels: per canonical state key and per applicable fragment
// combination, so equal state sets and state sets selecting the same
// fragments share one decoration instance.
//
// A resolver subscribes only to the toolkit notifications its fragments can
// react to: the focus listener is installed only when some fragment uses the
// focused state, and so on. All methods must be called from the toolkit's
// event loop; the resolver is not safe for concurrent use.
type Resolver struct {

	// ExtraStates contributes additional states beyond the built-in ones
	// and the component's own. Optional.
	ExtraStates func() []states.State

	kit         host.Toolkit
	decorations Decorations
	sections    []*Resolver

	comp      host.Component
	installed bool
	section   bool

	states  states.Set
	cache   *decorationCache
	current Decoration

	focused         bool
	inFocusedParent bool
	hover           bool

	removeFocus       func()
	removeGlobalFocus func()
	removeHover       func()
	removeParent      func()
	removeChildren    func()
}

// NewResolver returns a resolver over the given fragment list, consuming
// toolkit notifications through kit.
func NewResolver(kit host.Toolkit, decorations Decorations) *Resolver {
	return &Resolver{
		kit:         kit,
		decorations: decorations,
		cache:       newDecorationCache(),
	}
}

// AddSection attaches a section resolver covering a part of the component.
// Sections are installed and updated together with their owner and never
// subscribe to toolkit notifications themselves; their fragments do count
// when the owner decides which notifications it needs.
func (r *Resolver) AddSection(s *Resolver) {
	s.section = true
	r.sections = append(r.sections, s)
}

// Sections returns the attached section resolvers.
func (r *Resolver) Sections() []*Resolver { return r.sections }

// UsesState reports whether any fragment of this resolver or its sections
// requires the given state. Part of [host.StateReporter].
func (r *Resolver) UsesState(state states.State) bool {
	if r.decorations.UsesState(state) {
		return true
	}
	for _, s := range r.sections {
		if s.UsesState(state) {
			return true
		}
	}
	return false
}

// Focused reports the tracked focus flag. Part of [host.StateReporter].
func (r *Resolver) Focused() bool { return r.focused }

// States returns a copy of the current resolved state set.
func (r *Resolver) States() states.Set { return r.states.Clone() }

// Install binds the resolver to the component: it captures the initial
// focus and hover states, subscribes to the toolkit notifications its
// fragments use, and activates the initial decoration.
func (r *Resolver) Install(c host.Component) {
	if r.installed {
		slog.Error("decor: resolver installed twice")
		return
	}
	r.comp = c
	r.installed = true

	r.focused = r.kit.Focus().IsFocusOwner(c)
	r.inFocusedParent = r.computeInFocusedParent()
	r.hover = false

	r.subscribeStateListeners()
	r.removeParent = r.kit.Hierarchy().OnParentChange(c, r.parentChanged)
	r.subscribeSiblings()

	r.states = r.collectStates()
	r.installSections()
	r.current = r.Decoration()
	if r.current != nil {
		r.current.Activate(c)
	}
}

func (r *Resolver) installSections() {
	for _, s := range r.sections {
		s.comp = r.comp
		s.installed = true
		s.states = r.sectionStates(s)
		s.current = s.Decoration()
		if s.current != nil {
			s.current.Activate(s.comp)
		}
	}
}

// Uninstall deactivates the current decoration, removes all toolkit
// subscriptions and drops all cached state.
func (r *Resolver) Uninstall() {
	if !r.installed {
		return
	}
	for _, s := range r.sections {
		if s.current != nil {
			s.current.Deactivate(s.comp)
			s.current = nil
		}
		s.cache.invalidate()
		s.states = nil
		s.installed = false
		s.comp = nil
	}
	if r.current != nil {
		r.current.Deactivate(r.comp)
		r.current = nil
	}
	r.unsubscribeStateListeners()
	for _, remove := range []func(){r.removeParent, r.removeChildren} {
		if remove != nil {
			remove()
		}
	}
	r.removeParent, r.removeChildren = nil, nil
	r.cache.invalidate()
	r.states = nil
	r.installed = false
	r.comp = nil
}

// subscribeStateListeners installs the focus, global focus and hover
// subscriptions the fragments (including section fragments) can react to.
// The predicate is evaluated here once; it changes only with the fragment
// list itself.
func (r *Resolver) subscribeStateListeners() {
	if r.UsesState(states.Focused) || r.UsesState(states.InFocusedParent) {
		r.removeFocus = r.kit.Focus().OnFocusChange(r.comp, r.focusChanged)
	}
	if r.UsesState(states.InFocusedParent) {
		r.removeGlobalFocus = r.kit.Focus().OnGlobalFocusChange(r.globalFocusChanged)
	}
	if r.UsesState(states.Hover) {
		r.removeHover = r.kit.Hover().OnHoverChange(r.comp, r.hoverChanged)
	}
}

func (r *Resolver) unsubscribeStateListeners() {
	for _, remove := range []func(){r.removeFocus, r.removeGlobalFocus, r.removeHover} {
		if remove != nil {
			remove()
		}
	}
	r.removeFocus, r.removeGlobalFocus, r.removeHover = nil, nil, nil
}

// SetDecorations replaces the fragment list, as on a skin change. Both cache
// levels are invalidated together, the state subscriptions are re-evaluated
// against the new fragments and the active decoration is swapped.
func (r *Resolver) SetDecorations(ds Decorations) {
	r.decorations = ds
	r.cache.invalidate()
	if !r.installed {
		return
	}
	r.unsubscribeStateListeners()
	r.subscribeStateListeners()
	r.focused = r.kit.Focus().IsFocusOwner(r.comp)
	r.inFocusedParent = r.computeInFocusedParent()
	r.states = r.collectStates()
	d := r.Decoration()
	if d != r.current {
		if r.current != nil {
			r.current.Deactivate(r.comp)
		}
		r.current = d
		if d != nil {
			d.Activate(r.comp)
		}
	}
	r.comp.Relayout()
	r.comp.Repaint()
}

// Decoration resolves the effective decoration for the current state set,
// or nil when no fragment applies. Equal state sets return the same
// instance until the cache is invalidated.
func (r *Resolver) Decoration() Decoration {
	if !r.installed {
		panic(styles.Errorf("decoration resolver is not installed"))
	}
	if len(r.decorations) == 0 {
		return nil
	}
	key := r.states.Key()
	if d, ok := r.cache.byState[key]; ok {
		return d
	}
	d := r.build(r.decorations.ApplicableTo(r.states))
	r.cache.byState[key] = d
	return d
}

// build combines the applicable fragments into one effective decoration,
// reusing a previously built one when the fragment combination repeats.
func (r *Resolver) build(applicable Decorations) Decoration {
	if len(applicable) == 0 {
		return nil
	}
	// Mixed fragment kinds cannot merge; the kind of the most specific
	// (last) applicable fragment wins and fragments of other kinds are
	// dropped.
	kind := applicable[len(applicable)-1].Kind()
	var same Decorations
	for _, d := range applicable {
		if d.Kind() == kind {
			same = append(same, d)
		}
	}

	ids := make([]string, len(same))
	for i, d := range same {
		ids[i] = d.ID()
	}
	combo := strings.Join(ids, ";")
	if d, ok := r.cache.byCombo[combo]; ok {
		return d
	}

	built := same[0].Clone()
	for _, d := range same[1:] {
		built = built.Merge(d)
	}
	built.SetID(combo)
	built.SetSection(r.section)
	built.UpdateStates(r.states.Clone())
	r.cache.byCombo[combo] = built
	return built
}

// BorderInsets returns the border insets of the current decoration, or zero
// insets when no decoration applies.
func (r *Resolver) BorderInsets() sides.Ints {
	if d := r.Decoration(); d != nil {
		return d.BorderInsets(r.comp)
	}
	return sides.Ints{}
}

// PreferredSize returns the preferred size of the current decoration, or
// zero when no decoration applies.
func (r *Resolver) PreferredSize(available image.Point) image.Point {
	if d := r.Decoration(); d != nil {
		return d.PreferredSize(r.comp, available)
	}
	return image.Point{}
}

// Paint renders the current decoration, if any, into the given bounds.
func (r *Resolver) Paint(p paint.Painter, bounds image.Rectangle) {
	if d := r.Decoration(); d != nil {
		d.Paint(p, r.comp, bounds)
	}
}

// PropertyChanged tells the resolver that a component property possibly
// affecting decoration states changed. Hosts may forward arbitrary property
// changes; only state-relevant names trigger a recomputation, and the old
// and new values are not needed since the state set is recollected from the
// component.
func (r *Resolver) PropertyChanged(name string, old, current any) {
	switch name {
	case host.EnabledProperty, host.OrientationProperty, host.DecorationStatesProperty:
		r.updateDecorationState()
	}
}

func (r *Resolver) focusChanged(focused bool) {
	r.focused = focused
	r.inFocusedParent = r.computeInFocusedParent()
	r.updateDecorationState()
}

func (r *Resolver) globalFocusChanged(old, current host.Component) {
	ifp := r.computeInFocusedParent()
	if ifp != r.inFocusedParent {
		r.inFocusedParent = ifp
		r.updateDecorationState()
	}
}

func (r *Resolver) hoverChanged(hover bool) {
	r.hover = hover
	r.updateDecorationState()
}

func (r *Resolver) parentChanged() {
	r.subscribeSiblings()
	r.inFocusedParent = r.computeInFocusedParent()
	r.updateDecorationState()
	if g, ok := r.comp.Parent().(host.Grouping); ok && g.GroupsChildren() {
		r.comp.Relayout()
	}
}

// subscribeSiblings keeps a children listener on the current parent when it
// groups its children, since a sibling change then affects this component's
// border.
func (r *Resolver) subscribeSiblings() {
	if r.removeChildren != nil {
		r.removeChildren()
		r.removeChildren = nil
	}
	parent := r.comp.Parent()
	if parent == nil {
		return
	}
	if g, ok := parent.(host.Grouping); !ok || !g.GroupsChildren() {
		return
	}
	r.removeChildren = r.kit.Hierarchy().OnChildrenChange(parent, func(child host.Component) {
		if child != r.comp {
			r.comp.Relayout()
			r.comp.Repaint()
		}
	})
}

// computeInFocusedParent reports whether the component or a focus-tracking
// decorated ancestor currently holds focus. The nearest ancestor whose
// resolver uses the focused state decides.
func (r *Resolver) computeInFocusedParent() bool {
	if r.focused {
		return true
	}
	for a := r.comp.Parent(); a != nil; a = a.Parent() {
		d, ok := a.(host.Decorated)
		if !ok {
			continue
		}
		sr := d.DecorationPainter()
		if sr == nil || !sr.UsesState(states.Focused) {
			continue
		}
		return sr.Focused()
	}
	return false
}

// collectStates gathers the component's current decoration states into a
// canonical set.
func (r *Resolver) collectStates() states.Set {
	tokens := []states.State{states.State(runtime.GOOS)}
	if r.comp.Enabled() {
		tokens = append(tokens, states.Enabled)
	} else {
		tokens = append(tokens, states.Disabled)
	}
	if r.comp.LeftToRight() {
		tokens = append(tokens, states.LeftToRight)
	} else {
		tokens = append(tokens, states.RightToLeft)
	}
	if r.focused {
		tokens = append(tokens, states.Focused)
	}
	if r.inFocusedParent {
		tokens = append(tokens, states.InFocusedParent)
	}
	if r.hover {
		tokens = append(tokens, states.Hover)
	}
	if s, ok := r.comp.(host.Stateful); ok {
		tokens = append(tokens, s.DecorationStates()...)
	}
	if r.ExtraStates != nil {
		tokens = append(tokens, r.ExtraStates()...)
	}
	return states.NewSet(tokens...)
}

// sectionStates derives a section's state set from the owner's, adding the
// section's own extra states.
func (r *Resolver) sectionStates(s *Resolver) states.Set {
	set := r.states
	if s.ExtraStates != nil {
		set = set.Add(s.ExtraStates()...)
	}
	return set
}

// updateDecorationState recomputes the state set and, when it changed,
// swaps the active decoration and requests a relayout and repaint. Section
// resolvers are updated alongside their owner.
func (r *Resolver) updateDecorationState() {
	ns := r.collectStates()
	changed := r.applyStates(ns)
	for _, s := range r.sections {
		if s.applyStates(r.sectionStates(s)) {
			changed = true
		}
	}
	if !changed {
		return
	}
	r.comp.Relayout()
	r.comp.Repaint()
}

// applyStates installs a new state set and swaps decoration activation when
// the resolved instance changed. It reports whether the set changed.
func (r *Resolver) applyStates(ns states.Set) bool {
	if ns.Equal(r.states) {
		return false
	}
	r.states = ns
	d := r.Decoration()
	if d != r.current {
		if r.current != nil {
			r.current.Deactivate(r.comp)
		}
		r.current = d
		if d != nil {
			d.Activate(r.comp)
		}
	}
	return true
}
