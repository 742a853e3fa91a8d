// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import (
	"image"
	"image/color"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/content"
	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/layout"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/states"
	"github.com/veneerui/veneer/styles/sides"
)

// Box is the standard rectangular decoration: an optional rounded
// background and border around padded contents arranged by a layout. All
// visual fields are optional; unset fields inherit through merging.
type Box struct {

	// Id is the unique fragment identifier within the style.
	Id string

	// When lists the states required for this fragment to apply.
	When []states.State

	// Overwrite makes this fragment's fields replace accumulated values
	// even when unset.
	Overwrite bool

	// Visible hides the whole decoration when explicitly false.
	// Defaults to true.
	Visible *bool

	// Opacity is a composite alpha multiplier in [0, 1]. Defaults to 1.
	Opacity *float32

	// Background is the fill color; unset paints no background.
	Background *color.RGBA

	// BorderColor is the outline color; unset paints no border.
	BorderColor *color.RGBA

	// BorderWidth is the outline width in pixels. Defaults to 0.
	BorderWidth *float32

	// Round is the corner rounding of background and border. Defaults to 0.
	Round *int

	// Padding is the inner padding between the border and the contents.
	Padding *sides.Ints

	// Contents are the paintable fragments placed within the padded bounds.
	Contents []content.Content

	// Layout arranges the contents into regions; without one every content
	// paints across the full padded bounds.
	Layout layout.Layout

	section bool
	states  states.Set
}

func (b *Box) ID() string      { return b.Id }
func (b *Box) SetID(id string) { b.Id = id }
func (b *Box) Kind() string    { return "box" }

func (b *Box) States() []states.State { return b.When }

func (b *Box) UsesState(state states.State) bool {
	return slices.Contains(b.When, state)
}

func (b *Box) ApplicableTo(set states.Set) bool {
	return set.ContainsAll(b.When)
}

func (b *Box) IsSection() bool             { return b.section }
func (b *Box) SetSection(section bool)     { b.section = section }
func (b *Box) UpdateStates(set states.Set) { b.states = set }

func (b *Box) Activate(c host.Component) {
	for _, ct := range b.Contents {
		ct.Activate(c)
	}
}

func (b *Box) Deactivate(c host.Component) {
	for _, ct := range b.Contents {
		ct.Deactivate(c)
	}
}

func (b *Box) Clone() Decoration {
	n := &Box{
		Id:          b.Id,
		When:        slices.Clone(b.When),
		Overwrite:   b.Overwrite,
		Visible:     opt.Clone(b.Visible),
		Opacity:     opt.Clone(b.Opacity),
		Background:  opt.Clone(b.Background),
		BorderColor: opt.Clone(b.BorderColor),
		BorderWidth: opt.Clone(b.BorderWidth),
		Round:       opt.Clone(b.Round),
		Padding:     opt.Clone(b.Padding),
		section:     b.section,
		states:      b.states.Clone(),
	}
	for _, ct := range b.Contents {
		n.Contents = append(n.Contents, ct.Clone())
	}
	if b.Layout != nil {
		n.Layout = b.Layout.Clone()
	}
	return n
}

func (b *Box) Merge(other Decoration) Decoration {
	o, ok := other.(*Box)
	if !ok {
		slog.Error("decor: cannot merge decorations of different kinds",
			"kind", b.Kind(), "other", other.Kind())
		return b
	}
	ow := o.Overwrite
	b.Visible = opt.Merge(b.Visible, opt.Clone(o.Visible), ow)
	b.Opacity = opt.Merge(b.Opacity, opt.Clone(o.Opacity), ow)
	b.Background = opt.Merge(b.Background, opt.Clone(o.Background), ow)
	b.BorderColor = opt.Merge(b.BorderColor, opt.Clone(o.BorderColor), ow)
	b.BorderWidth = opt.Merge(b.BorderWidth, opt.Clone(o.BorderWidth), ow)
	b.Round = opt.Merge(b.Round, opt.Clone(o.Round), ow)
	b.Padding = opt.Merge(b.Padding, opt.Clone(o.Padding), ow)
	b.mergeContents(o)
	b.mergeLayout(o)
	return b
}

// mergeContents merges incoming contents into the accumulated list:
// fragments matching by kind and constraint merge pairwise, new ones are
// appended. An overwriting fragment replaces the accumulated list wholesale.
func (b *Box) mergeContents(o *Box) {
	if o.Overwrite {
		b.Contents = nil
		for _, oc := range o.Contents {
			b.Contents = append(b.Contents, oc.Clone())
		}
		return
	}
	for _, oc := range o.Contents {
		i := slices.IndexFunc(b.Contents, func(ct content.Content) bool {
			return ct.Kind() == oc.Kind() && ct.Constraint() == oc.Constraint()
		})
		if i >= 0 {
			b.Contents[i] = b.Contents[i].Merge(oc)
		} else {
			b.Contents = append(b.Contents, oc.Clone())
		}
	}
}

// mergeLayout merges the incoming layout into the accumulated one when the
// kinds match and replaces it otherwise.
func (b *Box) mergeLayout(o *Box) {
	if o.Layout == nil {
		if o.Overwrite {
			b.Layout = nil
		}
		return
	}
	if b.Layout != nil && !o.Overwrite && b.Layout.Kind() == o.Layout.Kind() {
		b.Layout = b.Layout.Merge(o.Layout.Clone())
		return
	}
	b.Layout = o.Layout.Clone()
}

func (b *Box) visible() bool        { return opt.Or(b.Visible, true) }
func (b *Box) opacity() float32     { return opt.Or(b.Opacity, 1) }
func (b *Box) borderWidth() float32 { return opt.Or(b.BorderWidth, 0) }
func (b *Box) round() int           { return opt.Or(b.Round, 0) }

func (b *Box) padding() sides.Ints {
	if b.Padding != nil {
		return *b.Padding
	}
	return sides.Ints{}
}

func (b *Box) BorderInsets(c host.Component) sides.Ints {
	bw := 0
	if b.BorderColor != nil {
		bw = int(math32.Ceil(b.borderWidth()))
	}
	return sides.NewInts(bw).Add(b.padding())
}

// contentsAt returns the contents occupying the given layout region.
func (b *Box) contentsAt(constraint string) []content.Content {
	var out []content.Content
	for _, ct := range b.Contents {
		if ct.Constraint() == constraint {
			out = append(out, ct)
		}
	}
	return out
}

// EmptyAt implements [layout.Source].
func (b *Box) EmptyAt(c host.Component, constraint string) bool {
	for _, ct := range b.contentsAt(constraint) {
		if !ct.Empty(c) {
			return false
		}
	}
	return true
}

// PreferredSizeAt implements [layout.Source].
func (b *Box) PreferredSizeAt(c host.Component, constraint string, available image.Point) image.Point {
	ps := image.Point{}
	for _, ct := range b.contentsAt(constraint) {
		if ct.Empty(c) {
			continue
		}
		cs := ct.PreferredSize(c, available)
		ps.X = max(ps.X, cs.X)
		ps.Y = max(ps.Y, cs.Y)
	}
	return ps
}

func (b *Box) PreferredSize(c host.Component, available image.Point) image.Point {
	insets := b.BorderInsets(c).Size()
	inner := available.Sub(insets)
	ps := image.Point{}
	if b.Layout != nil {
		ps = b.Layout.PreferredSize(c, b, inner)
	} else {
		for _, ct := range b.Contents {
			if ct.Empty(c) {
				continue
			}
			cs := ct.PreferredSize(c, inner)
			ps.X = max(ps.X, cs.X)
			ps.Y = max(ps.Y, cs.Y)
		}
	}
	return ps.Add(insets)
}

func (b *Box) Paint(p paint.Painter, c host.Component, bounds image.Rectangle) {
	if !b.visible() {
		return
	}
	oa := p.Alpha()
	oc := p.Color()
	os := p.Stroke()
	p.SetAlpha(oa * b.opacity())

	if b.Background != nil {
		p.SetColor(*b.Background)
		p.FillRoundRect(bounds, b.round())
	}
	if b.BorderColor != nil && b.borderWidth() > 0 {
		p.SetColor(*b.BorderColor)
		p.SetStroke(paint.Stroke{Width: b.borderWidth()})
		// The stroke stays inside the bounds.
		p.StrokeRoundRect(image.Rectangle{Min: bounds.Min, Max: bounds.Max.Sub(image.Pt(1, 1))}, b.round())
	}

	inner := b.BorderInsets(c).Inset(bounds)
	b.paintContents(p, c, inner)

	p.SetStroke(os)
	p.SetColor(oc)
	p.SetAlpha(oa)
}

func (b *Box) paintContents(p paint.Painter, c host.Component, inner image.Rectangle) {
	var data layout.Data
	if b.Layout != nil {
		data = b.Layout.LayoutContent(c, b, inner)
	}
	for _, ct := range b.Contents {
		if ct.Empty(c) {
			continue
		}
		r := inner
		if b.Layout != nil && ct.Constraint() != "" {
			var ok bool
			r, ok = data[ct.Constraint()]
			if !ok {
				continue
			}
		}
		ct.Paint(p, c, r)
	}
}
