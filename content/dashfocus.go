// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/styles"
)

// DashFocus paints a dashed focus ring along the content bounds. The color
// has no default and must be configured by the style.
type DashFocus struct {
	Base

	// Round is the corner rounding of the ring. Defaults to 2.
	Round *int

	// Stroke is the outline style. Defaults to a hairline with a 1-on
	// 2-off dash pattern.
	Stroke *paint.Stroke

	// Color is the ring color. Required.
	Color *color.RGBA
}

func (d *DashFocus) Kind() string { return "dash-focus" }

func (d *DashFocus) Clone() Content {
	n := &DashFocus{}
	if err := copier.CopyWithOption(n, d, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("content: dash focus clone failed", "err", err)
	}
	return n
}

func (d *DashFocus) Merge(other Content) Content {
	o, ok := other.(*DashFocus)
	if !ok {
		slog.Error("content: cannot merge contents of different kinds",
			"kind", d.Kind(), "other", other.Kind())
		return d
	}
	ow := o.Overwrite
	d.Round = opt.Merge(d.Round, opt.Clone(o.Round), ow)
	d.Stroke = opt.Merge(d.Stroke, cloneStroke(o.Stroke), ow)
	d.Color = opt.Merge(d.Color, opt.Clone(o.Color), ow)
	return d
}

func cloneStroke(s *paint.Stroke) *paint.Stroke {
	if s == nil {
		return nil
	}
	n := *s
	n.Dashes = append([]float32(nil), s.Dashes...)
	return &n
}

func (d *DashFocus) round() int { return opt.Or(d.Round, 2) }

func (d *DashFocus) stroke() paint.Stroke {
	if d.Stroke != nil {
		return *d.Stroke
	}
	return paint.Stroke{Width: 1, Dashes: []float32{1, 2}}
}

func (d *DashFocus) color() color.RGBA {
	if d.Color == nil {
		panic(styles.Errorf("focus color must be specified"))
	}
	return *d.Color
}

// Empty always reports false; the ring paints whenever configured.
func (d *DashFocus) Empty(c host.Component) bool { return false }

// PreferredSize is zero; the ring adapts to whatever bounds it is given.
func (d *DashFocus) PreferredSize(c host.Component, available image.Point) image.Point {
	return image.Point{}
}

func (d *DashFocus) Paint(p paint.Painter, c host.Component, bounds image.Rectangle) {
	oc := p.Color()
	os := p.Stroke()
	p.SetColor(d.color())
	p.SetStroke(d.stroke())
	// The stroke stays inside the bounds, so the outline rectangle stops
	// one pixel short of the far edges.
	p.StrokeRoundRect(image.Rectangle{Min: bounds.Min, Max: bounds.Max.Sub(image.Pt(1, 1))}, d.round())
	p.SetStroke(os)
	p.SetColor(oc)
}
