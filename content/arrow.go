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
	"github.com/veneerui/veneer/layout"
	"github.com/veneerui/veneer/paint"
)

// Arrow paints the submenu arrow: a filled triangle pointing along the
// component text direction, centered within its region.
type Arrow struct {
	Base

	// Color is the arrow color; unset uses the component foreground.
	Color *color.RGBA

	// Width is the triangle width. Defaults to 8.
	Width *int

	// Height is the triangle height. Defaults to 8.
	Height *int
}

// NewArrow returns an arrow content placed in the arrow region.
func NewArrow() *Arrow {
	return &Arrow{Base: Base{At: layout.Arrow}}
}

func (a *Arrow) Kind() string { return "arrow" }

func (a *Arrow) Clone() Content {
	n := &Arrow{}
	if err := copier.CopyWithOption(n, a, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("content: arrow clone failed", "err", err)
	}
	return n
}

func (a *Arrow) Merge(other Content) Content {
	o, ok := other.(*Arrow)
	if !ok {
		slog.Error("content: cannot merge contents of different kinds",
			"kind", a.Kind(), "other", other.Kind())
		return a
	}
	ow := o.Overwrite
	a.Color = opt.Merge(a.Color, opt.Clone(o.Color), ow)
	a.Width = opt.Merge(a.Width, opt.Clone(o.Width), ow)
	a.Height = opt.Merge(a.Height, opt.Clone(o.Height), ow)
	return a
}

func (a *Arrow) width() int  { return opt.Or(a.Width, 8) }
func (a *Arrow) height() int { return opt.Or(a.Height, 8) }

func (a *Arrow) color(c host.Component) color.RGBA {
	if a.Color != nil {
		return *a.Color
	}
	return c.Foreground()
}

func (a *Arrow) Empty(c host.Component) bool { return false }

func (a *Arrow) PreferredSize(c host.Component, available image.Point) image.Point {
	return image.Pt(a.width(), a.height())
}

func (a *Arrow) Paint(p paint.Painter, c host.Component, bounds image.Rectangle) {
	w, h := a.width(), a.height()
	x := bounds.Min.X + (bounds.Dx()-w)/2
	y := bounds.Min.Y + (bounds.Dy()-h)/2
	oc := p.Color()
	p.SetColor(a.color(c))
	if c.LeftToRight() {
		p.FillPolygon(
			image.Pt(x, y),
			image.Pt(x+w, y+h/2),
			image.Pt(x, y+h),
		)
	} else {
		p.FillPolygon(
			image.Pt(x+w, y),
			image.Pt(x, y+h/2),
			image.Pt(x+w, y+h),
		)
	}
	p.SetColor(oc)
}
