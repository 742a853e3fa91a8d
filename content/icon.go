// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"image"
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/layout"
	"github.com/veneerui/veneer/paint"
)

// Icon paints the component icon centered within its region, scaling it
// down proportionally when the region is smaller than the icon.
type Icon struct {
	Base
}

// NewIcon returns an icon content placed in the icon region.
func NewIcon() *Icon {
	return &Icon{Base: Base{At: layout.Icon}}
}

func (ic *Icon) Kind() string { return "icon" }

func (ic *Icon) Clone() Content {
	n := &Icon{}
	if err := copier.CopyWithOption(n, ic, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("content: icon clone failed", "err", err)
	}
	return n
}

func (ic *Icon) Merge(other Content) Content {
	if _, ok := other.(*Icon); !ok {
		slog.Error("content: cannot merge contents of different kinds",
			"kind", ic.Kind(), "other", other.Kind())
	}
	return ic
}

func (ic *Icon) icon(c host.Component) image.Image {
	if i, ok := c.(host.Iconer); ok {
		return i.Icon()
	}
	return nil
}

func (ic *Icon) Empty(c host.Component) bool {
	return ic.icon(c) == nil
}

func (ic *Icon) PreferredSize(c host.Component, available image.Point) image.Point {
	img := ic.icon(c)
	if img == nil {
		return image.Point{}
	}
	b := img.Bounds()
	return image.Pt(b.Dx(), b.Dy())
}

func (ic *Icon) Paint(p paint.Painter, c host.Component, bounds image.Rectangle) {
	img := ic.icon(c)
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	// Scale down proportionally when the region is too small; never up.
	if w > bounds.Dx() || h > bounds.Dy() {
		sx := float32(bounds.Dx()) / float32(w)
		sy := float32(bounds.Dy()) / float32(h)
		s := min(sx, sy)
		w = int(float32(w) * s)
		h = int(float32(h) * s)
	}
	x := bounds.Min.X + (bounds.Dx()-w)/2
	y := bounds.Min.Y + (bounds.Dy()-h)/2
	p.DrawImage(img, image.Rect(x, y, x+w, y+h))
}
