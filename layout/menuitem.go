// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image"
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/host"
)

// DefaultIconTextGap is the gap between the icon and text regions when the
// layout does not configure one.
const DefaultIconTextGap = 4

// MenuItem lays out the icon, text, accelerator and arrow regions of a menu
// item. The icon is placed from the leading edge; when the item sits inside
// a popup container, the arrow and then the accelerator are placed from the
// trailing edge; the text absorbs whatever width remains. Right-to-left
// direction mirrors all x coordinates. Unset fields inherit through merging.
type MenuItem struct {

	// Overwrite makes this fragment's fields replace accumulated values
	// even when unset.
	Overwrite bool

	// AlignTextByIcons widens the icon region to the maximum icon width
	// across sibling items in the same popup, producing a stable text
	// column. Defaults to true.
	AlignTextByIcons *bool

	// IconTextGap is the gap between the icon and text regions.
	// Defaults to [DefaultIconTextGap].
	IconTextGap *int

	// TextAcceleratorGap is the gap between the text and accelerator
	// regions. Defaults to 0.
	TextAcceleratorGap *int

	// TextArrowGap is the gap between the text and arrow regions.
	// Defaults to 0.
	TextArrowGap *int
}

func (m *MenuItem) Kind() string { return "menu-item" }

func (m *MenuItem) Clone() Layout {
	n := &MenuItem{}
	if err := copier.CopyWithOption(n, m, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("layout: menu item clone failed", "err", err)
	}
	return n
}

func (m *MenuItem) Merge(other Layout) Layout {
	o, ok := other.(*MenuItem)
	if !ok {
		slog.Error("layout: cannot merge layouts of different kinds",
			"kind", m.Kind(), "other", other.Kind())
		return m
	}
	ow := o.Overwrite
	m.AlignTextByIcons = opt.Merge(m.AlignTextByIcons, opt.Clone(o.AlignTextByIcons), ow)
	m.IconTextGap = opt.Merge(m.IconTextGap, opt.Clone(o.IconTextGap), ow)
	m.TextAcceleratorGap = opt.Merge(m.TextAcceleratorGap, opt.Clone(o.TextAcceleratorGap), ow)
	m.TextArrowGap = opt.Merge(m.TextArrowGap, opt.Clone(o.TextArrowGap), ow)
	return m
}

func (m *MenuItem) alignTextByIcons() bool { return opt.Or(m.AlignTextByIcons, true) }
func (m *MenuItem) iconTextGap() int       { return opt.Or(m.IconTextGap, DefaultIconTextGap) }
func (m *MenuItem) textAcceleratorGap() int {
	return opt.Or(m.TextAcceleratorGap, 0)
}
func (m *MenuItem) textArrowGap() int { return opt.Or(m.TextArrowGap, 0) }

// inPopup reports whether the component is placed within a popup container.
func inPopup(c host.Component) bool {
	p, ok := c.Parent().(host.Popup)
	return ok && p.IsPopup()
}

// maxIconWidth returns the icon width used for column alignment: the
// maximum icon width across the popup siblings when align-text-by-icons is
// enabled, the component's own icon width otherwise.
func (m *MenuItem) maxIconWidth(c host.Component) int {
	if m.alignTextByIcons() && inPopup(c) {
		mw := 0
		for _, sib := range c.Parent().Children() {
			ic, ok := sib.(host.Iconer)
			if !ok || ic.Icon() == nil {
				continue
			}
			mw = max(mw, ic.Icon().Bounds().Dx())
		}
		return mw
	}
	if ic, ok := c.(host.Iconer); ok && ic.Icon() != nil {
		return ic.Icon().Bounds().Dx()
	}
	return 0
}

// Empty additionally treats the accelerator region as empty when the
// component has no accelerator assigned, regardless of configured content.
func (m *MenuItem) Empty(c host.Component, src Source, constraint string) bool {
	if constraint == Accelerator {
		a, ok := c.(host.Accelerated)
		if !ok || a.AcceleratorText() == "" {
			return true
		}
	}
	return src.EmptyAt(c, constraint)
}

func (m *MenuItem) LayoutContent(c host.Component, src Source, bounds image.Rectangle) Data {
	data := make(Data, 4)
	ltr := c.LeftToRight()
	avail := image.Pt(bounds.Dx(), bounds.Dy())
	x := bounds.Min.X
	if !ltr {
		x = bounds.Max.X
	}
	hasIcon := !m.Empty(c, src, Icon)
	if hasIcon || m.alignTextByIcons() {
		ips := src.PreferredSizeAt(c, Icon, avail)
		if m.alignTextByIcons() {
			ips.X = max(ips.X, m.maxIconWidth(c))
		}
		if !ltr {
			x -= ips.X
		}
		if hasIcon {
			data[Icon] = rectAt(x, bounds.Min.Y, ips.X, bounds.Dy())
		}
		gap := m.iconTextGap()
		if ltr {
			x += ips.X + gap
		} else {
			x -= gap
		}
		avail.X -= ips.X + gap
	}
	if inPopup(c) {
		if !m.Empty(c, src, Arrow) {
			aps := src.PreferredSizeAt(c, Arrow, avail)
			ax := x + avail.X - aps.X
			if !ltr {
				ax = x - avail.X
			}
			data[Arrow] = rectAt(ax, bounds.Min.Y, aps.X, bounds.Dy())
			avail.X -= aps.X + m.textArrowGap()
		}
		if !m.Empty(c, src, Accelerator) {
			aps := src.PreferredSizeAt(c, Accelerator, avail)
			ax := x + avail.X - aps.X
			if !ltr {
				ax = x - avail.X
			}
			data[Accelerator] = rectAt(ax, bounds.Min.Y, aps.X, bounds.Dy())
			avail.X -= aps.X + m.textAcceleratorGap()
		}
	}
	if !m.Empty(c, src, Text) {
		// Text absorbs all leftover width; never negative, overlap is
		// deferred to painting and the text truncation flag.
		w := max(avail.X, 0)
		if !ltr {
			x -= w
		}
		data[Text] = rectAt(x, bounds.Min.Y, w, bounds.Dy())
	}
	return data
}

func (m *MenuItem) PreferredSize(c host.Component, src Source, available image.Point) image.Point {
	ps := image.Point{}
	if !m.Empty(c, src, Icon) || m.alignTextByIcons() {
		ips := src.PreferredSizeAt(c, Icon, available)
		if m.alignTextByIcons() {
			ips.X = max(ips.X, m.maxIconWidth(c))
		}
		ps.X += ips.X + m.iconTextGap()
		ps.Y = max(ps.Y, ips.Y)
	}
	if !m.Empty(c, src, Text) {
		tps := src.PreferredSizeAt(c, Text, available)
		ps.X += tps.X
		ps.Y = max(ps.Y, tps.Y)
	}
	if inPopup(c) {
		if !m.Empty(c, src, Accelerator) {
			aps := src.PreferredSizeAt(c, Accelerator, available)
			ps.X += aps.X + m.textAcceleratorGap()
			ps.Y = max(ps.Y, aps.Y)
		}
		if !m.Empty(c, src, Arrow) {
			aps := src.PreferredSizeAt(c, Arrow, available)
			ps.X += aps.X + m.textArrowGap()
			ps.Y = max(ps.Y, aps.Y)
		}
	}
	return ps
}

func rectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
