// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/host"
)

// stubSource reports fixed preferred sizes per region; regions without an
// entry are empty.
type stubSource map[string]image.Point

func (s stubSource) EmptyAt(c host.Component, constraint string) bool {
	_, ok := s[constraint]
	return !ok
}

func (s stubSource) PreferredSizeAt(c host.Component, constraint string, available image.Point) image.Point {
	return s[constraint]
}

func item(t *testing.T, popup bool) (*host.Kit, *host.Widget) {
	t.Helper()
	kit := host.NewKit()
	parent := kit.NewWidget("menu")
	parent.PopupMenu = popup
	w := kit.NewWidget("item")
	parent.AddChild(w)
	return kit, w
}

func TestLayoutLTR(t *testing.T) {
	_, w := item(t, false)
	m := &MenuItem{}
	src := stubSource{Icon: image.Pt(16, 16), Text: image.Pt(60, 13)}

	data := m.LayoutContent(w, src, image.Rect(0, 0, 200, 20))
	assert.Equal(t, image.Rect(0, 0, 16, 20), data[Icon])
	assert.Equal(t, image.Rect(20, 0, 200, 20), data[Text])
	assert.NotContains(t, data, Arrow)
	assert.NotContains(t, data, Accelerator)
}

func TestLayoutRTLMirrors(t *testing.T) {
	_, w := item(t, false)
	w.RTL = true
	m := &MenuItem{}
	src := stubSource{Icon: image.Pt(16, 16), Text: image.Pt(60, 13)}

	data := m.LayoutContent(w, src, image.Rect(0, 0, 200, 20))
	assert.Equal(t, image.Rect(184, 0, 200, 20), data[Icon])
	assert.Equal(t, image.Rect(0, 0, 180, 20), data[Text])
}

func TestLayoutPopupTrailingRegions(t *testing.T) {
	_, w := item(t, true)
	w.Accel = "Ctrl+S"
	m := &MenuItem{TextAcceleratorGap: opt.Of(2), TextArrowGap: opt.Of(2)}
	src := stubSource{
		Icon:        image.Pt(16, 16),
		Text:        image.Pt(60, 13),
		Accelerator: image.Pt(30, 13),
		Arrow:       image.Pt(8, 8),
	}

	data := m.LayoutContent(w, src, image.Rect(0, 0, 200, 20))
	assert.Equal(t, image.Rect(0, 0, 16, 20), data[Icon])
	assert.Equal(t, image.Rect(192, 0, 200, 20), data[Arrow])
	assert.Equal(t, image.Rect(160, 0, 190, 20), data[Accelerator])
	assert.Equal(t, image.Rect(20, 0, 158, 20), data[Text])
}

func TestLayoutOutsidePopupSkipsTrailingRegions(t *testing.T) {
	_, w := item(t, false)
	w.Accel = "Ctrl+S"
	m := &MenuItem{}
	src := stubSource{
		Text:        image.Pt(60, 13),
		Accelerator: image.Pt(30, 13),
		Arrow:       image.Pt(8, 8),
	}

	data := m.LayoutContent(w, src, image.Rect(0, 0, 200, 20))
	assert.NotContains(t, data, Arrow)
	assert.NotContains(t, data, Accelerator)
}

func TestLayoutEmptyAcceleratorWithoutShortcut(t *testing.T) {
	_, w := item(t, true)
	m := &MenuItem{}
	src := stubSource{Accelerator: image.Pt(30, 13)}

	assert.True(t, m.Empty(w, src, Accelerator))
	data := m.LayoutContent(w, src, image.Rect(0, 0, 200, 20))
	assert.NotContains(t, data, Accelerator)
}

func TestLayoutAlignTextByIcons(t *testing.T) {
	kit := host.NewKit()
	menu := kit.NewWidget("menu")
	menu.PopupMenu = true
	iconless := kit.NewWidget("iconless")
	withIcon := kit.NewWidget("withicon")
	withIcon.Image = image.NewRGBA(image.Rect(0, 0, 24, 24))
	menu.AddChild(iconless)
	menu.AddChild(withIcon)

	m := &MenuItem{}
	src := stubSource{Text: image.Pt(60, 13)}

	// The iconless item still reserves the sibling icon column.
	data := m.LayoutContent(iconless, src, image.Rect(0, 0, 200, 20))
	assert.NotContains(t, data, Icon)
	assert.Equal(t, image.Rect(28, 0, 200, 20), data[Text])

	off := &MenuItem{AlignTextByIcons: opt.Of(false)}
	data = off.LayoutContent(iconless, src, image.Rect(0, 0, 200, 20))
	assert.Equal(t, image.Rect(0, 0, 200, 20), data[Text])
}

func TestLayoutTextNeverNegative(t *testing.T) {
	_, w := item(t, true)
	w.Accel = "Ctrl+S"
	m := &MenuItem{}
	src := stubSource{
		Text:        image.Pt(60, 13),
		Accelerator: image.Pt(300, 13),
	}

	data := m.LayoutContent(w, src, image.Rect(0, 0, 100, 20))
	r := data[Text]
	assert.GreaterOrEqual(t, r.Dx(), 0)
}

func TestPreferredSize(t *testing.T) {
	_, w := item(t, true)
	w.Accel = "Ctrl+S"
	m := &MenuItem{TextAcceleratorGap: opt.Of(2)}
	src := stubSource{
		Icon:        image.Pt(16, 16),
		Text:        image.Pt(60, 13),
		Accelerator: image.Pt(30, 13),
		Arrow:       image.Pt(8, 8),
	}

	ps := m.PreferredSize(w, src, image.Pt(500, 50))
	// icon 16 + gap 4 + text 60 + accel 30 + gap 2 + arrow 8
	assert.Equal(t, image.Pt(120, 16), ps)
}

func TestMerge(t *testing.T) {
	a := &MenuItem{IconTextGap: opt.Of(4)}
	b := &MenuItem{IconTextGap: opt.Of(8), TextArrowGap: opt.Of(2)}
	m := a.Merge(b).(*MenuItem)
	assert.Equal(t, 8, *m.IconTextGap)
	assert.Equal(t, 2, *m.TextArrowGap)
	assert.Nil(t, m.AlignTextByIcons)

	ow := &MenuItem{Overwrite: true, TextArrowGap: opt.Of(1)}
	m = m.Merge(ow).(*MenuItem)
	assert.Nil(t, m.IconTextGap)
	assert.Equal(t, 1, *m.TextArrowGap)
}
