// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/paint"
)

func painted(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestTextPreferredSize(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	w.Label = "Save"

	tc := NewText()
	// Face7x13 advances 7 pixels per glyph and is 13 pixels tall.
	assert.Equal(t, image.Pt(28, 13), tc.PreferredSize(w, image.Pt(200, 20)))

	tc.Shadow = opt.Of(true)
	tc.ShadowSize = opt.Of(2)
	assert.Equal(t, image.Pt(32, 13), tc.PreferredSize(w, image.Pt(200, 20)))
}

func TestTextEmpty(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	tc := NewText()
	assert.True(t, tc.Empty(w))
	w.Label = "x"
	assert.False(t, tc.Empty(w))
}

func TestAcceleratorSource(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	w.Label = "Save"

	ac := NewAccelerator()
	assert.Equal(t, "accelerator-text", ac.Kind())
	assert.True(t, ac.Empty(w))
	w.Accel = "Ctrl+S"
	assert.False(t, ac.Empty(w))
	assert.Equal(t, image.Pt(42, 13), ac.PreferredSize(w, image.Pt(200, 20)))
}

func TestTextPaintsPlain(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	w.Label = "Hi"

	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	p := paint.NewImagePainter(img)
	NewText().Paint(p, w, img.Bounds())
	assert.Greater(t, painted(img), 0)
}

func TestTextMnemonicUnderline(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	w.Label = "File"
	w.MnemonicPos = 0
	w.FG = color.RGBA{R: 255, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	p := paint.NewImagePainter(img)
	NewText().Paint(p, w, img.Bounds())

	// Vertically centered baseline for a 20 pixel row with Face7x13.
	textY := 15
	for x := 0; x < 7; x++ {
		assert.Equal(t, w.FG, img.RGBAAt(x, textY+1), "underline pixel %d", x)
	}
	assert.Equal(t, color.RGBA{}, img.RGBAAt(8, textY+1))
}

func TestTextTruncation(t *testing.T) {
	face := basicfont.Face7x13
	assert.Equal(t, "Hello...", elideEnd(face, "Hello World", 56))
	assert.Equal(t, "Hell...", elideEnd(face, "Hello World", 55))
	assert.Equal(t, "...", elideEnd(face, "Hello", 20))
}

func TestTextShadowRequiresConfig(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	w.Label = "Hi"

	tc := NewText()
	tc.Shadow = opt.Of(true)
	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	p := paint.NewImagePainter(img)
	assert.Panics(t, func() { tc.PreferredSize(w, image.Pt(100, 20)) })
	tc.ShadowSize = opt.Of(2)
	assert.Panics(t, func() { tc.Paint(p, w, img.Bounds()) })
	tc.ShadowColor = opt.Of(color.RGBA{A: 255})
	assert.NotPanics(t, func() { tc.Paint(p, w, img.Bounds()) })
}

func TestIsMarkup(t *testing.T) {
	assert.True(t, IsMarkup("<html>x"))
	assert.True(t, IsMarkup("<HTML><b>x</b>"))
	assert.False(t, IsMarkup("plain"))
	assert.False(t, IsMarkup("x <html>"))
}

type stubView struct{}

func (stubView) PreferredSize() image.Point                    { return image.Pt(10, 10) }
func (stubView) Paint(p paint.Painter, bounds image.Rectangle) {}

func TestTextMarkupViewCaching(t *testing.T) {
	kit := host.NewKit()
	w := kit.NewWidget("item")
	w.Label = "<html><b>Hi</b>"
	builds := 0
	w.Rich = func(text string, face font.Face, fg color.RGBA) host.RichView {
		builds++
		return stubView{}
	}

	tc := NewText()
	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	p := paint.NewImagePainter(img)

	tc.Paint(p, w, img.Bounds())
	tc.Paint(p, w, img.Bounds())
	assert.Equal(t, 1, builds)

	w.Label = "<html><i>Other</i>"
	tc.Paint(p, w, img.Bounds())
	assert.Equal(t, 2, builds)

	// Deactivation drops the cached view.
	tc.Deactivate(w)
	tc.Paint(p, w, img.Bounds())
	assert.Equal(t, 3, builds)

	// Plain text leaves markup mode and clears the cache.
	w.Label = "plain"
	tc.Paint(p, w, img.Bounds())
	w.Label = "<html><i>Other</i>"
	tc.Paint(p, w, img.Bounds())
	assert.Equal(t, 4, builds)
}

func TestTextMergeAndClone(t *testing.T) {
	a := NewText()
	a.Color = opt.Of(color.RGBA{R: 1, A: 255})
	b := NewText()
	b.Truncate = opt.Of(false)

	m := a.Merge(b).(*Text)
	assert.Equal(t, color.RGBA{R: 1, A: 255}, *m.Color)
	assert.False(t, *m.Truncate)

	c := m.Clone().(*Text)
	*c.Color = color.RGBA{R: 9, A: 255}
	assert.Equal(t, uint8(1), m.Color.R)
}
