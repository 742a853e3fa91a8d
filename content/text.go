// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"image"
	"image/color"
	"log/slog"
	"strings"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/veneerui/veneer/base/opt"
	"github.com/veneerui/veneer/host"
	"github.com/veneerui/veneer/layout"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/styles"
)

// TextSource selects which component string a [Text] content renders.
type TextSource int32

const (
	// SourceLabel renders the component label text.
	SourceLabel TextSource = iota

	// SourceAccelerator renders the component accelerator text.
	SourceAccelerator
)

// shadowOpacity is the base opacity of the soft text shadow stamps.
const shadowOpacity = 0.8

// Text paints component text. Two mutually exclusive modes are selected per
// paint by sniffing the text for markup: markup text is delegated to an
// externally built [host.RichView] (cached until text, font or color
// change), plain text is aligned, optionally truncated with an ellipsis,
// optionally backed by a soft top-lit drop shadow, and may carry a one
// pixel mnemonic underline.
type Text struct {
	Base

	// Color is the text color; unset uses the component foreground.
	Color *color.RGBA

	// HAlign is the horizontal alignment; logical values resolve against
	// the component text direction. Defaults to [styles.Leading].
	HAlign *styles.Align

	// VAlign is the vertical alignment. Defaults to [styles.Center].
	VAlign *styles.Align

	// Truncate elides the text when it exceeds the available width.
	// Defaults to true.
	Truncate *bool

	// Shadow enables the soft text shadow. Defaults to false.
	Shadow *bool

	// ShadowColor is the shadow color; required when Shadow is enabled.
	ShadowColor *color.RGBA

	// ShadowSize is the shadow radius in pixels; required when Shadow is
	// enabled.
	ShadowSize *int

	// Source selects the component string to render.
	Source TextSource

	view     host.RichView
	viewText string
	viewFace font.Face
	viewFG   color.RGBA
}

// NewText returns a text content placed in the text region.
func NewText() *Text {
	return &Text{Base: Base{At: layout.Text}}
}

// NewAccelerator returns a text content rendering the component accelerator
// text in the accelerator region.
func NewAccelerator() *Text {
	return &Text{Base: Base{At: layout.Accelerator}, Source: SourceAccelerator}
}

func (t *Text) Kind() string {
	if t.Source == SourceAccelerator {
		return "accelerator-text"
	}
	return "text"
}

func (t *Text) Clone() Content {
	n := &Text{}
	if err := copier.CopyWithOption(n, t, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
		slog.Error("content: text clone failed", "err", err)
	}
	return n
}

func (t *Text) Merge(other Content) Content {
	o, ok := other.(*Text)
	if !ok {
		slog.Error("content: cannot merge contents of different kinds",
			"kind", t.Kind(), "other", other.Kind())
		return t
	}
	ow := o.Overwrite
	t.Color = opt.Merge(t.Color, opt.Clone(o.Color), ow)
	t.HAlign = opt.Merge(t.HAlign, opt.Clone(o.HAlign), ow)
	t.VAlign = opt.Merge(t.VAlign, opt.Clone(o.VAlign), ow)
	t.Truncate = opt.Merge(t.Truncate, opt.Clone(o.Truncate), ow)
	t.Shadow = opt.Merge(t.Shadow, opt.Clone(o.Shadow), ow)
	t.ShadowColor = opt.Merge(t.ShadowColor, opt.Clone(o.ShadowColor), ow)
	t.ShadowSize = opt.Merge(t.ShadowSize, opt.Clone(o.ShadowSize), ow)
	return t
}

// Deactivate drops the cached markup view.
func (t *Text) Deactivate(c host.Component) {
	t.clearView()
}

func (t *Text) Empty(c host.Component) bool {
	return t.text(c) == ""
}

func (t *Text) text(c host.Component) string {
	switch t.Source {
	case SourceAccelerator:
		if a, ok := c.(host.Accelerated); ok {
			return a.AcceleratorText()
		}
	default:
		if tx, ok := c.(host.Texter); ok {
			return tx.Text()
		}
	}
	return ""
}

func (t *Text) mnemonicIndex(c host.Component) int {
	if t.Source != SourceLabel {
		return -1
	}
	if m, ok := c.(host.Mnemonic); ok {
		return m.MnemonicIndex()
	}
	return -1
}

func (t *Text) face(c host.Component) font.Face {
	if f := c.FontFace(); f != nil {
		return f
	}
	return basicfont.Face7x13
}

func (t *Text) color(c host.Component) color.RGBA {
	if t.Color != nil {
		return *t.Color
	}
	return c.Foreground()
}

func (t *Text) truncate() bool { return opt.Or(t.Truncate, true) }
func (t *Text) shadow() bool   { return opt.Or(t.Shadow, false) }

func (t *Text) shadowColor() color.RGBA {
	if t.ShadowColor == nil {
		panic(styles.Errorf("shadow color must be specified"))
	}
	return *t.ShadowColor
}

func (t *Text) shadowSize() int {
	if t.ShadowSize == nil {
		panic(styles.Errorf("shadow size must be specified"))
	}
	return *t.ShadowSize
}

// IsMarkup reports whether the text selects the rich-markup render mode.
func IsMarkup(text string) bool {
	return len(text) >= 6 && strings.EqualFold(text[:6], "<html>")
}

// markupView returns the rich view for markup text, rebuilding the cached
// view whenever the text, face or color changed. It returns nil for plain
// text or when the component cannot build rich views.
func (t *Text) markupView(c host.Component, face font.Face, fg color.RGBA) host.RichView {
	text := t.text(c)
	if !IsMarkup(text) {
		t.clearView()
		return nil
	}
	rt, ok := c.(host.RichTexter)
	if !ok {
		return nil
	}
	if t.view == nil || t.viewText != text || t.viewFace != face || t.viewFG != fg {
		t.view = rt.RichView(text, face, fg)
		t.viewText, t.viewFace, t.viewFG = text, face, fg
	}
	return t.view
}

func (t *Text) clearView() {
	t.view = nil
	t.viewText = ""
	t.viewFace = nil
	t.viewFG = color.RGBA{}
}

func (t *Text) PreferredSize(c host.Component, available image.Point) image.Point {
	if t.Empty(c) {
		return image.Point{}
	}
	face := t.face(c)
	if view := t.markupView(c, face, t.color(c)); view != nil {
		return view.PreferredSize()
	}
	m := paint.FaceMetrics(face)
	w := paint.TextWidth(face, t.text(c))
	if t.shadow() {
		w += t.shadowSize() * 2
	}
	return image.Pt(w, m.Height)
}

func (t *Text) Paint(p paint.Painter, c host.Component, bounds image.Rectangle) {
	if t.Empty(c) {
		return
	}
	face := t.face(c)
	fg := t.color(c)
	oc := p.Color()
	p.SetColor(fg)
	if view := t.markupView(c, face, fg); view != nil {
		view.Paint(p, bounds)
	} else {
		if t.shadow() {
			sw := t.shadowSize()
			bounds.Min.X += sw
			bounds.Max.X -= sw
		}
		t.paintPlain(p, c, face, bounds)
	}
	p.SetColor(oc)
}

func (t *Text) paintPlain(p paint.Painter, c host.Component, face font.Face, bounds image.Rectangle) {
	text := t.text(c)
	m := paint.FaceMetrics(face)
	va := opt.Or(t.VAlign, styles.Center)
	ha := opt.Or(t.HAlign, styles.Leading).Resolve(c.LeftToRight())
	tw := paint.TextWidth(face, text)

	textX := bounds.Min.X
	textY := bounds.Min.Y
	switch va {
	case styles.Top:
		textY += m.Ascent
	case styles.Center:
		textY += int(math32.Ceil(float32(bounds.Dy()+m.Ascent-m.Leading-m.Descent) / 2))
	case styles.Bottom:
		textY += bounds.Dy() - m.Height
	default:
		panic(styles.Errorf("incorrect vertical alignment provided: %v", va))
	}
	if tw < bounds.Dx() {
		switch ha {
		case styles.Left:
		case styles.Center:
			textX += int(math32.Floor(float32(bounds.Dx()-tw) / 2))
		case styles.Right:
			textX += bounds.Dx() - tw
		default:
			panic(styles.Errorf("incorrect horizontal alignment provided: %v", ha))
		}
	}

	painted := text
	if t.truncate() && bounds.Dx() < tw {
		painted = elideEnd(face, text, bounds.Dx())
	}

	t.paintShadow(p, face, painted, textX, textY)
	p.DrawText(face, painted, textX, textY)
	t.paintMnemonic(p, c, face, painted, textX, textY, m.Descent)
}

// paintShadow draws a soft shadow by stamping the glyph run multiple times
// around the text position. The light angle is assumed to be zero degrees
// (top-lit), and the alpha of each stamp falls off with the squared
// distance from the text position.
func (t *Text) paintShadow(p paint.Painter, face font.Face, text string, textX, textY int) {
	if !t.shadow() {
		return
	}
	size := t.shadowSize()
	if size <= 0 {
		return
	}
	sc := t.shadowColor()
	sc.A = 255

	oldColor := p.Color()
	oldAlpha := p.Alpha()
	// A pre-alpha below 1 keeps overlapping stamps from getting too dark.
	pre := math32.Min(oldAlpha, 0.4)
	p.SetColor(sc)
	for i := -size; i <= size-1; i++ {
		for j := -size; j <= size-1; j++ {
			distance := float32(i*i + j*j)
			alpha := float32(shadowOpacity)
			if distance > 0 {
				alpha = 1 / (distance * float32(size) * shadowOpacity)
			}
			alpha *= pre
			if alpha > 1 {
				alpha = 1
			}
			p.SetAlpha(alpha)
			p.DrawText(face, text, textX+i, textY+1+j)
		}
	}
	p.SetAlpha(oldAlpha)
	p.SetColor(oldColor)
}

// paintMnemonic draws a one pixel underline below the mnemonic glyph when
// its index is within the painted text.
func (t *Text) paintMnemonic(p paint.Painter, c host.Component, face font.Face, text string, textX, textY, descent int) {
	idx := t.mnemonicIndex(c)
	runes := []rune(text)
	if idx < 0 || idx >= len(runes) {
		return
	}
	pw := paint.TextWidth(face, string(runes[:idx]))
	cw := paint.TextWidth(face, string(runes[idx]))
	p.FillRect(image.Rect(textX+pw, textY+descent-1, textX+pw+cw, textY+descent))
}

// elideEnd shortens the text with a trailing "..." until it fits the given
// width. It never fails; at worst the bare dots are returned.
func elideEnd(face font.Face, text string, width int) string {
	const ellipsis = "..."
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := string(runes[:n]) + ellipsis
		if paint.TextWidth(face, s) <= width {
			return s
		}
	}
	return ellipsis
}
