// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImagePainter is a reference software [Painter] over an [image.RGBA].
// It favors simplicity over rendering quality: corners are hard-edged
// rather than antialiased and dash patterns restart on each edge. It is
// meant for tests, examples and headless rendering; real toolkits provide
// their own Painter over their native surface.
type ImagePainter struct {
	img    *image.RGBA
	color  color.RGBA
	alpha  float32
	stroke Stroke
	off    image.Point
}

// NewImagePainter returns a painter drawing into the given image, with
// opaque black paint, alpha 1 and a solid hairline stroke.
func NewImagePainter(img *image.RGBA) *ImagePainter {
	return &ImagePainter{
		img:    img,
		color:  color.RGBA{A: 255},
		alpha:  1,
		stroke: Stroke{Width: 1},
	}
}

func (p *ImagePainter) Color() color.RGBA     { return p.color }
func (p *ImagePainter) SetColor(c color.RGBA) { p.color = c }
func (p *ImagePainter) Alpha() float32        { return p.alpha }

func (p *ImagePainter) SetAlpha(a float32) {
	p.alpha = math32.Min(math32.Max(a, 0), 1)
}

func (p *ImagePainter) Stroke() Stroke     { return p.stroke }
func (p *ImagePainter) SetStroke(s Stroke) { p.stroke = s }

func (p *ImagePainter) Translate(dx, dy int) {
	p.off = p.off.Add(image.Pt(dx, dy))
}

// effColor returns the current color with the current alpha premultiplied
// in, in the alpha-premultiplied form [image/draw] expects.
func (p *ImagePainter) effColor() color.RGBA {
	c := p.color
	a := p.alpha
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	mul := func(v uint8) uint8 { return uint8(math32.Round(float32(v) * a)) }
	return color.RGBA{mul(c.R), mul(c.G), mul(c.B), mul(c.A)}
}

func (p *ImagePainter) FillRect(r image.Rectangle) {
	r = r.Add(p.off).Intersect(p.img.Bounds())
	draw.Draw(p.img, r, image.NewUniform(p.effColor()), image.Point{}, draw.Over)
}

func (p *ImagePainter) FillRoundRect(r image.Rectangle, radius int) {
	radius = clampRadius(r, radius)
	if radius <= 0 {
		p.FillRect(r)
		return
	}
	// Center band plus two side bands cover everything but the corners.
	p.FillRect(image.Rect(r.Min.X+radius, r.Min.Y, r.Max.X-radius, r.Max.Y))
	p.FillRect(image.Rect(r.Min.X, r.Min.Y+radius, r.Min.X+radius, r.Max.Y-radius))
	p.FillRect(image.Rect(r.Max.X-radius, r.Min.Y+radius, r.Max.X, r.Max.Y-radius))
	ec := p.effColor()
	p.eachCornerPixel(r, radius, func(x, y int, d2 float32) {
		if d2 <= float32(radius*radius) {
			p.blend(x, y, ec)
		}
	})
}

func (p *ImagePainter) StrokeRoundRect(r image.Rectangle, radius int) {
	radius = clampRadius(r, radius)
	w := int(math32.Round(p.stroke.Width))
	if w < 1 {
		w = 1
	}
	ec := p.effColor()

	// Edges, shortened by the corner radius.
	p.dashedSpan(r.Min.X+radius, r.Max.X-radius, func(a, b int) {
		p.fillBlend(image.Rect(a, r.Min.Y, b, r.Min.Y+w), ec)
	})
	p.dashedSpan(r.Min.X+radius, r.Max.X-radius, func(a, b int) {
		p.fillBlend(image.Rect(a, r.Max.Y-w, b, r.Max.Y), ec)
	})
	p.dashedSpan(r.Min.Y+radius, r.Max.Y-radius, func(a, b int) {
		p.fillBlend(image.Rect(r.Min.X, a, r.Min.X+w, b), ec)
	})
	p.dashedSpan(r.Min.Y+radius, r.Max.Y-radius, func(a, b int) {
		p.fillBlend(image.Rect(r.Max.X-w, a, r.Max.X, b), ec)
	})

	if radius <= 0 {
		return
	}
	// Quarter annuli in the corners; dashes are not applied there.
	outer := float32(radius * radius)
	in := float32(radius - w)
	if in < 0 {
		in = 0
	}
	inner := in * in
	p.eachCornerPixel(r, radius, func(x, y int, d2 float32) {
		if d2 <= outer && d2 >= inner {
			p.blend(x, y, ec)
		}
	})
}

func (p *ImagePainter) FillPolygon(pts ...image.Point) {
	if len(pts) < 3 {
		return
	}
	ec := p.effColor()
	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts {
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	for y := minY; y < maxY; y++ {
		yc := float32(y) + 0.5
		var xs []float32
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			ay, by := float32(a.Y), float32(b.Y)
			if (ay <= yc) == (by <= yc) {
				continue
			}
			t := (yc - ay) / (by - ay)
			xs = append(xs, float32(a.X)+t*float32(b.X-a.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math32.Ceil(xs[i] - 0.5))
			x1 := int(math32.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				p.blend(x+p.off.X, y+p.off.Y, ec)
			}
		}
	}
}

func (p *ImagePainter) DrawImage(img image.Image, r image.Rectangle) {
	r = r.Add(p.off)
	sb := img.Bounds()
	if r.Dx() == sb.Dx() && r.Dy() == sb.Dy() {
		if p.alpha < 1 {
			mask := image.NewUniform(color.Alpha{A: uint8(math32.Round(p.alpha * 255))})
			draw.DrawMask(p.img, r, img, sb.Min, mask, image.Point{}, draw.Over)
			return
		}
		draw.Draw(p.img, r, img, sb.Min, draw.Over)
		return
	}
	xdraw.ApproxBiLinear.Scale(p.img, r, img, sb, xdraw.Over, nil)
}

func (p *ImagePainter) DrawText(face font.Face, text string, x, y int) {
	d := font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(p.effColor()),
		Face: face,
		Dot:  fixed.P(x+p.off.X, y+p.off.Y),
	}
	d.DrawString(text)
}

// dashedSpan splits [a, b) into on-segments of the current dash pattern and
// calls fill for each. A solid stroke yields the whole span.
func (p *ImagePainter) dashedSpan(a, b int, fill func(a, b int)) {
	if b <= a {
		return
	}
	dashes := p.stroke.Dashes
	if len(dashes) == 0 {
		fill(a, b)
		return
	}
	pos := float32(a)
	end := float32(b)
	on := true
	for i := 0; pos < end; i++ {
		seg := dashes[i%len(dashes)]
		if seg <= 0 {
			break
		}
		next := math32.Min(pos+seg, end)
		if on {
			fill(int(math32.Round(pos)), int(math32.Round(next)))
		}
		pos = next
		on = !on
	}
}

// eachCornerPixel visits every pixel of the four corner boxes of r, passing
// the squared distance from the matching corner circle center.
func (p *ImagePainter) eachCornerPixel(r image.Rectangle, radius int, visit func(x, y int, d2 float32)) {
	centers := [4]image.Point{
		{r.Min.X + radius, r.Min.Y + radius},
		{r.Max.X - radius, r.Min.Y + radius},
		{r.Min.X + radius, r.Max.Y - radius},
		{r.Max.X - radius, r.Max.Y - radius},
	}
	boxes := [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+radius, r.Min.Y+radius),
		image.Rect(r.Max.X-radius, r.Min.Y, r.Max.X, r.Min.Y+radius),
		image.Rect(r.Min.X, r.Max.Y-radius, r.Min.X+radius, r.Max.Y),
		image.Rect(r.Max.X-radius, r.Max.Y-radius, r.Max.X, r.Max.Y),
	}
	for i, box := range boxes {
		c := centers[i]
		for y := box.Min.Y; y < box.Max.Y; y++ {
			for x := box.Min.X; x < box.Max.X; x++ {
				dx := float32(x) + 0.5 - float32(c.X)
				dy := float32(y) + 0.5 - float32(c.Y)
				visit(x+p.off.X, y+p.off.Y, dx*dx+dy*dy)
			}
		}
	}
}

func (p *ImagePainter) fillBlend(r image.Rectangle, c color.RGBA) {
	r = r.Add(p.off).Intersect(p.img.Bounds())
	draw.Draw(p.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// blend composites c over the pixel at (x, y) with source-over blending.
func (p *ImagePainter) blend(x, y int, c color.RGBA) {
	if !image.Pt(x, y).In(p.img.Bounds()) {
		return
	}
	d := p.img.RGBAAt(x, y)
	da := 255 - uint32(c.A)
	p.img.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(c.R) + uint32(d.R)*da/255),
		G: uint8(uint32(c.G) + uint32(d.G)*da/255),
		B: uint8(uint32(c.B) + uint32(d.B)*da/255),
		A: uint8(uint32(c.A) + uint32(d.A)*da/255),
	})
}

func clampRadius(r image.Rectangle, radius int) int {
	m := min(r.Dx(), r.Dy()) / 2
	return min(max(radius, 0), m)
}
