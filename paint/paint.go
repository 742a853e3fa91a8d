// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the narrow rendering surface interface the
// decoration engine draws through, plus text metric helpers. The engine
// only ever needs filled and stroked rounded rectangles, polygons, images
// and text runs; anything richer belongs to the host toolkit's renderer.
package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Stroke describes an outline style: line width in pixels and an optional
// on/off dash pattern. A zero-width stroke paints a hairline of width 1.
type Stroke struct {

	// Width is the line width in pixels.
	Width float32

	// Dashes is the alternating on/off dash pattern in pixels;
	// nil or empty paints a solid line.
	Dashes []float32
}

// Painter is the rendering surface as seen by decorations and contents.
// Implementations keep current color, alpha and stroke settings; callers
// that change them are responsible for restoring the previous values.
type Painter interface {

	// Color returns the current paint color.
	Color() color.RGBA

	// SetColor sets the current paint color.
	SetColor(c color.RGBA)

	// Alpha returns the current composite alpha in [0, 1].
	Alpha() float32

	// SetAlpha sets the current composite alpha in [0, 1].
	SetAlpha(a float32)

	// Stroke returns the current stroke settings.
	Stroke() Stroke

	// SetStroke sets the current stroke settings.
	SetStroke(s Stroke)

	// Translate offsets all subsequent drawing by the given amount.
	Translate(dx, dy int)

	// FillRect fills the given rectangle with the current color.
	FillRect(r image.Rectangle)

	// FillRoundRect fills the rectangle with the given corner radius.
	FillRoundRect(r image.Rectangle, radius int)

	// StrokeRoundRect outlines the rectangle with the current stroke and
	// the given corner radius.
	StrokeRoundRect(r image.Rectangle, radius int)

	// FillPolygon fills the polygon with the given vertices.
	FillPolygon(pts ...image.Point)

	// DrawImage draws the image scaled into the given rectangle.
	DrawImage(img image.Image, r image.Rectangle)

	// DrawText draws a text run with the given face, with the baseline
	// starting point at (x, y).
	DrawText(face font.Face, text string, x, y int)
}

// TextWidth returns the advance width of the text in the given face,
// rounded up to whole pixels.
func TextWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}

// Metrics are the whole-pixel vertical font metrics used for text layout.
type Metrics struct {
	Ascent  int
	Descent int
	Leading int
	Height  int
}

// FaceMetrics returns the layout metrics of the given face. Height is the
// recommended line height; Leading is whatever of it ascent and descent do
// not account for, never negative.
func FaceMetrics(face font.Face) Metrics {
	fm := face.Metrics()
	m := Metrics{
		Ascent:  fm.Ascent.Ceil(),
		Descent: fm.Descent.Ceil(),
		Height:  fm.Height.Ceil(),
	}
	m.Leading = m.Height - m.Ascent - m.Descent
	if m.Leading < 0 {
		m.Leading = 0
	}
	return m
}
