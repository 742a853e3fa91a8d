// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sides provides flexible representation of box sides, with either a
// single value for all sides or different values for subsets. Decorations use
// it for border insets and content padding, in raw pixels.
package sides

import (
	"image"
	"log/slog"
)

// Sides contains values for each side of a box.
type Sides[T any] struct {

	// top side value
	Top T

	// right side value
	Right T

	// bottom side value
	Bottom T

	// left side value
	Left T
}

// New is a helper that creates new sides of the given type
// and calls Set on them with the given values.
func New[T any](vals ...T) Sides[T] {
	s := Sides[T]{}
	s.Set(vals...)
	return s
}

// Set sets the values of the sides from the given list of 0 to 4 values,
// following the CSS multi-side setting syntax: 0 values sets all sides to
// the zero value; 1 value sets all sides; 2 values set top/bottom and
// right/left; 3 values set top, right/left and bottom; 4 values set
// top, right, bottom and left. More than 4 values is a programmer error
// that is logged, with the extra values ignored.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zv T
		s.SetAll(zv)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.SetVertical(vals[0])
		s.SetHorizontal(vals[1])
	case 3:
		s.Top = vals[0]
		s.SetHorizontal(vals[1])
		s.Bottom = vals[2]
	case 4:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		slog.Error("programmer error: sides.Set: expected 0 to 4 values", "numValues", len(vals))
	}
	return s
}

// SetAll sets the values for all of the sides to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// SetVertical sets the top and bottom sides to the given value.
func (s *Sides[T]) SetVertical(val T) *Sides[T] {
	s.Top = val
	s.Bottom = val
	return s
}

// SetHorizontal sets the right and left sides to the given value.
func (s *Sides[T]) SetHorizontal(val T) *Sides[T] {
	s.Right = val
	s.Left = val
	return s
}

// AreZero returns whether all of the sides are equal to zero.
func AreZero[T comparable](s Sides[T]) bool {
	var zv T
	return s.Top == zv && s.Right == zv && s.Bottom == zv && s.Left == zv
}

// Ints contains int pixel values for each side of a box, used for border
// insets and padding.
type Ints struct {
	Sides[int]
}

// NewInts is a helper that creates new side ints
// and calls Set on them with the given values.
func NewInts(vals ...int) Ints {
	s := Sides[int]{}
	s.Set(vals...)
	return Ints{s}
}

// Add adds the other side ints to these and returns the result.
func (si Ints) Add(other Ints) Ints {
	return NewInts(
		si.Top+other.Top,
		si.Right+other.Right,
		si.Bottom+other.Bottom,
		si.Left+other.Left,
	)
}

// Max returns new side ints containing the maximum values of the two.
func (si Ints) Max(other Ints) Ints {
	return NewInts(
		max(si.Top, other.Top),
		max(si.Right, other.Right),
		max(si.Bottom, other.Bottom),
		max(si.Left, other.Left),
	)
}

// Size returns the total size the sides take up
// (left + right, top + bottom).
func (si Ints) Size() image.Point {
	return image.Pt(si.Left+si.Right, si.Top+si.Bottom)
}

// Pos returns the position offset caused by the sides (left, top).
func (si Ints) Pos() image.Point {
	return image.Pt(si.Left, si.Top)
}

// Inset shrinks the given rectangle by the side values and returns the
// result.
func (si Ints) Inset(r image.Rectangle) image.Rectangle {
	r.Min.X += si.Left
	r.Min.Y += si.Top
	r.Max.X -= si.Right
	r.Max.Y -= si.Bottom
	return r
}
