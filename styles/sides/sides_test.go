// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	assert.Equal(t, Sides[int]{Top: 1, Right: 1, Bottom: 1, Left: 1}, New(1))
	assert.Equal(t, Sides[int]{Top: 1, Right: 2, Bottom: 1, Left: 2}, New(1, 2))
	assert.Equal(t, Sides[int]{Top: 1, Right: 2, Bottom: 3, Left: 2}, New(1, 2, 3))
	assert.Equal(t, Sides[int]{Top: 1, Right: 2, Bottom: 3, Left: 4}, New(1, 2, 3, 4))
	assert.Equal(t, Sides[int]{}, New[int]())
}

func TestAreZero(t *testing.T) {
	assert.True(t, AreZero(New[int]()))
	assert.False(t, AreZero(New(0, 1)))
}

func TestIntsAddMax(t *testing.T) {
	a := NewInts(1, 2, 3, 4)
	b := NewInts(4, 3, 2, 1)
	assert.Equal(t, NewInts(5), a.Add(b))
	assert.Equal(t, NewInts(4, 3, 3, 4), a.Max(b))
}

func TestIntsSizePos(t *testing.T) {
	si := NewInts(1, 2, 3, 4)
	assert.Equal(t, image.Pt(6, 4), si.Size())
	assert.Equal(t, image.Pt(4, 1), si.Pos())
}

func TestIntsInset(t *testing.T) {
	si := NewInts(1, 2, 3, 4)
	r := si.Inset(image.Rect(0, 0, 100, 50))
	assert.Equal(t, image.Rect(4, 1, 98, 47), r)
}
