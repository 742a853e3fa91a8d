// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOr(t *testing.T) {
	assert.Equal(t, 3, Or(Of(3), 7))
	assert.Equal(t, 7, Or(nil, 7))
	assert.Equal(t, 0, Or(Of(0), 7))
}

func TestMerge(t *testing.T) {
	acc := Of(1)
	in := Of(2)

	assert.Same(t, in, Merge(acc, in, false))
	assert.Same(t, acc, Merge(acc, nil, false))
	assert.Same(t, in, Merge(acc, in, true))
	assert.Nil(t, Merge(acc, nil, true))
}

func TestClone(t *testing.T) {
	v := Of(5)
	c := Clone(v)
	assert.NotSame(t, v, c)
	assert.Equal(t, *v, *c)
	assert.Nil(t, Clone[int](nil))
}
