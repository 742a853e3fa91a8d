// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opt provides pointer-based optional values used by the mergeable
// decoration, content and layout types. A nil pointer means "no value
// provided — inherit"; a non-nil pointer is an explicit setting, including
// explicit zero values.
package opt

// Of returns a pointer to the given value, for setting optional fields inline.
func Of[T any](v T) *T {
	return &v
}

// Or returns the value pointed to by v, or def if v is nil.
func Or[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

// Merge implements the uniform field merge rule shared by all mergeable
// style types: the incoming value replaces the accumulated one when it is
// explicitly set, or unconditionally (even when nil) when the incoming
// fragment has its overwrite flag set.
func Merge[T any](acc, in *T, overwrite bool) *T {
	if overwrite || in != nil {
		return in
	}
	return acc
}

// Clone returns a pointer to a shallow copy of the value pointed to by v,
// or nil if v is nil. It keeps merged results independent from their inputs
// for plain-data optionals.
func Clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
