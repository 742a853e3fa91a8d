// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles holds the small shared vocabulary of the decoration system:
// alignment values and the error type used for style configuration mistakes.
package styles

import "fmt"

// Error is a style configuration error: a required style field was never
// set, or a style value is outside its recognized range. These are authoring
// mistakes and are reported loudly (by panicking in paint paths) rather than
// silently defaulted, so that broken skins fail fast during development.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "styles: " + e.Msg
}

// Errorf returns a new [Error] with the formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Align is a logical or physical alignment value for content placement.
// Leading and Trailing are logical values resolved into Left or Right
// using the component text direction.
type Align int32

const (
	// Leading aligns with the leading edge of the text direction
	// (left in left-to-right, right in right-to-left).
	Leading Align = iota

	// Trailing aligns with the trailing edge of the text direction.
	Trailing

	// Left is a physical left alignment.
	Left

	// Center centers along the axis.
	Center

	// Right is a physical right alignment.
	Right

	// Top aligns with the top edge.
	Top

	// Bottom aligns with the bottom edge.
	Bottom
)

var alignNames = map[Align]string{
	Leading:  "leading",
	Trailing: "trailing",
	Left:     "left",
	Center:   "center",
	Right:    "right",
	Top:      "top",
	Bottom:   "bottom",
}

func (a Align) String() string {
	if n, ok := alignNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Align(%d)", int32(a))
}

// SetString sets the alignment from its string name.
func (a *Align) SetString(s string) error {
	for v, n := range alignNames {
		if n == s {
			*a = v
			return nil
		}
	}
	return Errorf("unknown alignment value %q", s)
}

// Resolve resolves a logical horizontal alignment into a physical one
// (Left, Center or Right) for the given text direction.
func (a Align) Resolve(leftToRight bool) Align {
	switch a {
	case Leading:
		if leftToRight {
			return Left
		}
		return Right
	case Trailing:
		if leftToRight {
			return Right
		}
		return Left
	default:
		return a
	}
}
