// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skins loads decoration styles from TOML skin files. A skin maps
// style identifiers to ordered decoration fragment lists that feed
// [decor.Resolver]s directly.
package skins

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/veneerui/veneer/content"
	"github.com/veneerui/veneer/decor"
	"github.com/veneerui/veneer/layout"
	"github.com/veneerui/veneer/paint"
	"github.com/veneerui/veneer/states"
	"github.com/veneerui/veneer/styles"
	"github.com/veneerui/veneer/styles/sides"
)

// Skin is a loaded set of named styles.
type Skin struct {

	// Name is the skin name from the file, if any.
	Name string

	styles map[string]decor.Decorations
}

// Style returns the decoration fragments of the named style.
func (s *Skin) Style(id string) (decor.Decorations, bool) {
	ds, ok := s.styles[id]
	return ds, ok
}

// StyleIDs returns the identifiers of all loaded styles.
func (s *Skin) StyleIDs() []string {
	ids := make([]string, 0, len(s.styles))
	for id := range s.styles {
		ids = append(ids, id)
	}
	return ids
}

// file is the TOML schema of a skin file.
type file struct {
	Name   string           `toml:"name"`
	Styles map[string]style `toml:"styles"`
}

type style struct {
	Decorations []decorationDef `toml:"decorations"`
}

type decorationDef struct {
	ID          string       `toml:"id"`
	Kind        string       `toml:"kind"`
	States      []string     `toml:"states"`
	Overwrite   bool         `toml:"overwrite"`
	Visible     *bool        `toml:"visible"`
	Opacity     *float32     `toml:"opacity"`
	Background  *string      `toml:"background"`
	BorderColor *string      `toml:"border-color"`
	BorderWidth *float32     `toml:"border-width"`
	Round       *int         `toml:"round"`
	Padding     []int        `toml:"padding"`
	Contents    []contentDef `toml:"contents"`
	Layout      *layoutDef   `toml:"layout"`
}

type contentDef struct {
	Kind        string    `toml:"kind"`
	At          string    `toml:"at"`
	Overwrite   bool      `toml:"overwrite"`
	Color       *string   `toml:"color"`
	HAlign      *string   `toml:"halign"`
	VAlign      *string   `toml:"valign"`
	Truncate    *bool     `toml:"truncate"`
	Shadow      *bool     `toml:"shadow"`
	ShadowColor *string   `toml:"shadow-color"`
	ShadowSize  *int      `toml:"shadow-size"`
	Round       *int      `toml:"round"`
	StrokeWidth *float32  `toml:"stroke-width"`
	Dashes      []float32 `toml:"dashes"`
	Width       *int      `toml:"width"`
	Height      *int      `toml:"height"`
}

type layoutDef struct {
	Kind               string `toml:"kind"`
	Overwrite          bool   `toml:"overwrite"`
	AlignTextByIcons   *bool  `toml:"align-text-by-icons"`
	IconTextGap        *int   `toml:"icon-text-gap"`
	TextAcceleratorGap *int   `toml:"text-accelerator-gap"`
	TextArrowGap       *int   `toml:"text-arrow-gap"`
}

// Open loads a skin from the file at the given path.
func Open(path string) (*Skin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skins: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load loads a skin from TOML data read from r.
func Load(r io.Reader) (*Skin, error) {
	var f file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("skins: decode: %w", err)
	}
	return build(&f)
}

func build(f *file) (*Skin, error) {
	skin := &Skin{Name: f.Name, styles: map[string]decor.Decorations{}}
	for id, st := range f.Styles {
		var ds decor.Decorations
		for i, dd := range st.Decorations {
			d, err := buildDecoration(&dd)
			if err != nil {
				return nil, fmt.Errorf("skins: style %q decoration %d: %w", id, i, err)
			}
			ds = append(ds, d)
		}
		skin.styles[id] = decor.NewDecorations(ds...)
	}
	return skin, nil
}

func buildDecoration(dd *decorationDef) (decor.Decoration, error) {
	switch dd.Kind {
	case "", "box":
	default:
		return nil, styles.Errorf("unknown decoration kind %q", dd.Kind)
	}
	b := &decor.Box{
		Id:          dd.ID,
		Overwrite:   dd.Overwrite,
		Visible:     dd.Visible,
		Opacity:     dd.Opacity,
		BorderWidth: dd.BorderWidth,
		Round:       dd.Round,
	}
	for _, s := range dd.States {
		b.When = append(b.When, states.State(s))
	}
	var err error
	if b.Background, err = colorOf(dd.Background); err != nil {
		return nil, err
	}
	if b.BorderColor, err = colorOf(dd.BorderColor); err != nil {
		return nil, err
	}
	if len(dd.Padding) > 0 {
		if len(dd.Padding) > 4 {
			return nil, styles.Errorf("padding takes 1 to 4 values, got %d", len(dd.Padding))
		}
		p := sides.NewInts(dd.Padding...)
		b.Padding = &p
	}
	for i, cd := range dd.Contents {
		ct, err := buildContent(&cd)
		if err != nil {
			return nil, fmt.Errorf("content %d: %w", i, err)
		}
		b.Contents = append(b.Contents, ct)
	}
	if dd.Layout != nil {
		if b.Layout, err = buildLayout(dd.Layout); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func buildContent(cd *contentDef) (content.Content, error) {
	base := content.Base{At: cd.At, Overwrite: cd.Overwrite}
	switch cd.Kind {
	case "text", "accelerator-text":
		t := &content.Text{Base: base}
		if cd.Kind == "accelerator-text" {
			t.Source = content.SourceAccelerator
			if t.At == "" {
				t.At = layout.Accelerator
			}
		} else if t.At == "" {
			t.At = layout.Text
		}
		var err error
		if t.Color, err = colorOf(cd.Color); err != nil {
			return nil, err
		}
		if t.HAlign, err = alignOf(cd.HAlign); err != nil {
			return nil, err
		}
		if t.VAlign, err = alignOf(cd.VAlign); err != nil {
			return nil, err
		}
		t.Truncate = cd.Truncate
		t.Shadow = cd.Shadow
		if t.ShadowColor, err = colorOf(cd.ShadowColor); err != nil {
			return nil, err
		}
		t.ShadowSize = cd.ShadowSize
		return t, nil
	case "icon":
		ic := &content.Icon{Base: base}
		if ic.At == "" {
			ic.At = layout.Icon
		}
		return ic, nil
	case "arrow":
		a := &content.Arrow{Base: base, Width: cd.Width, Height: cd.Height}
		if a.At == "" {
			a.At = layout.Arrow
		}
		var err error
		if a.Color, err = colorOf(cd.Color); err != nil {
			return nil, err
		}
		return a, nil
	case "dash-focus":
		d := &content.DashFocus{Base: base, Round: cd.Round}
		var err error
		if d.Color, err = colorOf(cd.Color); err != nil {
			return nil, err
		}
		if cd.StrokeWidth != nil || len(cd.Dashes) > 0 {
			s := paint.Stroke{Width: 1, Dashes: cd.Dashes}
			if cd.StrokeWidth != nil {
				s.Width = *cd.StrokeWidth
			}
			d.Stroke = &s
		}
		return d, nil
	default:
		return nil, styles.Errorf("unknown content kind %q", cd.Kind)
	}
}

func buildLayout(ld *layoutDef) (layout.Layout, error) {
	switch ld.Kind {
	case "menu-item":
		return &layout.MenuItem{
			Overwrite:          ld.Overwrite,
			AlignTextByIcons:   ld.AlignTextByIcons,
			IconTextGap:        ld.IconTextGap,
			TextAcceleratorGap: ld.TextAcceleratorGap,
			TextArrowGap:       ld.TextArrowGap,
		}, nil
	default:
		return nil, styles.Errorf("unknown layout kind %q", ld.Kind)
	}
}

func alignOf(s *string) (*styles.Align, error) {
	if s == nil {
		return nil, nil
	}
	var a styles.Align
	if err := a.SetString(*s); err != nil {
		return nil, err
	}
	return &a, nil
}

// colorOf parses an optional "#rgb", "#rrggbb" or "#rrggbbaa" hex color.
func colorOf(s *string) (*color.RGBA, error) {
	if s == nil {
		return nil, nil
	}
	c, err := ParseColor(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseColor parses a hex color in "#rgb", "#rrggbb" or "#rrggbbaa" form.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, styles.Errorf("invalid color %q: must start with #", s)
	}
	hex := s[1:]
	parse := func(h string) (uint8, error) {
		v, err := strconv.ParseUint(h, 16, 8)
		if err != nil {
			return 0, styles.Errorf("invalid color %q: %v", s, err)
		}
		return uint8(v), nil
	}
	var err error
	c := color.RGBA{A: 255}
	switch len(hex) {
	case 3:
		if c.R, err = parse(hex[0:1] + hex[0:1]); err != nil {
			return c, err
		}
		if c.G, err = parse(hex[1:2] + hex[1:2]); err != nil {
			return c, err
		}
		if c.B, err = parse(hex[2:3] + hex[2:3]); err != nil {
			return c, err
		}
	case 8:
		if c.A, err = parse(hex[6:8]); err != nil {
			return c, err
		}
		fallthrough
	case 6:
		if c.R, err = parse(hex[0:2]); err != nil {
			return c, err
		}
		if c.G, err = parse(hex[2:4]); err != nil {
			return c, err
		}
		if c.B, err = parse(hex[4:6]); err != nil {
			return c, err
		}
	default:
		return c, styles.Errorf("invalid color %q: need 3, 6 or 8 hex digits", s)
	}
	return c, nil
}
