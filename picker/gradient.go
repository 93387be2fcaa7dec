// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"

	"cogentcore.org/palette/base/iox/imagex"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/math32"
)

// Kinds are the slices of HSV space that a [Gradient] can draw.
type Kinds int32

const (
	// HueSat is the hue (x) by saturation (y) plane at the current value.
	HueSat Kinds = iota

	// Value is the value (y) strip at the current hue and saturation.
	// Every column of a row has the same color.
	Value

	// HueRing is the full saturation, full value hue ring. Cells whose
	// center offset lies outside the ring radii are transparent.
	HueRing

	// SatVal is the saturation (x) by value (y) square at the current hue.
	SatVal
)

func (k Kinds) String() string {
	switch k {
	case HueSat:
		return "HueSat"
	case Value:
		return "Value"
	case HueRing:
		return "HueRing"
	case SatVal:
		return "SatVal"
	}
	return "Unknown"
}

// Gradient draws one kind of HSV slice into a bitmap.
type Gradient struct {

	// Kind is the slice of HSV space to draw.
	Kind Kinds

	// Inner and Outer are the ring radii in local units, for [HueRing].
	// The bitmap spans the outer diameter.
	Inner, Outer float32
}

// Params returns the components of c that the gradient depends on,
// with every other component zeroed. Two colors with equal Params
// produce identical bitmaps.
func (g Gradient) Params(c hsv.HSV) hsv.HSV {
	switch g.Kind {
	case HueSat:
		return hsv.HSV{V: c.V}
	case Value:
		return hsv.HSV{H: c.H, S: c.S}
	case SatVal:
		return hsv.HSV{H: c.H}
	}
	return hsv.HSV{}
}

// Draw fills every cell of the back buffer of dst and publishes it.
func (g Gradient) Draw(dst *Surface, c hsv.HSV) {
	cols, rows := dst.Cols(), dst.Rows()
	fc, fr := float32(cols), float32(rows)
	switch g.Kind {
	case HueSat:
		for y := range rows {
			for x := range cols {
				dst.SetCell(x, y, hsv.New(float32(x)/fc, float32(y)/fr, c.V).AsRGBA())
			}
		}
	case Value:
		for y := range rows {
			rgb := hsv.New(c.H, c.S, float32(y)/fr).AsRGBA()
			for x := range cols {
				dst.SetCell(x, y, rgb)
			}
		}
	case HueRing:
		center := math32.Vec2(fc/2, fr/2)
		scale := math32.Vec2(2*g.Outer/fc, 2*g.Outer/fr)
		for y := range rows {
			for x := range cols {
				dir := math32.Vec2(float32(x), float32(y)).Sub(center).Mul(scale)
				d := dir.Length()
				if d < g.Inner || d > g.Outer {
					dst.SetCell(x, y, colors.Transparent)
					continue
				}
				dst.SetCell(x, y, hsv.New(AngleToHue(dir), 1, 1).AsRGBA())
			}
		}
	case SatVal:
		for y := range rows {
			for x := range cols {
				dst.SetCell(x, y, hsv.New(c.H, float32(x)/fc, float32(y)/fr).AsRGBA())
			}
		}
	}
	imagex.Update(dst)
}

// Generate returns a new bitmap of the given kind and resolution for the
// given color, as a top-down RGBA image.
func Generate(g Gradient, cols, rows int, c hsv.HSV) *image.RGBA {
	s := NewSurface(cols, rows)
	g.Draw(s, c)
	return s.front
}

// Layer is a [Gradient] bound to the [Surface] it draws into, which it only
// redraws when the parameters it depends on change.
type Layer struct {
	Gradient

	// Surface is the bitmap the layer draws into.
	Surface *Surface

	params hsv.HSV
	drawn  bool
}

// NewLayer returns a new Layer with a surface of the given resolution.
// Nothing is drawn until the first [Layer.Refresh].
func NewLayer(g Gradient, cols, rows int) *Layer {
	return &Layer{Gradient: g, Surface: NewSurface(cols, rows)}
}

// Refresh redraws the layer for the given color if its dependent
// parameters changed since the last draw, and reports whether it did.
func (l *Layer) Refresh(c hsv.HSV) bool {
	p := l.Params(c)
	if l.drawn && p == l.params {
		return false
	}
	l.Draw(l.Surface, c)
	l.params = p
	l.drawn = true
	Logger().Debug("picker: regenerated gradient", "kind", l.Kind, "params", p)
	return true
}
