// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides the HSV (hue, saturation, value) color space
// with every component normalized to [0, 1].
package hsv

import (
	"fmt"
	"image/color"

	"cogentcore.org/palette/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// HSV represents a color with hue, saturation, value, and alpha channels.
// All values are in the range 0-1. A hue of 1 is the same color as a hue of 0.
type HSV struct {

	// H is the hue of the color, the position around the color wheel
	// normalized so that one full turn is 1 (red at 0, green at 1/3, blue at 2/3).
	H float32 `min:"0" max:"1"`

	// S is the saturation of the color, from gray (0) to the pure hue (1).
	S float32 `min:"0" max:"1"`

	// V is the value (brightness) of the color, from black (0) to full (1).
	V float32 `min:"0" max:"1"`

	// A is the alpha (opacity) of the color.
	A float32 `min:"0" max:"1"`
}

// New returns a new opaque HSV color with the given hue, saturation and value.
func New(h, s, v float32) HSV {
	return HSV{H: h, S: s, V: v, A: 1}
}

// FromColor constructs a new HSV color from a standard [color.Color].
func FromColor(c color.Color) HSV {
	h := HSV{}
	h.SetColor(c)
	return h
}

// Model is the standard [color.Model] that converts colors to HSV.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSV); ok {
		return h
	}
	return FromColor(c)
}

// Clamped returns the color with every component clamped to [0, 1].
// NaN components become 0.
func (h HSV) Clamped() HSV {
	return HSV{
		H: clamp01(h.H),
		S: clamp01(h.S),
		V: clamp01(h.V),
		A: clamp01(h.A),
	}
}

func clamp01(x float32) float32 {
	if math32.IsNaN(x) {
		return 0
	}
	return math32.Clamp(x, 0, 1)
}

// srgb returns the non-premultiplied sRGB form of the color.
// The hue wraps, so that 1 maps to red just like 0.
func (h HSV) srgb() colorful.Color {
	c := h.Clamped()
	return colorful.Hsv(float64(math32.Fract(c.H))*360, float64(c.S), float64(c.V))
}

// RGBA implements the color.Color interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (h HSV) RGBA() (r, g, b, a uint32) {
	c := h.srgb()
	fa := float64(clamp01(h.A))
	r = uint32(c.R*fa*65535.0 + 0.5)
	g = uint32(c.G*fa*65535.0 + 0.5)
	b = uint32(c.B*fa*65535.0 + 0.5)
	a = uint32(fa*65535.0 + 0.5)
	return
}

// AsRGBA returns a standard color.RGBA type
func (h HSV) AsRGBA() color.RGBA {
	c := h.srgb()
	fa := float64(clamp01(h.A))
	return color.RGBA{uint8(c.R*fa*255.0 + 0.5), uint8(c.G*fa*255.0 + 0.5), uint8(c.B*fa*255.0 + 0.5), uint8(fa*255.0 + 0.5)}
}

// SetUint32 sets components from unsigned 32bit integers (alpha-premultiplied)
func (h *HSV) SetUint32(r, g, b, a uint32) {
	if a == 0 {
		*h = HSV{}
		return
	}
	fa := float64(a) / 65535.0
	c := colorful.Color{
		R: (float64(r) / 65535.0) / fa,
		G: (float64(g) / 65535.0) / fa,
		B: (float64(b) / 65535.0) / fa,
	}
	hd, s, v := c.Clamped().Hsv()
	h.H = float32(hd / 360)
	h.S = float32(s)
	h.V = float32(v)
	h.A = float32(fa)
}

// SetColor sets from a standard color.Color
func (h *HSV) SetColor(ci color.Color) {
	if ci == nil {
		*h = HSV{}
		return
	}
	h.SetUint32(ci.RGBA())
}

// WithH returns the color with the given hue.
func (h HSV) WithH(hue float32) HSV {
	h.H = hue
	return h
}

// WithS returns the color with the given saturation.
func (h HSV) WithS(s float32) HSV {
	h.S = s
	return h
}

// WithV returns the color with the given value.
func (h HSV) WithV(v float32) HSV {
	h.V = v
	return h
}

func (h HSV) String() string {
	return fmt.Sprintf("hsv(%.3g, %.3g, %.3g)", h.H, h.S, h.V)
}
