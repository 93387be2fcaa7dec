// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"
	"image/color"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/math32"
)

// Knob is the indicator of the current color on one control.
type Knob struct {

	// Pos is the knob position in the local space of its control.
	Pos math32.Vector2

	// Tint is the knob color, chosen to contrast with the control under it.
	Tint color.RGBA
}

func (k Knob) String() string {
	return fmt.Sprintf("Knob{Pos: %v, Tint: %s}", k.Pos, colors.AsHex(k.Tint))
}

// ContrastTint returns black for a lightness above 0.5, and white otherwise.
func ContrastTint(lightness float32) color.RGBA {
	if lightness > 0.5 {
		return colors.Black
	}
	return colors.White
}

// Indicators are everything a host draws on top of the bitmaps of a
// picker. They are a pure function of the current color.
type Indicators struct {

	// Primary is the knob on the plane (rect) or ring (ring).
	Primary Knob

	// Secondary is the knob on the value strip (rect) or square (ring).
	Secondary Knob

	// Preview is the color of the preview swatch.
	Preview color.RGBA
}

// RectIndicators returns the indicators of a rectangular picker with the
// given geometry for color c. Both knobs are tinted from the value.
func RectIndicators(c hsv.HSV, plane, strip math32.Vector2) Indicators {
	tint := ContrastTint(c.V)
	return Indicators{
		Primary:   Knob{Pos: HueSatToPlane(c, plane), Tint: tint},
		Secondary: Knob{Pos: ValueToStrip(c, strip), Tint: tint},
		Preview:   c.AsRGBA(),
	}
}

// RingIndicators returns the indicators of a circular picker with the
// given geometry for color c. The ring knob sits on the middle circle
// of the ring and, since ring hues are fully bright, is tinted black for
// hues below 0.5. The square knob is tinted from the value. Some pickers
// apply the hue rule to the square knob instead; here it follows the knob
// that sits on the hue.
func RingIndicators(c hsv.HSV, inner, outer, square float32) Indicators {
	ringTint := colors.White
	if c.H < 0.5 {
		ringTint = colors.Black
	}
	return Indicators{
		Primary:   Knob{Pos: HueToRing(c.H, (inner+outer)/2), Tint: ringTint},
		Secondary: Knob{Pos: SatValToSquare(c, square), Tint: ContrastTint(c.V)},
		Preview:   c.AsRGBA(),
	}
}
