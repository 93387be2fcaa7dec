// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/math32"
)

// AngleToHue returns the hue for a direction in local space:
// 0 pointing right (+X), increasing counterclockwise, in [0, 1).
func AngleToHue(dir math32.Vector2) float32 {
	deg := math32.RadToDeg(dir.Angle())
	if deg < 0 {
		deg += 360
	}
	h := deg / 360
	if h >= 1 {
		return 0
	}
	return h
}

// HueToRing returns the point on the circle of the given radius
// at the angle of the given hue. It is the inverse of [AngleToHue].
func HueToRing(h, radius float32) math32.Vector2 {
	return math32.FromAngle(math32.DegToRad(h * 360)).MulScalar(radius)
}

// PlaneToHueSat sets the hue and saturation of c from a clamped local
// position in a hue (x) by saturation (y) plane of the given size.
// Value is preserved.
func PlaneToHueSat(local, size math32.Vector2, c hsv.HSV) hsv.HSV {
	c.H = (local.X + size.X/2) / size.X
	c.S = (local.Y + size.Y/2) / size.Y
	return c
}

// HueSatToPlane returns the local position of c in a hue by saturation
// plane of the given size.
func HueSatToPlane(c hsv.HSV, size math32.Vector2) math32.Vector2 {
	return math32.Vec2(c.H*size.X-size.X/2, c.S*size.Y-size.Y/2)
}

// StripToValue sets the value of c from a clamped local position in a
// value strip of the given size. Hue and saturation are preserved.
func StripToValue(local, size math32.Vector2, c hsv.HSV) hsv.HSV {
	c.V = (local.Y + size.Y/2) / size.Y
	return c
}

// ValueToStrip returns the local position of c in a value strip of the
// given size. The strip is one-dimensional, so x is always 0.
func ValueToStrip(c hsv.HSV, size math32.Vector2) math32.Vector2 {
	return math32.Vec2(0, c.V*size.Y-size.Y/2)
}

// SquareToSatVal sets the saturation and value of c from a clamped local
// position in a saturation (x) by value (y) square with the given side.
// Hue is preserved.
func SquareToSatVal(local math32.Vector2, size float32, c hsv.HSV) hsv.HSV {
	c.S = (local.X + size/2) / size
	c.V = (local.Y + size/2) / size
	return c
}

// SatValToSquare returns the local position of c in a saturation by
// value square with the given side.
func SatValToSquare(c hsv.HSV, size float32) math32.Vector2 {
	return math32.Vec2(c.S*size-size/2, c.V*size-size/2)
}
