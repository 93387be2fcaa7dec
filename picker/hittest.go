// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import "cogentcore.org/palette/math32"

// HitRect tests a local position against a rectangle of the given size
// centered on the origin. It returns the position clamped to the
// rectangle, boundary included, and whether the unclamped position is
// strictly inside it. A position exactly on the boundary is outside.
func HitRect(local, size math32.Vector2) (math32.Vector2, bool) {
	half := size.MulScalar(0.5)
	inside := local.X > -half.X && local.X < half.X &&
		local.Y > -half.Y && local.Y < half.Y
	return local.Clamp(half.Negate(), half), inside
}

// HitSquare is [HitRect] for a square with the given side length.
func HitSquare(local math32.Vector2, size float32) (math32.Vector2, bool) {
	return HitRect(local, math32.Vector2Scalar(size))
}

// HitRing tests a local position against a ring centered on the origin.
// It returns the position moved along its own direction onto the middle
// circle of the ring, and whether its distance from the center is
// strictly between inner and outer. The origin projects along angle 0.
func HitRing(local math32.Vector2, inner, outer float32) (math32.Vector2, bool) {
	d := local.Length()
	inside := d > inner && d < outer
	dir := math32.Vec2(1, 0)
	if d > 0 {
		dir = local.DivScalar(d)
	}
	return dir.MulScalar((inner + outer) / 2), inside
}
