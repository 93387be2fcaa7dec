// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector/point with X and Y components.
// Local widget space uses Y up, with the origin at the widget center.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// If scalar is zero, returns zero.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2{}
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Hypot(v.X, v.Y)
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector stays zero.
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// Clamp sets this vector's components to be no less than the corresponding
// components of min and not greater than the corresponding component of max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y)}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Angle returns the counter-clockwise angle of this vector from the
// positive X axis, in radians within (-Pi, Pi].
func (v Vector2) Angle() float32 {
	return Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector at the given counter-clockwise angle
// from the positive X axis, in radians.
func FromAngle(rad float32) Vector2 {
	s, c := Sincos(rad)
	return Vector2{c, s}
}
