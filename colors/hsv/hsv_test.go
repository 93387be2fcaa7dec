// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsv

import (
	"image/color"
	"math"
	"testing"

	"cogentcore.org/palette/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestHSV(t *testing.T) {
	assert.Equal(t, HSV{0.5, 0.25, 0.75, 1}, New(0.5, 0.25, 0.75))

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, New(0, 1, 1).AsRGBA())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, New(1, 1, 1).AsRGBA())
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, New(1.0/3, 1, 1).AsRGBA())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, New(2.0/3, 1, 1).AsRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, New(0.7, 0, 1).AsRGBA())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, New(0.7, 1, 0).AsRGBA())

	r, g, b, a := New(0, 1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, "hsv(0.5, 0.25, 1)", New(0.5, 0.25, 1).String())
}

func TestFromColor(t *testing.T) {
	have := FromColor(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, New(0, 1, 1), have)

	have = FromColor(color.RGBA{0, 0, 255, 255})
	tolassert.EqualTol(t, 2.0/3, have.H, 1e-5)
	tolassert.Equal(t, 1, have.S)
	tolassert.Equal(t, 1, have.V)

	have = FromColor(color.RGBA{128, 0, 0, 128})
	tolassert.Equal(t, 0, have.H)
	tolassert.EqualTol(t, 1, have.S, 1e-5)
	tolassert.EqualTol(t, 1, have.V, 1e-5)
	tolassert.EqualTol(t, 128.0/255, have.A, 1e-5)

	have = FromColor(color.RGBA{128, 128, 128, 255})
	tolassert.Equal(t, 0, have.S)
	tolassert.EqualTol(t, 128.0/255, have.V, 1e-5)

	assert.Equal(t, HSV{}, FromColor(color.RGBA{}))
	assert.Equal(t, HSV{}, FromColor(nil))

	want := New(0.25, 0.5, 0.75)
	assert.Equal(t, want, Model.Convert(want))
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{
		{255, 255, 255, 255},
		{200, 20, 90, 255},
		{12, 240, 130, 255},
		{0, 0, 0, 255},
		{70, 70, 200, 255},
	} {
		assert.Equal(t, c, FromColor(c).AsRGBA())
	}
}

func TestClamped(t *testing.T) {
	assert.Equal(t, HSV{1, 0, 1, 1}, HSV{1.5, -2, 3, 1}.Clamped())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, HSV{0, -1, 2, 1}.AsRGBA())

	nan := float32(math.NaN())
	assert.Equal(t, HSV{0, 0.5, 0, 1}, HSV{nan, 0.5, nan, 1}.Clamped())
	assert.Equal(t, color.RGBA{}, HSV{0, 0, 1, nan}.AsRGBA())
}

func TestWith(t *testing.T) {
	c := New(0.1, 0.2, 0.3)
	assert.Equal(t, New(0.4, 0.2, 0.3), c.WithH(0.4))
	assert.Equal(t, New(0.1, 0.4, 0.3), c.WithS(0.4))
	assert.Equal(t, New(0.1, 0.2, 0.4), c.WithV(0.4))
}
