// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"
	"testing"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/math32"
	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	st := NewState(colors.Red)
	assert.Equal(t, hsv.New(0, 1, 1), st.HSV())
	assert.Equal(t, colors.Red, st.RGBA())
	assert.Equal(t, uint64(0), st.Revision())

	assert.False(t, st.SetHSV(hsv.New(0, 1, 1)))
	assert.Equal(t, uint64(0), st.Revision())

	assert.True(t, st.SetHSV(hsv.New(2, -1, 0.5)))
	assert.Equal(t, hsv.New(1, 0, 0.5), st.HSV())
	assert.Equal(t, uint64(1), st.Revision())

	assert.True(t, st.SetColor(colors.White))
	assert.Equal(t, hsv.New(0, 0, 1), st.HSV())
	assert.Equal(t, colors.White, st.RGBA())
	assert.Equal(t, uint64(2), st.Revision())
}

func TestStateKeepsGrayHue(t *testing.T) {
	st := NewState(colors.Red)
	st.SetHSV(hsv.New(0.4, 0, 0.5))
	assert.Equal(t, float32(0.4), st.HSV().H, "hue survives zero saturation")
}

func TestStateRejectsNaN(t *testing.T) {
	st := NewState(colors.Red)
	st.SetHSV(hsv.New(float32(math.NaN()), 0.5, 1))
	assert.Equal(t, hsv.New(0, 0.5, 1), st.HSV())
}

func TestProjector(t *testing.T) {
	a := Anchor{Center: math32.Vec2(10, 20), Scale: 2, FlipY: true}
	assert.Equal(t, math32.Vec2(2, 5), a.ToLocal(math32.Vec2(14, 10)))

	a = Anchor{Center: math32.Vec2(10, 20)}
	assert.Equal(t, math32.Vec2(4, -10), a.ToLocal(math32.Vec2(14, 10)))

	f := ProjectorFunc(func(screen math32.Vector2) math32.Vector2 {
		return screen.MulScalar(-1)
	})
	assert.Equal(t, math32.Vec2(-1, 2), toLocal(f, math32.Vec2(1, -2)))
	assert.Equal(t, math32.Vec2(1, -2), toLocal(nil, math32.Vec2(1, -2)))
}
