// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"cogentcore.org/palette/base/iox/imagex"
	"cogentcore.org/palette/base/tolassert"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/events"
	"cogentcore.org/palette/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRing(t *testing.T) *Ring {
	t.Helper()
	g, err := NewRing(DefaultRingConfig(), nil, nil)
	require.NoError(t, err)
	return g
}

func TestNewRing(t *testing.T) {
	g := newTestRing(t)
	assert.Equal(t, Idle, g.Mode())
	assert.Equal(t, hsv.New(0, 1, 1), g.HSV())
	assert.Equal(t, colors.Red, g.Color())
	assert.Equal(t, colors.Red, colors.ToUniform(g.PreviewImage()))
	assert.Equal(t, 200, g.RingImage().Cols())
	assert.Equal(t, 100, g.SquareImage().Rows())
	assert.Equal(t, DefaultRingConfig(), g.Config())

	cfg := DefaultRingConfig()
	cfg.InnerRadius = 100
	g, err := NewRing(cfg, nil, nil)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, g)
}

func TestRingPressOutside(t *testing.T) {
	g := newTestRing(t)
	for _, pos := range []math32.Vector2{{X: 0, Y: 200}, {X: 45, Y: 60}, {X: 75, Y: 0}, {X: 100, Y: 0}} {
		assert.False(t, g.Tick(events.Press(pos)), "pos %v", pos)
		assert.Equal(t, Idle, g.Mode(), "pos %v", pos)
	}
	assert.Equal(t, uint64(0), g.State().Revision())
}

func TestRingDragHue(t *testing.T) {
	g := newTestRing(t)

	// red is already at angle 0
	assert.False(t, g.Tick(events.Press(math32.Vec2(88, 0))))
	assert.Equal(t, DraggingPrimary, g.Mode())

	// the drag follows the angle, even inside the square
	assert.True(t, g.Tick(events.Drag(math32.Vec2(0, 5))))
	assert.Equal(t, DraggingPrimary, g.Mode())
	tolassert.EqualTol(t, 0.25, g.HSV().H, 1e-5)
	assert.Equal(t, float32(1), g.HSV().S)
	assert.Equal(t, float32(1), g.HSV().V)

	assert.True(t, g.Tick(events.Drag(math32.Vec2(-300, 0))))
	tolassert.EqualTol(t, 0.5, g.HSV().H, 1e-5)

	g.Tick(events.Release(math32.Vec2(-300, 0)))
	assert.Equal(t, Idle, g.Mode())

	assert.Equal(t, 1, g.RingImage().Commits(), "the ring is static")
	assert.Equal(t, 3, g.SquareImage().Commits())
}

func TestRingDragSquare(t *testing.T) {
	g := newTestRing(t)
	g.SetHSV(hsv.New(0.25, 1, 1))

	require.True(t, g.Tick(events.Press(math32.Vec2(0, 0))))
	assert.Equal(t, DraggingSecondary, g.Mode())
	assert.Equal(t, hsv.New(0.25, 0.5, 0.5), g.HSV())

	// the drag clamps to the square, even over the ring
	assert.True(t, g.Tick(events.Drag(math32.Vec2(88, 88))))
	assert.Equal(t, hsv.New(0.25, 1, 1), g.HSV())

	g.Tick(events.Release(math32.Vec2(-88, -88)))
	assert.Equal(t, Idle, g.Mode())
	assert.Equal(t, hsv.New(0.25, 0, 0), g.HSV())
	assert.Equal(t, 2, g.SquareImage().Commits(), "the square only depends on the hue")
}

func TestRingTapSameTick(t *testing.T) {
	g := newTestRing(t)
	assert.True(t, g.Tick(events.Tap(math32.Vec2(0, 90))))
	assert.Equal(t, Idle, g.Mode())
	tolassert.EqualTol(t, 0.25, g.HSV().H, 1e-5)
	assert.Equal(t, uint64(1), g.State().Revision())
}

func TestRingIndicatorScenario(t *testing.T) {
	g := newTestRing(t)
	ind := g.Indicators()
	assertVector(t, math32.Vec2(88, 0), ind.Primary.Pos)
	assert.Equal(t, colors.Black, ind.Primary.Tint)
	assertVector(t, math32.Vec2(50, 50), ind.Secondary.Pos)
	assert.Equal(t, colors.Black, ind.Secondary.Tint)

	g.SetHSV(hsv.New(0.6, 0.5, 0.4))
	ind = g.Indicators()
	assert.Equal(t, colors.White, ind.Primary.Tint)
	assert.Equal(t, colors.White, ind.Secondary.Tint)
	assert.Equal(t, hsv.New(0.6, 0.5, 0.4).AsRGBA(), ind.Preview)
}

func TestRingImages(t *testing.T) {
	g := newTestRing(t)
	g.SetColor(colors.AsRGBA(hsv.New(0.7, 0.3, 0.8)))
	c := g.HSV()
	assert.Equal(t, Generate(Gradient{Kind: HueRing, Inner: 76, Outer: 100}, 200, 200, c).Pix, imagex.CloneAsRGBA(g.RingImage()).Pix)
	assert.Equal(t, Generate(Gradient{Kind: SatVal}, 100, 100, c).Pix, imagex.CloneAsRGBA(g.SquareImage()).Pix)
}

func TestRingProjected(t *testing.T) {
	// a Y-down host with the picker centered at (300, 200) drawn at twice the size
	p := Anchor{Center: math32.Vec2(300, 200), Scale: 2, FlipY: true}
	g, err := NewRing(DefaultRingConfig(), p, p)
	require.NoError(t, err)
	g.Tick(events.Tap(math32.Vec2(300, 200-2*88)))
	tolassert.EqualTol(t, 0.25, g.HSV().H, 1e-5)
}
