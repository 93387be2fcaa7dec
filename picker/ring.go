// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"
	"image/color"

	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/events"
	"cogentcore.org/palette/math32"
)

// Ring is a circular color picker: a hue ring, which is the primary
// control, around a saturation (x) by value (y) square, which is the
// secondary control. Both share the same center.
type Ring struct {
	cfg    RingConfig
	state  *State
	ring   *Layer
	square *Layer
	m      machine
}

// NewRing returns a new circular picker with the given configuration.
// The ring and square projectors convert screen positions
// into the local space of each control; nil means screen space is
// already local. It returns an error wrapping [ErrConfig] if the
// configuration is invalid.
func NewRing(cfg RingConfig, ring, square Projector) (*Ring, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial, _ := initialColor(cfg.Initial, colors.Red)
	g := &Ring{
		cfg:    cfg,
		state:  NewState(initial),
		ring:   NewLayer(Gradient{Kind: HueRing, Inner: cfg.InnerRadius, Outer: cfg.OuterRadius}, cfg.RingResolution, cfg.RingResolution),
		square: NewLayer(Gradient{Kind: SatVal}, cfg.SquareResolution, cfg.SquareResolution),
	}
	g.m = machine{
		name: "ring",
		primary: control{
			hit: func(screen math32.Vector2) (math32.Vector2, bool) {
				return HitRing(toLocal(ring, screen), cfg.InnerRadius, cfg.OuterRadius)
			},
			apply: func(local math32.Vector2) bool {
				return g.update(g.state.HSV().WithH(AngleToHue(local)))
			},
		},
		secondary: control{
			hit: func(screen math32.Vector2) (math32.Vector2, bool) {
				return HitSquare(toLocal(square, screen), cfg.Square)
			},
			apply: func(local math32.Vector2) bool {
				return g.update(SquareToSatVal(local, cfg.Square, g.state.HSV()))
			},
		},
	}
	g.refresh()
	Logger().Info("picker: created ring picker", "color", g.state.HSV(),
		"ring", cfg.RingResolution, "square", cfg.SquareResolution)
	return g, nil
}

// update sets the color and refreshes the dependent bitmaps.
func (g *Ring) update(c hsv.HSV) bool {
	changed := g.state.SetHSV(c)
	g.refresh()
	return changed
}

func (g *Ring) refresh() {
	c := g.state.HSV()
	g.ring.Refresh(c)
	g.square.Refresh(c)
}

// Tick runs one frame of interaction with the given pointer sample,
// and reports whether the color changed.
func (g *Ring) Tick(p events.Pointer) bool {
	return g.m.tick(p)
}

// Mode returns the current interaction mode.
func (g *Ring) Mode() Modes { return g.m.mode }

// Config returns the configuration of the picker.
func (g *Ring) Config() RingConfig { return g.cfg }

// State returns the color state of the picker.
func (g *Ring) State() *State { return g.state }

// HSV returns the current color.
func (g *Ring) HSV() hsv.HSV { return g.state.HSV() }

// Color returns the current color as RGB.
func (g *Ring) Color() color.RGBA { return g.state.RGBA() }

// SetColor sets the current color, refreshing the bitmaps as needed.
func (g *Ring) SetColor(c color.Color) *Ring {
	g.update(hsv.FromColor(c))
	return g
}

// SetHSV sets the current color, refreshing the bitmaps as needed.
func (g *Ring) SetHSV(c hsv.HSV) *Ring {
	g.update(c)
	return g
}

// Indicators returns the knobs and preview color for the current color.
func (g *Ring) Indicators() Indicators {
	return RingIndicators(g.state.HSV(), g.cfg.InnerRadius, g.cfg.OuterRadius, g.cfg.Square)
}

// RingImage returns the bitmap of the hue ring, which covers the outer
// diameter and is transparent outside the ring.
func (g *Ring) RingImage() *Surface { return g.ring.Surface }

// SquareImage returns the bitmap of the saturation by value square,
// which is drawn at the current hue.
func (g *Ring) SquareImage() *Surface { return g.square.Surface }

// PreviewImage returns a uniform image of the current color.
func (g *Ring) PreviewImage() image.Image { return colors.Uniform(g.Color()) }
