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

// Rect is a rectangular color picker: a hue (x) by saturation (y) plane,
// which is the primary control, and a separate value strip, which is the
// secondary control.
type Rect struct {
	cfg   RectConfig
	state *State
	plane *Layer
	strip *Layer
	m     machine
}

// NewRect returns a new rectangular picker with the given configuration.
// The plane and strip projectors convert screen positions
// into the local space of each control; nil means screen space is
// already local. It returns an error wrapping [ErrConfig] if the
// configuration is invalid.
func NewRect(cfg RectConfig, plane, strip Projector) (*Rect, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial, _ := initialColor(cfg.Initial, colors.White)
	r := &Rect{
		cfg:   cfg,
		state: NewState(initial),
		plane: NewLayer(Gradient{Kind: HueSat}, cfg.PlaneResolution.Cols, cfg.PlaneResolution.Rows),
		strip: NewLayer(Gradient{Kind: Value}, cfg.StripResolution.Cols, cfg.StripResolution.Rows),
	}
	planeSize, stripSize := cfg.Plane.Vector(), cfg.Strip.Vector()
	r.m = machine{
		name: "rect",
		primary: control{
			hit: func(screen math32.Vector2) (math32.Vector2, bool) {
				return HitRect(toLocal(plane, screen), planeSize)
			},
			apply: func(local math32.Vector2) bool {
				return r.update(PlaneToHueSat(local, planeSize, r.state.HSV()))
			},
		},
		secondary: control{
			hit: func(screen math32.Vector2) (math32.Vector2, bool) {
				return HitRect(toLocal(strip, screen), stripSize)
			},
			apply: func(local math32.Vector2) bool {
				return r.update(StripToValue(local, stripSize, r.state.HSV()))
			},
		},
	}
	r.refresh()
	Logger().Info("picker: created rect picker", "color", r.state.HSV(),
		"plane", cfg.PlaneResolution, "strip", cfg.StripResolution)
	return r, nil
}

// update sets the color and refreshes the dependent bitmaps.
func (r *Rect) update(c hsv.HSV) bool {
	changed := r.state.SetHSV(c)
	r.refresh()
	return changed
}

func (r *Rect) refresh() {
	c := r.state.HSV()
	r.plane.Refresh(c)
	r.strip.Refresh(c)
}

// Tick runs one frame of interaction with the given pointer sample,
// and reports whether the color changed.
func (r *Rect) Tick(p events.Pointer) bool {
	return r.m.tick(p)
}

// Mode returns the current interaction mode.
func (r *Rect) Mode() Modes { return r.m.mode }

// Config returns the configuration of the picker.
func (r *Rect) Config() RectConfig { return r.cfg }

// State returns the color state of the picker.
func (r *Rect) State() *State { return r.state }

// HSV returns the current color.
func (r *Rect) HSV() hsv.HSV { return r.state.HSV() }

// Color returns the current color as RGB.
func (r *Rect) Color() color.RGBA { return r.state.RGBA() }

// SetColor sets the current color, refreshing the bitmaps as needed.
func (r *Rect) SetColor(c color.Color) *Rect {
	r.update(hsv.FromColor(c))
	return r
}

// SetHSV sets the current color, refreshing the bitmaps as needed.
func (r *Rect) SetHSV(c hsv.HSV) *Rect {
	r.update(c)
	return r
}

// Indicators returns the knobs and preview color for the current color.
func (r *Rect) Indicators() Indicators {
	return RectIndicators(r.state.HSV(), r.cfg.Plane.Vector(), r.cfg.Strip.Vector())
}

// PlaneImage returns the bitmap of the hue by saturation plane,
// which is drawn at the current value.
func (r *Rect) PlaneImage() *Surface { return r.plane.Surface }

// StripImage returns the bitmap of the value strip,
// which is drawn at the current hue and saturation.
func (r *Rect) StripImage() *Surface { return r.strip.Surface }

// PreviewImage returns a uniform image of the current color.
func (r *Rect) PreviewImage() image.Image { return colors.Uniform(r.Color()) }
