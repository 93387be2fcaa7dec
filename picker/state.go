// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image/color"

	"cogentcore.org/palette/colors/hsv"
)

// State is the current color of a widget. HSV is the source of truth;
// RGB is always derived from it. Each widget owns one State, which its
// controls share by pointer.
type State struct {
	color    hsv.HSV
	revision uint64
}

// NewState returns a new State holding the given color.
func NewState(c color.Color) *State {
	st := &State{}
	st.color = hsv.FromColor(c).Clamped()
	return st
}

// HSV returns the current color.
func (st *State) HSV() hsv.HSV {
	return st.color
}

// RGBA returns the current color converted to RGB.
func (st *State) RGBA() color.RGBA {
	return st.color.AsRGBA()
}

// SetHSV sets the current color, clamping every component to [0, 1].
// It reports whether the color changed.
func (st *State) SetHSV(c hsv.HSV) bool {
	c = c.Clamped()
	if c == st.color {
		return false
	}
	st.color = c
	st.revision++
	return true
}

// SetColor sets the current color from an RGB color.
// The hue of a gray color is lost in the conversion, so it becomes 0.
// It reports whether the color changed.
func (st *State) SetColor(c color.Color) bool {
	return st.SetHSV(hsv.FromColor(c))
}

// Revision returns a counter that increases every time the color changes.
func (st *State) Revision() uint64 {
	return st.revision
}
