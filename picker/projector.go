// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import "cogentcore.org/palette/math32"

// Projector converts a screen space position into the local space of one
// control, where the control is centered on the origin and Y points up.
// Projection is supplied by the host, since it depends on the host's
// camera or viewport.
type Projector interface {
	ToLocal(screen math32.Vector2) math32.Vector2
}

// ProjectorFunc is a function that implements [Projector].
type ProjectorFunc func(screen math32.Vector2) math32.Vector2

func (f ProjectorFunc) ToLocal(screen math32.Vector2) math32.Vector2 {
	return f(screen)
}

// Anchor is a [Projector] for controls drawn without rotation:
// local = (screen - Center) / Scale, with Y negated if FlipY is set,
// as needed for hosts with a Y-down screen space.
type Anchor struct {

	// Center is the screen position of the control center.
	Center math32.Vector2

	// Scale is the number of screen units per local unit.
	// Zero means 1.
	Scale float32

	// FlipY negates the Y axis.
	FlipY bool
}

func (a Anchor) ToLocal(screen math32.Vector2) math32.Vector2 {
	local := screen.Sub(a.Center)
	if a.Scale != 0 {
		local = local.DivScalar(a.Scale)
	}
	if a.FlipY {
		local.Y = -local.Y
	}
	return local
}

// toLocal projects with p, or returns screen unchanged if p is nil.
func toLocal(p Projector, screen math32.Vector2) math32.Vector2 {
	if p == nil {
		return screen
	}
	return p.ToLocal(screen)
}
