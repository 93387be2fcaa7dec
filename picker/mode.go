// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/palette/events"
	"cogentcore.org/palette/math32"
)

// Modes are the interaction modes of a picker: which of its two
// controls, if any, owns the pointer drag.
type Modes int32

const (
	// Idle is when no control owns the pointer.
	Idle Modes = iota

	// DraggingPrimary is when the plane (rect) or ring (ring) owns the pointer.
	DraggingPrimary

	// DraggingSecondary is when the value strip (rect) or square (ring)
	// owns the pointer.
	DraggingSecondary
)

func (m Modes) String() string {
	switch m {
	case Idle:
		return "Idle"
	case DraggingPrimary:
		return "DraggingPrimary"
	case DraggingSecondary:
		return "DraggingSecondary"
	}
	return "Unknown"
}

// control is one draggable control of a picker.
type control struct {

	// hit projects a screen position into local space and hit tests it,
	// returning the clamped local position and whether it was inside.
	hit func(screen math32.Vector2) (math32.Vector2, bool)

	// apply updates the color from a clamped local position,
	// and reports whether the color changed.
	apply func(local math32.Vector2) bool
}

// machine is the interaction state machine shared by both pickers.
type machine struct {
	name      string
	mode      Modes
	primary   control
	secondary control
}

// tick runs one frame of interaction for the given sample,
// and reports whether the color changed.
func (m *machine) tick(p events.Pointer) bool {
	switch m.mode {
	case Idle:
		return m.idle(p)
	case DraggingPrimary:
		return m.drag(&m.primary, p)
	case DraggingSecondary:
		return m.drag(&m.secondary, p)
	}
	return false
}

// idle acquires a control on a press inside it, with the primary
// control taking priority, and applies the press sample at once.
func (m *machine) idle(p events.Pointer) bool {
	if !p.Pressed {
		return false
	}
	if local, inside := m.primary.hit(p.Pos); inside {
		m.set(DraggingPrimary, p)
		return m.release(m.primary.apply(local), p)
	}
	if local, inside := m.secondary.hit(p.Pos); inside {
		m.set(DraggingSecondary, p)
		return m.release(m.secondary.apply(local), p)
	}
	return false
}

// drag applies the clamped sample to the owning control, inside or not.
func (m *machine) drag(c *control, p events.Pointer) bool {
	local, _ := c.hit(p.Pos)
	return m.release(c.apply(local), p)
}

// release returns to Idle if the button went up in p,
// passing changed through.
func (m *machine) release(changed bool, p events.Pointer) bool {
	if p.Released {
		m.set(Idle, p)
	}
	return changed
}

func (m *machine) set(mode Modes, p events.Pointer) {
	Logger().Debug("picker: mode transition", "picker", m.name, "from", m.mode, "to", mode, "pointer", p)
	m.mode = mode
}
