// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the per-frame pointer samples that hosts
// feed to the color pickers.
package events

import (
	"fmt"

	"cogentcore.org/palette/math32"
)

// Pointer is one frame's sample of the primary pointer (mouse button 0)
// in screen space. Pressed and Released are edges: they are true only in
// the frame where the button went down or up. Held is the level state.
type Pointer struct {

	// Pos is the pointer position in screen space.
	Pos math32.Vector2

	// Pressed is whether the button went down this frame.
	Pressed bool

	// Held is whether the button is down this frame.
	Held bool

	// Released is whether the button went up this frame.
	Released bool
}

// Press returns a sample where the button goes down at pos.
func Press(pos math32.Vector2) Pointer {
	return Pointer{Pos: pos, Pressed: true, Held: true}
}

// Drag returns a sample where the button stays down at pos.
func Drag(pos math32.Vector2) Pointer {
	return Pointer{Pos: pos, Held: true}
}

// Release returns a sample where the button goes up at pos.
func Release(pos math32.Vector2) Pointer {
	return Pointer{Pos: pos, Released: true}
}

// Hover returns a sample with the button up at pos.
func Hover(pos math32.Vector2) Pointer {
	return Pointer{Pos: pos}
}

// Tap returns a sample where the button goes down and up
// within the same frame at pos.
func Tap(pos math32.Vector2) Pointer {
	return Pointer{Pos: pos, Pressed: true, Released: true}
}

// Type returns the event type that best describes the sample.
func (p Pointer) Type() Types {
	switch {
	case p.Pressed && p.Released:
		return Click
	case p.Pressed:
		return MouseDown
	case p.Released:
		return MouseUp
	case p.Held:
		return MouseDrag
	}
	return MouseMove
}

func (p Pointer) String() string {
	return fmt.Sprintf("%v{Pos: %v}", p.Type(), p.Pos)
}
