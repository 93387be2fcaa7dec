// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "cogentcore.org/palette/math32"

// Tracker derives edge-triggered [Pointer] samples from level input,
// for hosts that only report whether the button is currently down.
// The zero value starts with the button up.
type Tracker struct {
	down bool
}

// Sample returns the sample for this frame given the pointer position
// and whether the button is currently down.
func (tr *Tracker) Sample(pos math32.Vector2, down bool) Pointer {
	p := Pointer{
		Pos:      pos,
		Pressed:  down && !tr.down,
		Held:     down,
		Released: !down && tr.down,
	}
	tr.down = down
	return p
}

// Down returns whether the button was down in the last sample.
func (tr *Tracker) Down() bool {
	return tr.down
}
