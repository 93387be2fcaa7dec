// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of a pointer sample.
type Types int32

const (
	// MouseMove is a sample with the button up and no edge.
	MouseMove Types = iota

	// MouseDown happens in the frame the button is pressed down.
	MouseDown

	// MouseDrag is a sample with the button held and no edge.
	MouseDrag

	// MouseUp happens in the frame the button is released.
	MouseUp

	// Click is a MouseDown followed by MouseUp within a single frame.
	Click
)

func (t Types) String() string {
	switch t {
	case MouseMove:
		return "MouseMove"
	case MouseDown:
		return "MouseDown"
	case MouseDrag:
		return "MouseDrag"
	case MouseUp:
		return "MouseUp"
	case Click:
		return "Click"
	}
	return "UnknownType"
}
