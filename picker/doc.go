// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker provides two interactive HSV color picker widgets:
//
//   - [Rect], a hue by saturation plane with a separate value strip.
//   - [Ring], a hue ring around a saturation by value square.
//
// A widget does not draw or receive events itself. The host calls
// Tick once per frame with the current [events.Pointer] sample, and
// then displays the widget's bitmaps ([Rect.PlaneImage], [Ring.RingImage], ...)
// stretched to their configured sizes, along with the knobs and preview
// color reported by Indicators. Screen positions are converted to each
// control's local space (origin at the control center, Y up) by a
// host supplied [Projector].
//
// Widgets are single-threaded: Tick, SetColor and the accessors must
// all be called from the same goroutine (typically the frame loop).
package picker
