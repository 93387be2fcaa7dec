// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// Wrapped extends the image.Image interface with two methods that manage
// the wrapping of an underlying Go image.Image. Double-buffered bitmaps use it
// to publish a fully written back buffer in one step.
type Wrapped interface {
	image.Image

	// Update is called whenever the image data has been updated,
	// to publish the new data to readers of the image.
	Update()

	// Underlying returns the underlying image.Image, which should
	// be called whenever passing the image to some other Go-based
	// function that is likely to be optimized for different image types,
	// such as draw.Draw.
	Underlying() image.Image
}

// Update calls Update on a wrapped [imagex.Wrapped] if it is one.
func Update(src image.Image) {
	if im, ok := src.(Wrapped); ok {
		im.Update()
	}
}

// Unwrap calls Underlying on a wrapped [imagex.Wrapped] if it is one.
func Unwrap(src image.Image) image.Image {
	if im, ok := src.(Wrapped); ok {
		return im.Underlying()
	}
	return src
}

// CloneAsRGBA returns an RGBA copy of the supplied image.
// Unwraps imagex.Wrapped wrapped images.
func CloneAsRGBA(src image.Image) *image.RGBA {
	ui := Unwrap(src)
	if ui == nil {
		return nil
	}
	return clone.AsRGBA(ui)
}
