// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"golang.org/x/image/draw"
)

// Stretch returns the image scaled to the given display size with nearest
// neighbor sampling, so that every bitmap cell becomes a solid block.
// A non-positive size returns an unscaled RGBA copy.
func Stretch(src image.Image, width, height int) *image.RGBA {
	ui := Unwrap(src)
	if width <= 0 || height <= 0 {
		return CloneAsRGBA(ui)
	}
	b := ui.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return CloneAsRGBA(ui)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), ui, b, draw.Src, nil)
	return dst
}
