// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"image"
	"image/color"

	"cogentcore.org/palette/base/iox/imagex"
)

// Surface is the double-buffered bitmap behind one control's display
// texture. Cells are written to a back buffer and published all at once
// by [Surface.Update], so readers never see a partially written bitmap.
//
// Cell coordinates count rows from the bottom, matching the Y-up local
// space of the controls; the image itself is stored top-down.
// Surface implements [imagex.Wrapped], reading from the front buffer.
type Surface struct {
	front, back *image.RGBA
	commits     int
}

var _ imagex.Wrapped = (*Surface)(nil)

// NewSurface returns a new transparent Surface with the given number of cells.
func NewSurface(cols, rows int) *Surface {
	r := image.Rect(0, 0, cols, rows)
	return &Surface{front: image.NewRGBA(r), back: image.NewRGBA(r)}
}

// Cols returns the number of cell columns.
func (s *Surface) Cols() int { return s.front.Rect.Dx() }

// Rows returns the number of cell rows.
func (s *Surface) Rows() int { return s.front.Rect.Dy() }

// Cell returns the published color of the given cell.
func (s *Surface) Cell(x, y int) color.RGBA {
	return s.front.RGBAAt(x, s.Rows()-1-y)
}

// SetCell sets the color of the given cell in the back buffer.
// It is not visible until the next [Surface.Update].
func (s *Surface) SetCell(x, y int, c color.RGBA) {
	s.back.SetRGBA(x, s.Rows()-1-y, c)
}

// Update publishes the back buffer by swapping it with the front buffer.
func (s *Surface) Update() {
	s.front, s.back = s.back, s.front
	s.commits++
}

// Commits returns the number of times the surface has been published.
func (s *Surface) Commits() int { return s.commits }

// Underlying returns the published front buffer.
func (s *Surface) Underlying() image.Image { return s.front }

func (s *Surface) ColorModel() color.Model { return s.front.ColorModel() }

func (s *Surface) Bounds() image.Rectangle { return s.front.Bounds() }

func (s *Surface) At(x, y int) color.Color { return s.front.At(x, y) }
