// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color helpers shared by the pickers:
// conversion to [color.RGBA], hex parsing and formatting,
// and the reference colors used for knob contrast.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Reference colors.
var (
	// Black is used for knob tints over light backgrounds.
	Black = colornames.Black

	// White is used for knob tints over dark backgrounds,
	// and is the default initial color of the rectangular picker.
	White = colornames.White

	// Red is the default initial color of the circular picker.
	Red = colornames.Red

	// Transparent is the color of bitmap cells outside a control.
	Transparent = color.RGBA{}
)

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the given color as a hex color string
// of the form #RRGGBB, or #RRGGBBAA if it is not fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// ErrHex is returned by [FromHex] for malformed hex strings.
var ErrHex = errors.New("colors: invalid hex color")

// FromHex parses the given non-alpha-premultiplied hex color string
// and returns the resulting alpha-premultiplied color.
// The leading # is optional, and the RGB, RGBA, RRGGBB and RRGGBBAA
// forms are accepted.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var digits []uint8
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrHex, hex, err)
			}
			digits = append(digits, uint8(d*17))
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			d, err := strconv.ParseUint(hex[i:i+2], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrHex, hex, err)
			}
			digits = append(digits, uint8(d))
		}
	default:
		return color.RGBA{}, fmt.Errorf("%w %q: length must be 3, 4, 6 or 8", ErrHex, hex)
	}
	if len(digits) == 3 {
		digits = append(digits, 255)
	}
	return AsRGBA(color.NRGBA{digits[0], digits[1], digits[2], digits[3]}), nil
}
