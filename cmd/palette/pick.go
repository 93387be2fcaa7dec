// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/palette/base/errors"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/colors/hsv"
	"cogentcore.org/palette/events"
	"cogentcore.org/palette/math32"
	"cogentcore.org/palette/picker"
	"github.com/muesli/termenv"
)

func runPick(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c.register(fs)
	widget := fs.String("widget", "rect", "picker: rect or ring")
	control := fs.String("control", "", "control the points are local to: plane or strip (rect), ring or square (ring); defaults to the first")
	initial := fs.String("color", "", "initial hex color, overriding the configuration")
	noSwatch := fs.Bool("no-swatch", false, "do not print a color swatch")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: palette pick [flags] x,y ...")
		fmt.Fprintln(fs.Output(), "The first point presses, the last releases, and the rest drag.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("pick: no points given")
	}
	path := make([]math32.Vector2, fs.NArg())
	for i, arg := range fs.Args() {
		p, err := parsePoint(arg)
		if err != nil {
			return err
		}
		path[i] = p
	}
	cfg, err := c.setup(stderr)
	if err != nil {
		return err
	}
	if *initial != "" {
		cfg.Rect.Initial = *initial
		cfg.Ring.Initial = *initial
	}
	w, err := pick(cfg, *widget, *control, path)
	if err != nil {
		return err
	}
	printPick(stdout, w, !*noSwatch)
	return nil
}

// widget is the part of a picker that pick reports on.
type widget interface {
	Tick(p events.Pointer) bool
	HSV() hsv.HSV
	Color() color.RGBA
	Indicators() picker.Indicators
}

// pick builds the named widget and feeds it the given pointer path,
// whose points are local to the named control.
// The rect strip is laid out to the right of the plane.
func pick(cfg picker.Config, name, control string, path []math32.Vector2) (widget, error) {
	var w widget
	var origin math32.Vector2
	switch name {
	case "rect":
		strip := math32.Vec2(cfg.Rect.Plane.Width/2+cfg.Rect.Strip.Width, 0)
		r, err := picker.NewRect(cfg.Rect, picker.Anchor{}, picker.Anchor{Center: strip})
		if err != nil {
			return nil, err
		}
		switch control {
		case "", "plane":
		case "strip":
			origin = strip
		default:
			return nil, fmt.Errorf("pick: rect has no control %q", control)
		}
		w = r
	case "ring":
		g, err := picker.NewRing(cfg.Ring, nil, nil)
		if err != nil {
			return nil, err
		}
		switch control {
		case "", "ring", "square":
		default:
			return nil, fmt.Errorf("pick: ring has no control %q", control)
		}
		w = g
	default:
		return nil, fmt.Errorf("pick: unknown widget %q", name)
	}
	if len(path) == 1 {
		w.Tick(events.Tap(origin.Add(path[0])))
		return w, nil
	}
	var tr events.Tracker
	for i, p := range path {
		w.Tick(tr.Sample(origin.Add(p), i < len(path)-1))
	}
	return w, nil
}

// parsePoint parses a point of the form x,y.
func parsePoint(s string) (math32.Vector2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math32.Vector2{}, fmt.Errorf("pick: point %q must be of the form x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("pick: point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return math32.Vector2{}, fmt.Errorf("pick: point %q: %w", s, err)
	}
	return math32.Vec2(float32(x), float32(y)), nil
}

func printPick(w io.Writer, p widget, withSwatch bool) {
	c := p.HSV()
	hex := colors.AsHex(p.Color())
	fmt.Fprintf(w, "%v %s\n", c, hex)
	ind := p.Indicators()
	fmt.Fprintf(w, "primary %v\nsecondary %v\n", ind.Primary, ind.Secondary)
	if withSwatch {
		fmt.Fprintln(w, swatch(termenv.NewOutput(w), c, "  "+hex+"  "))
	}
}

// swatch returns text drawn over the given color, in a contrasting tint.
// It is plain text for outputs without color support.
func swatch(out *termenv.Output, c hsv.HSV, text string) string {
	bg := colors.AsHex(c.AsRGBA())
	fg := colors.AsHex(picker.ContrastTint(c.V))
	return out.String(text).Background(out.Color(bg)).Foreground(out.Color(fg)).String()
}
