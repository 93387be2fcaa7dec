// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"cogentcore.org/palette/base/iox/tomlx"
	"cogentcore.org/palette/base/iox/yamlx"
	"cogentcore.org/palette/colors"
	"cogentcore.org/palette/math32"
)

// MaxResolution is the largest bitmap dimension, in cells, that a
// widget accepts. Larger bitmaps are rejected at construction.
const MaxResolution = 4096

// ErrConfig is wrapped by every configuration validation error.
var ErrConfig = errors.New("picker: invalid configuration")

// Size is the display size of a control in local units.
type Size struct {
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
}

// Vector returns the size as a [math32.Vector2].
func (sz Size) Vector() math32.Vector2 {
	return math32.Vec2(sz.Width, sz.Height)
}

// Resolution is the number of bitmap cells of a control.
// It may differ from the display [Size]; the bitmap is stretched.
type Resolution struct {
	Cols int `toml:"cols" yaml:"cols"`
	Rows int `toml:"rows" yaml:"rows"`
}

// RectConfig is the geometry of a [Rect] picker.
type RectConfig struct {

	// Initial is the initial color as a hex string.
	// If empty, it is white.
	Initial string `toml:"initial" yaml:"initial"`

	// Plane is the display size of the hue by saturation plane.
	Plane Size `toml:"plane" yaml:"plane"`

	// PlaneResolution is the bitmap resolution of the plane.
	PlaneResolution Resolution `toml:"plane_resolution" yaml:"plane_resolution"`

	// Strip is the display size of the value strip.
	Strip Size `toml:"strip" yaml:"strip"`

	// StripResolution is the bitmap resolution of the value strip.
	StripResolution Resolution `toml:"strip_resolution" yaml:"strip_resolution"`
}

// RingConfig is the geometry of a [Ring] picker.
type RingConfig struct {

	// Initial is the initial color as a hex string.
	// If empty, it is red.
	Initial string `toml:"initial" yaml:"initial"`

	// InnerRadius is the inner radius of the hue ring in local units.
	InnerRadius float32 `toml:"inner_radius" yaml:"inner_radius"`

	// OuterRadius is the outer radius of the hue ring in local units.
	OuterRadius float32 `toml:"outer_radius" yaml:"outer_radius"`

	// RingResolution is the width and height of the ring bitmap in cells,
	// which covers the outer diameter.
	RingResolution int `toml:"ring_resolution" yaml:"ring_resolution"`

	// Square is the side length of the saturation by value square in local units.
	Square float32 `toml:"square" yaml:"square"`

	// SquareResolution is the width and height of the square bitmap in cells.
	SquareResolution int `toml:"square_resolution" yaml:"square_resolution"`
}

// Config holds the configuration of both picker widgets.
type Config struct {
	Rect RectConfig `toml:"rect" yaml:"rect"`
	Ring RingConfig `toml:"ring" yaml:"ring"`
}

// DefaultRectConfig returns the default [RectConfig]: a 100 by 100 plane
// sampled at one cell per unit and a 20 by 100 value strip.
func DefaultRectConfig() RectConfig {
	return RectConfig{
		Initial:         "#FFFFFF",
		Plane:           Size{100, 100},
		PlaneResolution: Resolution{100, 100},
		Strip:           Size{20, 100},
		StripResolution: Resolution{20, 100},
	}
}

// DefaultRingConfig returns the default [RingConfig]: a ring with radii
// 76 and 100 around a 100 unit square.
func DefaultRingConfig() RingConfig {
	return RingConfig{
		Initial:          "#FF0000",
		InnerRadius:      76,
		OuterRadius:      100,
		RingResolution:   200,
		Square:           100,
		SquareResolution: 100,
	}
}

// DefaultConfig returns the default [Config].
func DefaultConfig() Config {
	return Config{Rect: DefaultRectConfig(), Ring: DefaultRingConfig()}
}

// OpenConfig returns the [DefaultConfig] overridden by the settings in the
// given TOML (.toml) or YAML (.yaml, .yml) file, and validates the result.
func OpenConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(&cfg, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&cfg, filename)
	default:
		err = fmt.Errorf("picker.OpenConfig: unsupported config extension %q", ext)
	}
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate returns an error wrapping [ErrConfig] for every problem in
// either widget configuration.
func (cfg *Config) Validate() error {
	return errors.Join(cfg.Rect.Validate(), cfg.Ring.Validate())
}

// Validate returns an error wrapping [ErrConfig] for degenerate geometry,
// unusable resolutions, or a malformed initial color.
func (rc *RectConfig) Validate() error {
	var errs []error
	errs = append(errs, validSize("rect plane", rc.Plane))
	errs = append(errs, validResolution("rect plane", rc.PlaneResolution.Cols, rc.PlaneResolution.Rows))
	errs = append(errs, validSize("rect strip", rc.Strip))
	errs = append(errs, validResolution("rect strip", rc.StripResolution.Cols, rc.StripResolution.Rows))
	_, err := initialColor(rc.Initial, colors.White)
	errs = append(errs, err)
	return errors.Join(errs...)
}

// Validate returns an error wrapping [ErrConfig] for degenerate geometry,
// unusable resolutions, or a malformed initial color.
func (rc *RingConfig) Validate() error {
	var errs []error
	if rc.InnerRadius < 0 {
		errs = append(errs, fmt.Errorf("%w: ring inner radius %g is negative", ErrConfig, rc.InnerRadius))
	}
	if !math32.IsFinite(rc.InnerRadius) || !math32.IsFinite(rc.OuterRadius) {
		errs = append(errs, fmt.Errorf("%w: ring radii %g and %g must be finite", ErrConfig, rc.InnerRadius, rc.OuterRadius))
	}
	if !(rc.InnerRadius < rc.OuterRadius) {
		errs = append(errs, fmt.Errorf("%w: ring inner radius %g must be less than outer radius %g", ErrConfig, rc.InnerRadius, rc.OuterRadius))
	}
	errs = append(errs, validResolution("ring", rc.RingResolution, rc.RingResolution))
	errs = append(errs, validSize("ring square", Size{rc.Square, rc.Square}))
	errs = append(errs, validResolution("ring square", rc.SquareResolution, rc.SquareResolution))
	_, err := initialColor(rc.Initial, colors.Red)
	errs = append(errs, err)
	return errors.Join(errs...)
}

func validSize(name string, sz Size) error {
	if !(sz.Width > 0) || !(sz.Height > 0) {
		return fmt.Errorf("%w: %s size %gx%g must be positive", ErrConfig, name, sz.Width, sz.Height)
	}
	if math32.IsInf(sz.Width, 0) || math32.IsInf(sz.Height, 0) {
		return fmt.Errorf("%w: %s size %gx%g must be finite", ErrConfig, name, sz.Width, sz.Height)
	}
	return nil
}

func validResolution(name string, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %s resolution %dx%d must be positive", ErrConfig, name, cols, rows)
	}
	if cols > MaxResolution || rows > MaxResolution {
		return fmt.Errorf("%w: %s resolution %dx%d exceeds %d", ErrConfig, name, cols, rows, MaxResolution)
	}
	return nil
}

// initialColor parses the given hex color, returning def if it is empty.
func initialColor(hex string, def color.RGBA) (color.RGBA, error) {
	if strings.TrimSpace(hex) == "" {
		return def, nil
	}
	c, err := colors.FromHex(hex)
	if err != nil {
		return def, fmt.Errorf("%w: initial color: %w", ErrConfig, err)
	}
	return c, nil
}
