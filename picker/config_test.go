// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/palette/base/iox/tomlx"
	"cogentcore.org/palette/base/iox/yamlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "#FFFFFF", cfg.Rect.Initial)
	assert.Equal(t, "#FF0000", cfg.Ring.Initial)
	assert.Equal(t, Size{100, 100}, cfg.Rect.Plane)
	assert.Equal(t, Resolution{20, 100}, cfg.Rect.StripResolution)
	assert.Equal(t, float32(76), cfg.Ring.InnerRadius)
	assert.Equal(t, float32(100), cfg.Ring.OuterRadius)
	assert.Equal(t, 200, cfg.Ring.RingResolution)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(cfg *Config)
	}{
		{"zero plane", func(cfg *Config) { cfg.Rect.Plane = Size{0, 100} }},
		{"negative strip", func(cfg *Config) { cfg.Rect.Strip.Height = -1 }},
		{"zero plane resolution", func(cfg *Config) { cfg.Rect.PlaneResolution.Rows = 0 }},
		{"huge strip resolution", func(cfg *Config) { cfg.Rect.StripResolution.Cols = MaxResolution + 1 }},
		{"bad rect hex", func(cfg *Config) { cfg.Rect.Initial = "#ZZZ" }},
		{"inner equals outer", func(cfg *Config) { cfg.Ring.InnerRadius = cfg.Ring.OuterRadius }},
		{"inner above outer", func(cfg *Config) { cfg.Ring.InnerRadius = 120 }},
		{"negative inner", func(cfg *Config) { cfg.Ring.InnerRadius = -5 }},
		{"zero square", func(cfg *Config) { cfg.Ring.Square = 0 }},
		{"zero ring resolution", func(cfg *Config) { cfg.Ring.RingResolution = 0 }},
		{"huge square resolution", func(cfg *Config) { cfg.Ring.SquareResolution = 1 << 20 }},
		{"bad ring hex", func(cfg *Config) { cfg.Ring.Initial = "red" }},
		{"infinite plane", func(cfg *Config) { cfg.Rect.Plane.Width = inf }},
		{"infinite strip", func(cfg *Config) { cfg.Rect.Strip.Height = inf }},
		{"infinite outer", func(cfg *Config) { cfg.Ring.OuterRadius = inf }},
		{"infinite radii", func(cfg *Config) { cfg.Ring.InnerRadius, cfg.Ring.OuterRadius = inf, inf }},
		{"infinite square", func(cfg *Config) { cfg.Ring.Square = inf }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrConfig)
		})
	}
}

var inf = float32(math.Inf(1))

func TestNewRejectsInfiniteGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rect.Plane.Width = inf
	r, err := NewRect(cfg.Rect, nil, nil)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, r)

	cfg = DefaultConfig()
	cfg.Ring.OuterRadius = inf
	g, err := NewRing(cfg.Ring, nil, nil)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Nil(t, g)
}

func TestConfigValidateJoins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rect.Plane = Size{}
	cfg.Ring.InnerRadius = 500
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "rect plane size")
	assert.Contains(t, err.Error(), "ring inner radius")
}

func TestConfigEmptyInitial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rect.Initial = ""
	cfg.Ring.Initial = " "
	assert.NoError(t, cfg.Validate())
}

func TestOpenConfigTOML(t *testing.T) {
	fn := writeFile(t, "palette.toml", `
[rect]
initial = "#00FF00"

[rect.plane]
width = 200.0
height = 150.0

[ring]
inner_radius = 50.0
`)
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "#00FF00", cfg.Rect.Initial)
	assert.Equal(t, Size{200, 150}, cfg.Rect.Plane)
	assert.Equal(t, Resolution{100, 100}, cfg.Rect.PlaneResolution)
	assert.Equal(t, float32(50), cfg.Ring.InnerRadius)
	assert.Equal(t, float32(100), cfg.Ring.OuterRadius)
}

func TestOpenConfigYAML(t *testing.T) {
	fn := writeFile(t, "palette.yml", `
ring:
  initial: "#0000ff"
  ring_resolution: 64
`)
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", cfg.Ring.Initial)
	assert.Equal(t, 64, cfg.Ring.RingResolution)
	assert.Equal(t, DefaultRectConfig(), cfg.Rect)
}

func TestOpenConfigInvalid(t *testing.T) {
	fn := writeFile(t, "palette.yaml", "ring:\n  outer_radius: 10\n")
	_, err := OpenConfig(fn)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = OpenConfig(writeFile(t, "palette.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config extension")

	_, err = OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ring.Square = 64

	dir := t.TempDir()
	tfn := filepath.Join(dir, "palette.toml")
	require.NoError(t, tomlx.Save(&cfg, tfn))
	have, err := OpenConfig(tfn)
	require.NoError(t, err)
	assert.Equal(t, cfg, have)

	yfn := filepath.Join(dir, "palette.yaml")
	require.NoError(t, yamlx.Save(&cfg, yfn))
	have, err = OpenConfig(yfn)
	require.NoError(t, err)
	assert.Equal(t, cfg, have)
}
