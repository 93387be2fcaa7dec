// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Name  string  `yaml:"name"`
	Size  float32 `yaml:"size"`
	Cells int     `yaml:"cells"`
}

func TestRead(t *testing.T) {
	s := settings{Name: "plane", Size: 100, Cells: 10}
	require.NoError(t, Read(&s, strings.NewReader("size: 250.5\n")))
	assert.Equal(t, settings{Name: "plane", Size: 250.5, Cells: 10}, s)

	require.NoError(t, Read(&s, strings.NewReader("")))
	assert.Equal(t, "plane", s.Name)
	assert.Error(t, Read(&s, strings.NewReader("size: [")))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "a.yaml")
	require.NoError(t, Save(settings{Name: "ring", Size: 76, Cells: 200}, fn))

	var s settings
	require.NoError(t, Open(&s, fn))
	assert.Equal(t, settings{Name: "ring", Size: 76, Cells: 200}, s)
	assert.Error(t, Open(&s, fn+".missing"))
}
