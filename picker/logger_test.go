// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/palette/events"
	"cogentcore.org/palette/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r, err := NewRect(DefaultRectConfig(), nil, nil)
	require.NoError(t, err)
	r.Tick(events.Tap(math32.Vec2(0, 0)))

	out := buf.String()
	assert.Contains(t, out, "created rect picker")
	assert.Contains(t, out, "regenerated gradient")
	assert.Contains(t, out, "kind=HueSat")
	assert.Contains(t, out, "to=DraggingPrimary")
	assert.Contains(t, out, "to=Idle")
}

func TestModesString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "DraggingPrimary", DraggingPrimary.String())
	assert.Equal(t, "DraggingSecondary", DraggingSecondary.String())
	assert.Equal(t, "Unknown", Modes(9).String())
}
