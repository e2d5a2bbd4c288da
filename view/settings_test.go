// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/vector/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := NewSettings()
	s.MaxPasses = 3
	s.LayoutTrace = true
	require.NoError(t, s.Save(fn))

	o := NewSettings()
	require.NoError(t, o.Open(fn))
	assert.Equal(t, s, o)

	require.NoError(t, os.WriteFile(fn, []byte("GridCell = 16.0\n"), 0666))
	p := NewSettings()
	require.NoError(t, p.Open(fn))
	assert.Equal(t, float32(16), p.GridCell)
	assert.Equal(t, 40*time.Millisecond, p.FocusBudget)
}

func TestEffectOrder(t *testing.T) {
	assert.Equal(t, "relayoutParent", RelayoutParent.String())
	assert.Equal(t, "borderPath", KeyBorderPath.String())
	assert.ElementsMatch(t, []CacheKey{KeyRadius, KeyOutlinePath, KeyBorderPath}, closeKeys([]CacheKey{KeyRadius}))
	assert.ElementsMatch(t, []CacheKey{KeyBoolPath, KeyOutlinePath, KeyBorderPath}, boolEffects.Keys[doc.FieldBoolOp])
	assert.Contains(t, groupEffects.Effects[doc.FieldChildren], RebuildChildren)
	assert.NotContains(t, shapeEffects.Effects[doc.FieldChildren], RebuildChildren)
}
