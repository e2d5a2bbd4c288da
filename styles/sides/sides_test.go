// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sides

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	assert.Equal(t, Floats{1, 1, 1, 1}, NewSides[float32](1))
	assert.Equal(t, Floats{1, 2, 1, 2}, NewSides[float32](1, 2))
	assert.Equal(t, Floats{1, 2, 3, 2}, NewSides[float32](1, 2, 3))
	assert.Equal(t, Floats{1, 2, 3, 4}, NewSides[float32](1, 2, 3, 4))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, NewSides[float32](1, 2, 3, 4).Values())
}

func TestParseFloats(t *testing.T) {
	s, err := ParseFloats("4px 0")
	require.NoError(t, err)
	assert.Equal(t, Floats{4, 0, 4, 0}, s)
	assert.False(t, IsZero(s))
	assert.True(t, IsZero(Floats{}))
	_, err = ParseFloats("4 x")
	assert.Error(t, err)
}
