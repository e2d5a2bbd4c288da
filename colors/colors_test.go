// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := map[string]color.RGBA{
		"#f00":                 Red,
		"#0000ff":              Blue,
		"#00000080":            {0, 0, 0, 128},
		"rgb(1, 2, 3)":         {1, 2, 3, 255},
		"rgba(10,20,30,0.5)":   {10, 20, 30, 128},
		"red":                  Red,
		"none":                 Transparent,
		"":                     {},
		"  Orange ":            {255, 165, 0, 255},
	}
	for in, want := range tests {
		got, err := FromString(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := FromString("notacolor")
	assert.Error(t, err)
	_, err = FromHex("#12345")
	assert.Error(t, err)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff0000", AsHex(Red))
	assert.Equal(t, "#00000080", AsHex(color.RGBA{0, 0, 0, 128}))
	assert.Equal(t, "none", AsHex(nil))
	assert.True(t, IsNil(color.RGBA{}))
	assert.False(t, IsNil(Black))
}
