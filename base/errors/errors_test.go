// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := fmt.Errorf("broken")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("bad")) })
	assert.Equal(t, "x", Must1("x", nil))
	assert.Equal(t, 7, Ignore1(7, New("ignored")))
}

func TestStdlib(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("wrap: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	assert.True(t, Is(Join(base, New("other")), base))
}
