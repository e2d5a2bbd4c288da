// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Name   string
	Budget int
	Trace  bool
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	in := &testSettings{Name: "view", Budget: 40, Trace: true}
	require.NoError(t, Save(in, fn))
	out := &testSettings{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestReadBytesUnknownField(t *testing.T) {
	out := &testSettings{}
	assert.Error(t, ReadBytes(out, []byte("Unknown = 1\n")))
	assert.NoError(t, ReadBytes(out, []byte("Budget = 12\n")))
	assert.Equal(t, 12, out.Budget)
}
