// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e"}
	is := func(v string) func(e string) bool { return func(e string) bool { return e == v } }
	assert.Equal(t, 0, Search(s, is("a")))
	assert.Equal(t, 4, Search(s, is("e"), 0))
	assert.Equal(t, 2, Search(s, is("c"), 10))
	assert.Equal(t, -1, Search(s, is("z"), 3))
	assert.Equal(t, -1, Search([]string{}, is("a")))
}

func TestMove(t *testing.T) {
	s := []int{0, 1, 2, 3}
	assert.Equal(t, []int{1, 2, 0, 3}, Move(s, 0, 2))
}

func TestRemoveFunc(t *testing.T) {
	s, ok := RemoveFunc([]int{1, 2, 3}, func(e int) bool { return e == 2 })
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, s)
	_, ok = RemoveFunc(s, func(e int) bool { return e == 9 })
	assert.False(t, ok)
}
