// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// Move moves the element in the given slice at the given
// old position to the given new position and returns the
// resulting slice.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// Search returns the index of the item in the given slice that matches the target
// according to the given match function, using the given optional starting index
// to optimize the search by searching bidirectionally outward from given index.
// This is much faster when you have some idea about where the item might be.
// If no start index is given, it starts in the middle, which is a good default.
// It returns -1 if no item matching the match function is found.
func Search[E any](slice []E, match func(e E) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	for lo, hi := si, si+1; lo >= 0 || hi < n; lo, hi = lo-1, hi+1 {
		if lo >= 0 && match(slice[lo]) {
			return lo
		}
		if hi < n && match(slice[hi]) {
			return hi
		}
	}
	return -1
}

// RemoveFunc removes the first element matching the given function,
// returning the updated slice and whether anything was removed.
func RemoveFunc[E any](s []E, match func(e E) bool) ([]E, bool) {
	i := slices.IndexFunc(s, match)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}
