// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"strings"

	"cogentcore.org/vector/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BasicEngine is an [Engine] that measures text with the fixed
// 7x13 bitmap face, scaled to the style font size, and breaks
// lines at spaces.
type BasicEngine struct {
	face font.Face
}

// NewBasicEngine returns a new [BasicEngine].
func NewBasicEngine() *BasicEngine {
	return &BasicEngine{face: basicfont.Face7x13}
}

// measure returns the width of s at the given size.
func (be *BasicEngine) measure(s string, size float32) float32 {
	return math32.FromFixed26(font.MeasureString(be.face, s)) * size / DefaultSize
}

func (be *BasicEngine) Layout(txt string, box math32.Vector2, style Style, wrap bool) Metrics {
	size := style.FontSize()
	lh := style.LineSpacing()
	m := Metrics{}
	y := float32(0)
	for _, para := range strings.Split(txt, "\n") {
		var lines []string
		if wrap && box.X > 0 {
			lines = be.wrap(para, box.X, size)
		} else {
			lines = []string{para}
		}
		pw := float32(0)
		for _, ln := range lines {
			w := be.measure(ln, size)
			pw = math32.Max(pw, w)
			m.Lines = append(m.Lines, Line{Text: ln, Pos: math32.Vec2(0, y), Width: w})
			y += lh
		}
		m.ParagraphWidths = append(m.ParagraphWidths, pw)
		m.ContentWidth = math32.Max(m.ContentWidth, pw)
	}
	m.ContentHeight = y
	return m
}

// wrap breaks the paragraph into lines no wider than width, except
// for single words that are wider by themselves.
func (be *BasicEngine) wrap(para string, width, size float32) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if be.measure(next, size) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(lines, cur)
}
