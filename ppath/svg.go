// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ToSVG returns a string that represents the path similar to the SVG
// path data format, using absolute commands only.
func (p Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	num := func(vs ...float32) {
		for _, v := range vs {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(float64(v), 'g', Precision, 32))
		}
	}
	s := p.Scanner()
	for s.Scan() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch s.Cmd() {
		case MoveTo:
			sb.WriteByte('M')
			num(s.End().X, s.End().Y)
		case LineTo:
			sb.WriteByte('L')
			num(s.End().X, s.End().Y)
		case QuadTo:
			sb.WriteByte('Q')
			num(s.CP1().X, s.CP1().Y, s.End().X, s.End().Y)
		case CubeTo:
			sb.WriteByte('C')
			num(s.CP1().X, s.CP1().Y, s.CP2().X, s.CP2().Y, s.End().X, s.End().Y)
		case Close:
			sb.WriteByte('z')
		}
	}
	return sb.String()
}

// ParseSVG parses an SVG path data string into a path. It supports the
// M, L, H, V, Q, C and Z commands in both absolute and relative forms,
// including implicitly repeated commands.
func ParseSVG(s string) (Path, error) {
	b := []byte(s)
	p := Path{}
	i := 0
	skip := func() {
		for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\t' || b[i] == '\r') {
			i++
		}
	}
	nums := func(n int) ([]float32, error) {
		vs := make([]float32, n)
		for k := range n {
			skip()
			if i >= len(b) {
				return nil, fmt.Errorf("ppath.ParseSVG: unexpected end of path at %d", i)
			}
			f, m := pstrconv.ParseFloat(b[i:])
			if m == 0 {
				return nil, fmt.Errorf("ppath.ParseSVG: bad number at %d in %q", i, s)
			}
			vs[k] = float32(f)
			i += m
		}
		return vs, nil
	}
	var cmd byte
	for {
		skip()
		if i >= len(b) {
			break
		}
		c := b[i]
		if isCommand(c) {
			cmd = c
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("ppath.ParseSVG: path must start with a command, got %q", string(c))
		}
		cur := p.Pos()
		rel := cmd >= 'a'
		off := func(x, y float32) (float32, float32) {
			if rel {
				return cur.X + x, cur.Y + y
			}
			return x, y
		}
		switch cmd {
		case 'M', 'm':
			vs, err := nums(2)
			if err != nil {
				return nil, err
			}
			x, y := off(vs[0], vs[1])
			p.MoveTo(x, y)
			// subsequent pairs are implicit LineTos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			vs, err := nums(2)
			if err != nil {
				return nil, err
			}
			p.LineTo(off(vs[0], vs[1]))
		case 'H', 'h':
			vs, err := nums(1)
			if err != nil {
				return nil, err
			}
			x := vs[0]
			if rel {
				x += cur.X
			}
			p.LineTo(x, cur.Y)
		case 'V', 'v':
			vs, err := nums(1)
			if err != nil {
				return nil, err
			}
			y := vs[0]
			if rel {
				y += cur.Y
			}
			p.LineTo(cur.X, y)
		case 'Q', 'q':
			vs, err := nums(4)
			if err != nil {
				return nil, err
			}
			cx, cy := off(vs[0], vs[1])
			x, y := off(vs[2], vs[3])
			p.QuadTo(cx, cy, x, y)
		case 'C', 'c':
			vs, err := nums(6)
			if err != nil {
				return nil, err
			}
			c1x, c1y := off(vs[0], vs[1])
			c2x, c2y := off(vs[2], vs[3])
			x, y := off(vs[4], vs[5])
			p.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case 'Z', 'z':
			p.Close()
			cmd = 0
		default:
			return nil, fmt.Errorf("ppath.ParseSVG: unsupported command %q", string(cmd))
		}
	}
	return p, nil
}

func isCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvQqCcZz", c) >= 0
}
