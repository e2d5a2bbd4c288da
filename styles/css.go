// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/styles/sides"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ParseCSS parses shared style resources from a style sheet. Each rule
// defines one resource whose id is its selector without the leading
// # or . character. The kind of the resource is given by the property
// the rule declares:
//
//	#brand { fill: #ff0000, rgba(0,0,0,0.5); }
//	#hairline { border: 1px #000 inside; }
//	#card { box-shadow: 0 2px 4px 0 rgba(0,0,0,0.25), 0 0 1 0 #000 inset; }
//	#round { border-radius: 4px 4px 0 0; }
//	#soft { filter: blur(3px); }
//
// At-rules are ignored.
func ParseCSS(src string) ([]*Resource, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("styles.ParseCSS: %w", err)
	}
	var res []*Resource
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule {
			continue // not supported
		}
		for _, sel := range r.Selectors {
			id := strings.TrimLeft(strings.TrimSpace(sel), "#.")
			rs, err := resourceFromDeclarations(id, r.Declarations)
			if err != nil {
				return nil, err
			}
			if rs != nil {
				res = append(res, rs)
			}
		}
	}
	return res, nil
}

func resourceFromDeclarations(id string, decls []*css.Declaration) (*Resource, error) {
	var r *Resource
	set := func(kind ResourceKinds) error {
		if r == nil {
			r = &Resource{ID: id, Name: id, Kind: kind}
			return nil
		}
		if r.Kind != kind {
			return fmt.Errorf("styles.ParseCSS: resource %q declares both %v and %v", id, r.Kind, kind)
		}
		return nil
	}
	for _, d := range decls {
		val := strings.TrimSpace(d.Value)
		var err error
		switch d.Property {
		case "name":
			if r != nil {
				r.Name = strings.Trim(val, `"'`)
			}
			continue
		case "fill":
			if err = set(FillSet); err != nil {
				return nil, err
			}
			r.Value.Fills, err = parseFills(val)
		case "border":
			if err = set(BorderSet); err != nil {
				return nil, err
			}
			r.Value.Borders, err = parseBorders(val)
		case "box-shadow":
			if err = set(ShadowSet); err != nil {
				return nil, err
			}
			r.Value.Shadows, err = parseShadows(val)
		case "border-radius":
			if err = set(RadiusSet); err != nil {
				return nil, err
			}
			r.Value.Radius, err = sides.ParseFloats(val)
		case "filter":
			if err = set(BlurSet); err != nil {
				return nil, err
			}
			r.Value.Blur, err = parseBlur(val)
		default:
			slog.Warn("styles.ParseCSS: unsupported property", "id", id, "property", d.Property)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("styles.ParseCSS: resource %q property %s: %w", id, d.Property, err)
		}
	}
	return r, nil
}

// splitTop splits s on sep characters that are not inside parentheses.
func splitTop(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, c := range s {
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" {
		parts = append(parts, last)
	}
	return parts
}

func parseLength(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 32)
	return float32(v), err
}

func parseFills(val string) ([]Fill, error) {
	var fills []Fill
	for _, p := range splitTop(val, ',') {
		c, err := colors.FromString(p)
		if err != nil {
			return nil, err
		}
		fills = append(fills, Fill{Color: c})
	}
	return fills, nil
}

func parseBorders(val string) ([]Border, error) {
	var borders []Border
	for _, p := range splitTop(val, ',') {
		b := Border{}
		for i, f := range splitTop(p, ' ') {
			if i == 0 {
				w, err := parseLength(f)
				if err != nil {
					return nil, err
				}
				b.Width = w
				continue
			}
			if pos, ok := ParseBorderPosition(f); ok {
				b.Position = pos
				continue
			}
			if f == "solid" {
				continue
			}
			c, err := colors.FromString(f)
			if err != nil {
				return nil, err
			}
			b.Color = c
		}
		borders = append(borders, b)
	}
	return borders, nil
}

func parseShadows(val string) ([]Shadow, error) {
	var shadows []Shadow
	for _, p := range splitTop(val, ',') {
		s := Shadow{}
		var nums []float32
		for _, f := range splitTop(p, ' ') {
			if f == "inset" {
				s.Inner = true
				continue
			}
			if v, err := parseLength(f); err == nil {
				nums = append(nums, v)
				continue
			}
			c, err := colors.FromString(f)
			if err != nil {
				return nil, err
			}
			s.Color = c
		}
		if len(nums) < 2 {
			return nil, fmt.Errorf("shadow %q needs at least x and y offsets", p)
		}
		s.OffsetX, s.OffsetY = nums[0], nums[1]
		if len(nums) > 2 {
			s.Blur = nums[2]
		}
		if len(nums) > 3 {
			s.Spread = nums[3]
		}
		shadows = append(shadows, s)
	}
	return shadows, nil
}

func parseBlur(val string) (Blur, error) {
	if !strings.HasPrefix(val, "blur(") || !strings.HasSuffix(val, ")") {
		return Blur{}, fmt.Errorf("expected blur(radius), got %q", val)
	}
	r, err := parseLength(strings.TrimSpace(val[5 : len(val)-1]))
	return Blur{Radius: r}, err
}
