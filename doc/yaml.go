// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/vector/colors"
	"cogentcore.org/vector/layout"
	"cogentcore.org/vector/math32"
	"cogentcore.org/vector/ppath"
	"cogentcore.org/vector/styles"
	"cogentcore.org/vector/styles/sides"
	"cogentcore.org/vector/text"
	"gopkg.in/yaml.v3"
)

// Document is a loaded document: a root node, the symbol definitions
// that instances reference, and the shared style resources.
type Document struct {
	Root      *Shape
	Symbols   map[string]*Shape
	Resources *styles.Library
}

// Symbol returns the symbol definition with the given id.
func (d *Document) Symbol(id string) (*Shape, bool) {
	s, ok := d.Symbols[id]
	return s, ok
}

type yamlDocument struct {
	Resources string      `yaml:"resources"`
	Symbols   []*yamlNode `yaml:"symbols"`
	Root      *yamlNode   `yaml:"root"`
}

type yamlBorder struct {
	Color    string  `yaml:"color"`
	Width    float32 `yaml:"width"`
	Position string  `yaml:"position"`
	Hidden   bool    `yaml:"hidden"`
}

type yamlShadow struct {
	Color  string  `yaml:"color"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Blur   float32 `yaml:"blur"`
	Spread float32 `yaml:"spread"`
	Inner  bool    `yaml:"inner"`
	Hidden bool    `yaml:"hidden"`
}

type yamlText struct {
	Size       float32 `yaml:"size"`
	LineHeight float32 `yaml:"lineHeight"`
	Color      string  `yaml:"color"`
	Align      string  `yaml:"align"`
	VAlign     string  `yaml:"valign"`
}

type yamlFlow struct {
	Direction   string  `yaml:"direction"`
	Gap         float32 `yaml:"gap"`
	CrossGap    float32 `yaml:"crossGap"`
	Padding     string  `yaml:"padding"`
	Justify     string  `yaml:"justify"`
	Align       string  `yaml:"align"`
	MainSizing  string  `yaml:"mainSizing"`
	CrossSizing string  `yaml:"crossSizing"`
	Wrap        bool    `yaml:"wrap"`
	BorderSpace bool    `yaml:"borderSpace"`
}

type yamlTrack struct {
	Size   float32 `yaml:"size"`
	Weight float32 `yaml:"weight"`
}

type yamlOverride struct {
	Target   string    `yaml:"target"`
	Category string    `yaml:"category"`
	Value    yaml.Node `yaml:"value"`
}

type yamlNode struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Kind         string            `yaml:"kind"`
	Pos          []float32         `yaml:"pos,flow"`
	Size         []float32         `yaml:"size,flow"`
	Hidden       bool              `yaml:"hidden"`
	Locked       bool              `yaml:"locked"`
	Mask         bool              `yaml:"mask"`
	Pins         []string          `yaml:"pins,flow"`
	Fills        []string          `yaml:"fills,flow"`
	Borders      []yamlBorder      `yaml:"borders"`
	Shadows      []yamlShadow      `yaml:"shadows"`
	Radius       string            `yaml:"radius"`
	Blur         float32           `yaml:"blur"`
	Refs         map[string]string `yaml:"refs"`
	Points       [][]float32       `yaml:"points,flow"`
	Closed       bool              `yaml:"closed"`
	Text         string            `yaml:"text"`
	TextStyle    *yamlText         `yaml:"textStyle"`
	TextBehavior string            `yaml:"textBehavior"`
	Symbol       string            `yaml:"symbol"`
	CustomSize   bool              `yaml:"customSize"`
	Overrides    []yamlOverride    `yaml:"overrides"`
	BoolOp       string            `yaml:"boolOp"`
	Layout       *yamlFlow         `yaml:"layout"`
	Rows         []yamlTrack       `yaml:"rows"`
	Cols         []yamlTrack       `yaml:"cols"`
	Cell         []int             `yaml:"cell,flow"`
	Children     []*yamlNode       `yaml:"children"`
}

// Open loads a document from the given YAML file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read loads a document from YAML. The resources field holds a style
// sheet parsed with [styles.ParseCSS]; symbols and root hold node trees.
func Read(r io.Reader) (*Document, error) {
	var yd yamlDocument
	if err := yaml.NewDecoder(r).Decode(&yd); err != nil {
		return nil, fmt.Errorf("doc.Read: %w", err)
	}
	return yd.document()
}

// ReadString loads a document from a YAML string.
func ReadString(s string) (*Document, error) {
	return Read(strings.NewReader(s))
}

func (yd *yamlDocument) document() (*Document, error) {
	d := &Document{Symbols: map[string]*Shape{}, Resources: styles.NewLibrary()}
	if yd.Resources != "" {
		rs, err := styles.ParseCSS(yd.Resources)
		if err != nil {
			return nil, err
		}
		for _, r := range rs {
			d.Resources.Set(r)
		}
	}
	for _, yn := range yd.Symbols {
		s, err := yn.shape()
		if err != nil {
			return nil, err
		}
		if s.kind != Symbol {
			return nil, fmt.Errorf("doc.Read: symbol %q has kind %v", s.id, s.kind)
		}
		d.Symbols[s.id] = s
	}
	if yd.Root == nil {
		return nil, fmt.Errorf("doc.Read: missing root")
	}
	root, err := yd.Root.shape()
	if err != nil {
		return nil, err
	}
	d.Root = root
	return d, nil
}

func vec2(v []float32) math32.Vector2 {
	switch len(v) {
	case 0:
		return math32.Vector2{}
	case 1:
		return math32.Vector2Scalar(v[0])
	}
	return math32.Vec2(v[0], v[1])
}

func parseFills(strs []string) ([]styles.Fill, error) {
	fills := make([]styles.Fill, len(strs))
	for i, s := range strs {
		c, err := colors.FromString(s)
		if err != nil {
			return nil, err
		}
		fills[i] = styles.Fill{Color: c}
	}
	return fills, nil
}

func parseBorders(ybs []yamlBorder) ([]styles.Border, error) {
	bs := make([]styles.Border, len(ybs))
	for i, yb := range ybs {
		c, err := colors.FromString(yb.Color)
		if err != nil {
			return nil, err
		}
		bs[i] = styles.Border{Color: c, Width: yb.Width, Hidden: yb.Hidden}
		if yb.Position != "" {
			p, ok := styles.ParseBorderPosition(yb.Position)
			if !ok {
				return nil, fmt.Errorf("invalid border position %q", yb.Position)
			}
			bs[i].Position = p
		}
	}
	return bs, nil
}

func parseShadows(yss []yamlShadow) ([]styles.Shadow, error) {
	ss := make([]styles.Shadow, len(yss))
	for i, ys := range yss {
		c, err := colors.FromString(ys.Color)
		if err != nil {
			return nil, err
		}
		ss[i] = styles.Shadow{Color: c, OffsetX: ys.X, OffsetY: ys.Y, Blur: ys.Blur, Spread: ys.Spread, Inner: ys.Inner, Hidden: ys.Hidden}
	}
	return ss, nil
}

// overrideValue decodes the value of an override into the type
// expected for its category.
func overrideValue(cat Categories, n *yaml.Node) (any, error) {
	switch cat {
	case OverrideFills:
		var strs []string
		if err := n.Decode(&strs); err != nil {
			return nil, err
		}
		return parseFills(strs)
	case OverrideBorders:
		var ybs []yamlBorder
		if err := n.Decode(&ybs); err != nil {
			return nil, err
		}
		return parseBorders(ybs)
	case OverrideShadows:
		var yss []yamlShadow
		if err := n.Decode(&yss); err != nil {
			return nil, err
		}
		return parseShadows(yss)
	case OverrideBlur:
		var r float32
		if err := n.Decode(&r); err != nil {
			return nil, err
		}
		return styles.Blur{Radius: r}, nil
	case OverrideRadius:
		var s string
		if err := n.Decode(&s); err != nil {
			return nil, err
		}
		return sides.ParseFloats(s)
	case OverrideVisible, OverrideLocked:
		var b bool
		err := n.Decode(&b)
		return b, err
	default:
		var s string
		err := n.Decode(&s)
		return s, err
	}
}

var refFields = map[string]Field{
	"fills": FieldFillsRef, "borders": FieldBordersRef, "shadows": FieldShadowsRef,
	"radius": FieldRadiusRef, "blur": FieldBlurRef,
}

func (yn *yamlNode) shape() (*Shape, error) {
	kind, ok := ParseKind(yn.Kind)
	if !ok {
		return nil, fmt.Errorf("doc.Read: node %q: invalid kind %q", yn.ID, yn.Kind)
	}
	s := NewShape(kind, yn.ID)
	if err := yn.apply(s); err != nil {
		return nil, fmt.Errorf("doc.Read: node %q: %w", s.id, err)
	}
	for _, yc := range yn.Children {
		c, err := yc.shape()
		if err != nil {
			return nil, err
		}
		c.parent = s
		s.children = append(s.children, c)
	}
	return s, nil
}

// parseAlign parses a text alignment, which defaults to start.
func parseAlign(s string) (text.Aligns, error) {
	if s == "" {
		return text.Start, nil
	}
	a, ok := text.ParseAlign(s)
	if !ok {
		return a, fmt.Errorf("invalid text align %q", s)
	}
	return a, nil
}

// apply sets the fields of s directly, as there are no watchers yet.
func (yn *yamlNode) apply(s *Shape) error {
	var err error
	if yn.Name != "" {
		s.name = yn.Name
	}
	s.transform = math32.Translate2D(vec2(yn.Pos).X, vec2(yn.Pos).Y)
	s.size = vec2(yn.Size)
	s.hidden, s.locked, s.mask = yn.Hidden, yn.Locked, yn.Mask
	if len(yn.Pins) > 0 {
		p, ok := layout.ParsePins(yn.Pins...)
		if !ok {
			return fmt.Errorf("invalid pins %v", yn.Pins)
		}
		s.pins = p
	}
	if s.style.Fills, err = parseFills(yn.Fills); err != nil {
		return err
	}
	if s.style.Borders, err = parseBorders(yn.Borders); err != nil {
		return err
	}
	if s.style.Shadows, err = parseShadows(yn.Shadows); err != nil {
		return err
	}
	if yn.Radius != "" {
		if s.style.Radius, err = sides.ParseFloats(yn.Radius); err != nil {
			return err
		}
	}
	s.style.Blur.Radius = yn.Blur
	for k, id := range yn.Refs {
		f, ok := refFields[k]
		if !ok {
			return fmt.Errorf("invalid style reference %q", k)
		}
		s.SetStyleRef(f, id)
	}
	for _, p := range yn.Points {
		s.points = append(s.points, vec2(p))
	}
	s.closed = yn.Closed
	s.text = yn.Text
	if yt := yn.TextStyle; yt != nil {
		s.textStyle = text.Style{Size: yt.Size, LineHeight: yt.LineHeight}
		if yt.Color != "" {
			if s.textStyle.Color, err = colors.FromString(yt.Color); err != nil {
				return err
			}
		}
		if s.textStyle.Align, err = parseAlign(yt.Align); err != nil {
			return err
		}
		if s.textStyle.VAlign, err = parseAlign(yt.VAlign); err != nil {
			return err
		}
	}
	if yn.TextBehavior != "" {
		b, ok := text.ParseBehavior(yn.TextBehavior)
		if !ok {
			return fmt.Errorf("invalid text behavior %q", yn.TextBehavior)
		}
		s.textBehavior = b
	}
	s.symbolRef = yn.Symbol
	s.customSize = yn.CustomSize
	for _, yo := range yn.Overrides {
		cat, ok := ParseCategory(yo.Category)
		if !ok {
			return fmt.Errorf("invalid override category %q", yo.Category)
		}
		v, err := overrideValue(cat, &yo.Value)
		if err != nil {
			return fmt.Errorf("override %s of %q: %w", cat, yo.Target, err)
		}
		s.SetOverride(yo.Target, cat, v)
	}
	if yn.BoolOp != "" {
		op, ok := ppath.ParseBoolOp(yn.BoolOp)
		if !ok {
			return fmt.Errorf("invalid boolean operation %q", yn.BoolOp)
		}
		s.boolOp = op
	}
	if yn.Layout != nil {
		if s.flow, err = yn.Layout.flow(); err != nil {
			return err
		}
	}
	if len(yn.Rows) > 0 || len(yn.Cols) > 0 {
		t := &layout.Table{}
		for _, r := range yn.Rows {
			t.Rows = append(t.Rows, layout.Track{Size: r.Size, Weight: r.Weight})
		}
		for _, c := range yn.Cols {
			t.Cols = append(t.Cols, layout.Track{Size: c.Size, Weight: c.Weight})
		}
		s.table = t
	}
	if len(yn.Cell) >= 2 {
		s.cell = layout.Cell{Row: yn.Cell[0], Col: yn.Cell[1], RowSpan: 1, ColSpan: 1}
		if len(yn.Cell) >= 4 {
			s.cell.RowSpan, s.cell.ColSpan = yn.Cell[2], yn.Cell[3]
		}
	}
	return nil
}

func (yf *yamlFlow) flow() (*layout.Flow, error) {
	f := &layout.Flow{Gap: yf.Gap, CrossGap: yf.CrossGap, Wrap: yf.Wrap, BorderSpace: yf.BorderSpace}
	if yf.Direction == "column" {
		f.Direction = layout.Column
	}
	if yf.Padding != "" {
		p, err := sides.ParseFloats(yf.Padding)
		if err != nil {
			return nil, err
		}
		f.Padding = p
	}
	var ok bool
	if yf.Justify != "" {
		if f.Justify, ok = layout.ParseAlign(yf.Justify); !ok {
			return nil, fmt.Errorf("invalid justify %q", yf.Justify)
		}
	}
	if yf.Align != "" {
		if f.Align, ok = layout.ParseAlign(yf.Align); !ok {
			return nil, fmt.Errorf("invalid align %q", yf.Align)
		}
	}
	if yf.MainSizing == "hug" {
		f.MainSizing = layout.Hug
	}
	if yf.CrossSizing == "hug" {
		f.CrossSizing = layout.Hug
	}
	return f, nil
}
