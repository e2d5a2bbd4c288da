// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"cogentcore.org/vector/styles"
	"gopkg.in/yaml.v3"
)

// Edit is one step of a scripted series of document mutations, as read
// by [ReadEdits]. Unset fields are left unchanged. An edit either targets
// the shape with the given ID, or updates the fills of a resource.
type Edit struct {
	ID       string        `yaml:"id"`
	Pos      []float32     `yaml:"pos,flow"`
	Size     []float32     `yaml:"size,flow"`
	Visible  *bool         `yaml:"visible"`
	Fills    []string      `yaml:"fills,flow"`
	Text     *string       `yaml:"text"`
	Symbol   *string       `yaml:"symbol"`
	Override *EditOverride `yaml:"override"`

	// Add appends a new child subtree to the target.
	Add *yamlNode `yaml:"add"`

	// Move moves the target to the given index within its parent.
	Move *int `yaml:"move"`

	// Remove removes the target from its parent.
	Remove bool `yaml:"remove"`

	// Resource is the id of a resource whose fills are replaced by
	// ResourceFills. An empty ResourceFills deletes the resource.
	Resource      string   `yaml:"resource"`
	ResourceFills []string `yaml:"resourceFills,flow"`
}

// EditOverride sets or removes an override on the target of an [Edit].
type EditOverride struct {
	Target   string    `yaml:"target"`
	Category string    `yaml:"category"`
	Value    yaml.Node `yaml:"value"`
	Remove   bool      `yaml:"remove"`
}

// ReadEdits reads a YAML list of edits.
func ReadEdits(r io.Reader) ([]*Edit, error) {
	var es []*Edit
	if err := yaml.NewDecoder(r).Decode(&es); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("doc.ReadEdits: %w", err)
	}
	return es, nil
}

// Find returns the shape with the given id under the root or in one of
// the symbol definitions, or nil.
func (d *Document) Find(id string) *Shape {
	if d.Root != nil {
		if s := d.Root.Find(id); s != nil {
			return s
		}
	}
	for _, sym := range d.Symbols {
		if s := sym.Find(id); s != nil {
			return s
		}
	}
	return nil
}

// Apply applies the edit to the document. Shape changes are batched
// with [Shape.Update], so watchers see a single notification.
func (d *Document) Apply(e *Edit) error {
	if e.Resource != "" {
		if err := d.applyResource(e); err != nil {
			return err
		}
	}
	if e.ID == "" {
		return nil
	}
	s := d.Find(e.ID)
	if s == nil {
		return fmt.Errorf("doc.Apply: no shape %q", e.ID)
	}
	if e.Remove {
		if s.parent == nil {
			return fmt.Errorf("doc.Apply: cannot remove root %q", e.ID)
		}
		s.parent.RemoveChild(s)
		return nil
	}
	var err error
	s.Update(func() { err = e.apply(s) })
	if err != nil {
		return fmt.Errorf("doc.Apply: %q: %w", e.ID, err)
	}
	if e.Move != nil {
		p := s.parent
		if p == nil {
			return fmt.Errorf("doc.Apply: cannot move root %q", e.ID)
		}
		p.MoveChild(slices.Index(p.children, s), *e.Move)
	}
	if e.Add != nil {
		c, err := e.Add.shape()
		if err != nil {
			return err
		}
		s.AddChild(c)
	}
	return nil
}

func (e *Edit) apply(s *Shape) error {
	if e.Pos != nil {
		p := vec2(e.Pos)
		s.SetPos(p.X, p.Y)
	}
	if e.Size != nil {
		sz := vec2(e.Size)
		s.SetSize(sz.X, sz.Y)
	}
	if e.Visible != nil {
		s.SetVisible(*e.Visible)
	}
	if e.Fills != nil {
		fills, err := parseFills(e.Fills)
		if err != nil {
			return err
		}
		s.SetFills(fills...)
	}
	if e.Text != nil {
		s.SetText(*e.Text)
	}
	if e.Symbol != nil {
		s.SetSymbolRef(*e.Symbol)
	}
	if eo := e.Override; eo != nil {
		cat, ok := ParseCategory(eo.Category)
		if !ok {
			return fmt.Errorf("invalid override category %q", eo.Category)
		}
		if eo.Remove {
			s.RemoveOverride(eo.Target, cat)
			return nil
		}
		v, err := overrideValue(cat, &eo.Value)
		if err != nil {
			return err
		}
		s.SetOverride(eo.Target, cat, v)
	}
	return nil
}

func (d *Document) applyResource(e *Edit) error {
	if len(e.ResourceFills) == 0 {
		if !d.Resources.Delete(e.Resource) {
			return fmt.Errorf("doc.Apply: no resource %q", e.Resource)
		}
		return nil
	}
	fills, err := parseFills(e.ResourceFills)
	if err != nil {
		return err
	}
	if !d.Resources.Update(e.Resource, func(v *styles.Values) { v.Fills = fills }) {
		d.Resources.Set(&styles.Resource{ID: e.Resource, Kind: styles.FillSet, Value: styles.Values{Fills: fills}})
	}
	return nil
}
