// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the generic tagged node tree that views
// render into, and its encoding as SVG-style markup.
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Attr is one attribute of a [Node].
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a render tree: a tag with ordered attributes,
// ordered children, and optional character data.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// NewNode returns a new node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// SetAttr sets the attribute with the given name, keeping the position
// of an existing attribute. It returns the node for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{name, value})
	return n
}

// SetFloat sets a numeric attribute, formatted with the fewest digits.
func (n *Node) SetFloat(name string, v float32) *Node {
	return n.SetAttr(name, strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// Attr returns the value of the attribute with the given name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AddChild adds the given children and returns the node.
func (n *Node) AddChild(kids ...*Node) *Node {
	for _, k := range kids {
		if k != nil {
			n.Children = append(n.Children, k)
		}
	}
	return n
}

// Find returns the first node in the subtree with the given id attribute.
func (n *Node) Find(id string) *Node {
	if v, ok := n.Attr("id"); ok && v == id {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// Encode writes the node tree as indented markup.
func (n *Node) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := n.encode(enc); err != nil {
		return fmt.Errorf("render.Encode: %w", err)
	}
	return enc.Flush()
}

func (n *Node) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Tag}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Markup returns the node tree as an indented markup string.
func (n *Node) Markup() string {
	var b bytes.Buffer
	if err := n.Encode(&b); err != nil {
		return ""
	}
	return b.String()
}
