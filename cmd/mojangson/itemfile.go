package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/reoring/mojangson/chat"
	"github.com/reoring/mojangson/item"
)

// itemFile is the YAML form of item properties read by `item` and written
// by `inspect`.
type itemFile struct {
	Name         richText           `yaml:"name,omitempty"`
	Lore         []richText         `yaml:"lore,omitempty"`
	Enchantments []item.Enchantment `yaml:"enchantments,omitempty"`
	Unbreakable  *bool              `yaml:"unbreakable,omitempty"`
}

// richText accepts a plain string, one component mapping, or a sequence of
// components.
type richText []chat.Component

func (r *richText) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*r = richText{chat.Text(n.Value)}
		return nil
	case yaml.MappingNode:
		var c chat.Component
		if err := n.Decode(&c); err != nil {
			return err
		}
		*r = richText{c}
		return nil
	case yaml.SequenceNode:
		var cs []chat.Component
		if err := n.Decode(&cs); err != nil {
			return err
		}
		if cs == nil {
			cs = []chat.Component{}
		}
		*r = cs
		return nil
	default:
		return fmt.Errorf("line %d: rich text must be a string, mapping or sequence", n.Line)
	}
}

func (r richText) MarshalYAML() (any, error) {
	if len(r) == 1 {
		if isPlain(r[0]) {
			return r[0].Text, nil
		}
		return r[0], nil
	}
	return []chat.Component(r), nil
}

// isPlain reports whether c carries nothing but text.
func isPlain(c chat.Component) bool {
	return c.Text != "" && c.Translate == "" && c.Color == "" &&
		c.Bold == nil && c.Italic == nil && c.Underlined == nil &&
		c.Strikethrough == nil && c.Obfuscated == nil && len(c.Extra) == 0
}

// loadItemFile reads an item file, rejecting unknown keys.
func loadItemFile(r io.Reader) (item.PropertyInfo, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s itemFile
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return item.PropertyInfo{}, fmt.Errorf("item file: %w", err)
	}
	return s.properties(), nil
}

func (s itemFile) properties() item.PropertyInfo {
	p := item.PropertyInfo{
		Name:         []chat.Component(s.Name),
		Enchantments: s.Enchantments,
		Unbreakable:  s.Unbreakable,
	}
	for _, line := range s.Lore {
		p.Lore = append(p.Lore, []chat.Component(line))
	}
	return p
}

func itemFileOf(p item.PropertyInfo) itemFile {
	s := itemFile{
		Name:         richText(p.Name),
		Enchantments: p.Enchantments,
		Unbreakable:  p.Unbreakable,
	}
	for _, line := range p.Lore {
		s.Lore = append(s.Lore, richText(line))
	}
	return s
}
