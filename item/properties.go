// Package item maps structured item metadata onto NBT compounds and wraps
// the result in a tag that can be held as Mojangson text or as properties.
package item

import "github.com/reoring/mojangson/chat"

// Enchantment is one entry of an item's enchantment list.
type Enchantment struct {
	ID    string `json:"id" yaml:"id"`
	Level int32  `json:"lvl" yaml:"lvl"`
}

// PropertyInfo is the structured view of an item tag.
//
// Nil collections are absent and never serialise as empty containers.
// Unbreakable is tri-state: nil leaves the key out.
type PropertyInfo struct {
	Name         []chat.Component
	Enchantments []Enchantment
	Lore         [][]chat.Component
	Unbreakable  *bool
}

// Clone returns a deep copy sharing no storage with p.
func (p PropertyInfo) Clone() PropertyInfo {
	out := PropertyInfo{Name: chat.CloneAll(p.Name)}
	if p.Enchantments != nil {
		out.Enchantments = append([]Enchantment(nil), p.Enchantments...)
		if out.Enchantments == nil {
			out.Enchantments = []Enchantment{}
		}
	}
	if p.Lore != nil {
		out.Lore = make([][]chat.Component, len(p.Lore))
		for i, line := range p.Lore {
			out.Lore[i] = chat.CloneAll(line)
		}
	}
	if p.Unbreakable != nil {
		v := *p.Unbreakable
		out.Unbreakable = &v
	}
	return out
}

// Bool returns a pointer to b, for PropertyInfo.Unbreakable.
func Bool(b bool) *bool { return &b }

// Builder assembles a PropertyInfo step by step.
//
//	p := item.NewBuilder().
//		Enchantment("minecraft:sharpness", 5).
//		Unbreakable(true).
//		Build()
type Builder struct {
	p PropertyInfo
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Name sets the display name.
func (b *Builder) Name(cs ...chat.Component) *Builder {
	b.p.Name = append([]chat.Component{}, cs...)
	return b
}

// Lore appends one lore line.
func (b *Builder) Lore(line ...chat.Component) *Builder {
	b.p.Lore = append(b.p.Lore, append([]chat.Component{}, line...))
	return b
}

// Enchantment appends an enchantment.
func (b *Builder) Enchantment(id string, level int32) *Builder {
	b.p.Enchantments = append(b.p.Enchantments, Enchantment{ID: id, Level: level})
	return b
}

// Unbreakable sets the unbreakable flag.
func (b *Builder) Unbreakable(v bool) *Builder {
	b.p.Unbreakable = Bool(v)
	return b
}

// Build returns an independent copy of the accumulated properties; the
// builder may keep being used afterwards.
func (b *Builder) Build() PropertyInfo { return b.p.Clone() }
