package nbt

// Compound is an insertion-ordered mapping of unique names to tags.
// The zero value is an empty compound ready to use.
type Compound struct {
	entries []Named
	index   map[string]int
}

// NewCompound returns an empty compound.
func NewCompound() *Compound { return &Compound{} }

func (*Compound) Kind() Kind { return KindCompound }
func (*Compound) isTag()     {}

// Put stores t under name and returns c for chaining. An existing entry keeps
// its position and has its value replaced. Named values are unwrapped.
func (c *Compound) Put(name string, t Tag) *Compound {
	if n, ok := t.(Named); ok {
		t = n.Tag
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[name]; ok {
		c.entries[i].Tag = t
		return c
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, Named{Name: name, Tag: t})
	return c
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.entries[i].Tag, true
}

// Has reports whether name is present.
func (c *Compound) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Delete removes name and reports whether it was present. The relative order
// of the remaining entries is unchanged.
func (c *Compound) Delete(name string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.entries); j++ {
		c.index[c.entries[j].Name] = j
	}
	return true
}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Keys returns the entry names in insertion order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Name
	}
	return out
}

// Entries returns a copy of the entries in insertion order. The tags
// themselves are shared; use Clone for an independent tree.
func (c *Compound) Entries() []Named {
	if c == nil {
		return nil
	}
	out := make([]Named, len(c.entries))
	copy(out, c.entries)
	return out
}

// Clone returns a deep copy of c.
func (c *Compound) Clone() *Compound {
	if c == nil {
		return nil
	}
	out := &Compound{}
	for _, e := range c.entries {
		out.Put(e.Name, Clone(e.Tag))
	}
	return out
}
