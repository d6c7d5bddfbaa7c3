package nbt

import (
	"errors"
	"fmt"
)

// ErrNamedElement is returned when a Named value is added to a List.
var ErrNamedElement = errors.New("nbt: named tag cannot be a list element")

// List is an ordered sequence of tags sharing one element kind.
type List struct {
	elem  Kind
	items []Tag
}

// NewList builds a list of the given element kind. With KindEnd the kind is
// taken from the first item.
func NewList(elem Kind, items ...Tag) (*List, error) {
	l := &List{elem: elem}
	for _, it := range items {
		if err := l.Append(it); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// MustList is NewList that panics on a kind mismatch. It is meant for
// statically known literals.
func MustList(elem Kind, items ...Tag) *List {
	l, err := NewList(elem, items...)
	if err != nil {
		panic(err)
	}
	return l
}

func (*List) Kind() Kind { return KindList }
func (*List) isTag()     {}

// Elem returns the declared element kind.
func (l *List) Elem() Kind { return l.elem }

// Append adds t at the end. It fails when t's kind differs from the element
// kind. An empty list of kind End adopts the kind of its first element.
func (l *List) Append(t Tag) error {
	if t == nil {
		return fmt.Errorf("nbt: nil list element")
	}
	if _, ok := t.(Named); ok {
		return ErrNamedElement
	}
	if l.elem == KindEnd && len(l.items) == 0 {
		l.elem = t.Kind()
	}
	if t.Kind() != l.elem {
		return fmt.Errorf("nbt: list of %s cannot hold %s", l.elem, t.Kind())
	}
	l.items = append(l.items, t)
	return nil
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the i-th element.
func (l *List) At(i int) Tag { return l.items[i] }

// Items returns a copy of the element slice.
func (l *List) Items() []Tag {
	if l == nil {
		return nil
	}
	out := make([]Tag, len(l.items))
	copy(out, l.items)
	return out
}
