package nbt

import "math"

// Equal reports whether a and b are structurally equal. Named wrappers are
// looked through, floating point values compare by bit pattern, and empty
// lists are equal whatever their declared element kind.
func Equal(a, b Tag) bool {
	a, b = unwrap(a), unwrap(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Byte:
		y, ok := b.(Byte)
		return ok && x == y
	case Short:
		y, ok := b.(Short)
		return ok && x == y
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Long:
		y, ok := b.(Long)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && math.Float32bits(float32(x)) == math.Float32bits(float32(y))
	case Double:
		y, ok := b.(Double)
		return ok && math.Float64bits(float64(x)) == math.Float64bits(float64(y))
	case String:
		y, ok := b.(String)
		return ok && x == y
	case ByteArray:
		y, ok := b.(ByteArray)
		return ok && sliceEqual(x, y)
	case IntArray:
		y, ok := b.(IntArray)
		return ok && sliceEqual(x, y)
	case LongArray:
		y, ok := b.(LongArray)
		return ok && sliceEqual(x, y)
	case *List:
		y, ok := b.(*List)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x.Len() == 0 {
			return true
		}
		if x.elem != y.elem {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	case *Compound:
		y, ok := b.(*Compound)
		if !ok || x.Len() != y.Len() {
			return false
		}
		if x.Len() == 0 {
			return true
		}
		for i, e := range x.entries {
			f := y.entries[i]
			if e.Name != f.Name || !Equal(e.Tag, f.Tag) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of t. Arrays, lists and compounds never share
// storage with the original.
func Clone(t Tag) Tag {
	switch x := t.(type) {
	case nil:
		return nil
	case Named:
		return Named{Name: x.Name, Tag: Clone(x.Tag)}
	case ByteArray:
		return append(ByteArray(nil), x...)
	case IntArray:
		return append(IntArray(nil), x...)
	case LongArray:
		return append(LongArray(nil), x...)
	case *List:
		if x == nil {
			return (*List)(nil)
		}
		out := &List{elem: x.elem, items: make([]Tag, len(x.items))}
		for i, it := range x.items {
			out.items[i] = Clone(it)
		}
		return out
	case *Compound:
		return x.Clone()
	default:
		// scalars are values
		return t
	}
}

func unwrap(t Tag) Tag {
	for {
		n, ok := t.(Named)
		if !ok {
			return t
		}
		t = n.Tag
	}
}

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
