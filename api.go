package mojangson

import "github.com/reoring/mojangson/nbt"

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(a A) (B, error) // A (wire) -> B (domain).
	Encode(b B) (A, error) // B (domain) -> A (wire).
}

// Text returns the Mojangson codec for arbitrary tags.
func Text(opts ...DecodeOpt) Codec[string, nbt.Tag] {
	return textCodec{opts: opts}
}

type textCodec struct{ opts []DecodeOpt }

func (c textCodec) Decode(s string) (nbt.Tag, error) { return Decode(s, c.opts...) }
func (c textCodec) Encode(t nbt.Tag) (string, error) { return Encode(t) }

// CompoundText returns the Mojangson codec for documents whose root is a
// compound, such as item tags.
func CompoundText(opts ...DecodeOpt) Codec[string, *nbt.Compound] {
	return compoundCodec{opts: opts}
}

type compoundCodec struct{ opts []DecodeOpt }

func (c compoundCodec) Decode(s string) (*nbt.Compound, error) { return DecodeCompound(s, c.opts...) }
func (c compoundCodec) Encode(t *nbt.Compound) (string, error) {
	if t == nil {
		return "", Required("/", "compound")
	}
	return Encode(t)
}

// Chain composes ab and bc: Decode runs ab then bc, Encode runs bc then ab.
func Chain[A, B, C any](ab Codec[A, B], bc Codec[B, C]) Codec[A, C] {
	return &chain[A, B, C]{ab: ab, bc: bc}
}

type chain[A, B, C any] struct {
	ab Codec[A, B]
	bc Codec[B, C]
}

func (c *chain[A, B, C]) Decode(a A) (C, error) {
	b, err := c.ab.Decode(a)
	if err != nil {
		var zero C
		return zero, err
	}
	return c.bc.Decode(b)
}

func (c *chain[A, B, C]) Encode(v C) (A, error) {
	b, err := c.bc.Encode(v)
	if err != nil {
		var zero A
		return zero, err
	}
	return c.ab.Encode(b)
}
