package item

import (
	"bytes"
	"sync"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"

	"github.com/reoring/mojangson"
)

// Tag is an item tag held either as Mojangson text or as properties. The
// form it was built from is authoritative; the other is derived on demand
// and cached. Two tags are equal when their text is equal.
type Tag struct {
	text  string
	props *PropertyInfo // non-nil when built from properties

	reg    *Registry
	regSet bool
	opts   []mojangson.DecodeOpt

	once    sync.Once
	derived PropertyInfo
	err     error
}

// Option configures a Tag.
type Option func(*Tag)

// WithRegistry selects the handler registry used to convert between text
// and properties. The default is DefaultRegistry(); nil means no handlers.
func WithRegistry(reg *Registry) Option {
	return func(t *Tag) { t.reg, t.regSet = reg, true }
}

// WithDecodeOptions sets the decoder options used when deriving properties
// from text.
func WithDecodeOptions(opts ...mojangson.DecodeOpt) Option {
	return func(t *Tag) { t.opts = append([]mojangson.DecodeOpt(nil), opts...) }
}

func newTag(opts []Option) *Tag {
	t := &Tag{}
	for _, o := range opts {
		if o != nil {
			o(t)
		}
	}
	return t
}

func (t *Tag) registry() *Registry {
	if !t.regSet {
		return DefaultRegistry()
	}
	return t.reg
}

func (t *Tag) codec() mojangson.Codec[string, PropertyInfo] {
	return mojangson.Chain(mojangson.CompoundText(t.opts...), Codec(t.registry()))
}

// FromProperties builds a tag from a copy of p and renders its text
// immediately.
func FromProperties(p *PropertyInfo, opts ...Option) (*Tag, error) {
	if p == nil {
		return nil, mojangson.Required("/properties", "properties")
	}
	t := newTag(opts)
	cp := p.Clone()
	text, err := t.codec().Encode(cp)
	if err != nil {
		return nil, err
	}
	t.text = text
	t.props = &cp
	return t, nil
}

// FromText builds a tag from Mojangson text. The text is not checked until
// Properties is called.
func FromText(s string, opts ...Option) *Tag {
	t := newTag(opts)
	t.text = s
	return t
}

// Text returns the Mojangson text of the tag.
func (t *Tag) Text() string {
	if t == nil {
		return ""
	}
	return t.text
}

func (t *Tag) String() string { return t.Text() }

// Properties returns an independent copy of the tag's properties. For tags
// built from text the first call decodes it; the result, or the error, is
// kept for later calls. Grammar the decoder does not implement fails with
// an error matching mojangson.ErrNotSupported.
func (t *Tag) Properties() (PropertyInfo, error) {
	if t.props != nil {
		return t.props.Clone(), nil
	}
	t.once.Do(func() {
		t.derived, t.err = t.codec().Decode(t.text)
	})
	if t.err != nil {
		return PropertyInfo{}, t.err
	}
	return t.derived.Clone(), nil
}

// Equal reports whether t and o have the same text.
func (t *Tag) Equal(o *Tag) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.text == o.text
}

// Hash is consistent with Equal.
func (t *Tag) Hash() uint64 { return xxhash.Sum64String(t.Text()) }

// MarshalJSON encodes the tag as a JSON string holding its text.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Text())
}

// UnmarshalJSON replaces t with a text tag. A JSON string is decoded;
// any other token is taken verbatim as the text. The registry and decode
// options are kept.
func (t *Tag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var text string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	} else {
		text = string(data)
	}
	reg, regSet, opts := t.reg, t.regSet, t.opts
	*t = Tag{text: text, reg: reg, regSet: regSet, opts: opts}
	return nil
}
