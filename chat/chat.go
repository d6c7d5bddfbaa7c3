// Package chat is a small rich-text component model and its JSON text form,
// the representation item display names and lore are stored in.
package chat

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Component is one styled run of text. Nil style flags inherit from the
// parent component.
type Component struct {
	Text          string      `json:"text" yaml:"text,omitempty"`
	Translate     string      `json:"translate,omitempty" yaml:"translate,omitempty"`
	Color         string      `json:"color,omitempty" yaml:"color,omitempty"`
	Bold          *bool       `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        *bool       `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underlined    *bool       `json:"underlined,omitempty" yaml:"underlined,omitempty"`
	Strikethrough *bool       `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Obfuscated    *bool       `json:"obfuscated,omitempty" yaml:"obfuscated,omitempty"`
	Extra         []Component `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Text returns a plain text component.
func Text(s string) Component { return Component{Text: s} }

// Flag returns a pointer to b, for the tri-state style fields.
func Flag(b bool) *bool { return &b }

// Clone returns a deep copy of c.
func (c Component) Clone() Component {
	out := c
	out.Bold = cloneFlag(c.Bold)
	out.Italic = cloneFlag(c.Italic)
	out.Underlined = cloneFlag(c.Underlined)
	out.Strikethrough = cloneFlag(c.Strikethrough)
	out.Obfuscated = cloneFlag(c.Obfuscated)
	out.Extra = CloneAll(c.Extra)
	return out
}

// CloneAll deep-copies a component sequence, keeping nil as nil.
func CloneAll(cs []Component) []Component {
	if cs == nil {
		return nil
	}
	out := make([]Component, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Plain flattens components to their text, ignoring styles and
// translations.
func Plain(cs []Component) string {
	var b strings.Builder
	var walk func([]Component)
	walk = func(cs []Component) {
		for _, c := range cs {
			b.WriteString(c.Text)
			walk(c.Extra)
		}
	}
	walk(cs)
	return b.String()
}

// Serialize renders components as JSON: a single component as an object,
// any other count as an array.
func Serialize(cs []Component) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(cs) == 1 {
		data, err = json.Marshal(cs[0])
	} else {
		if cs == nil {
			cs = []Component{}
		}
		data, err = json.Marshal(cs)
	}
	if err != nil {
		return "", fmt.Errorf("chat: serialize: %w", err)
	}
	return string(data), nil
}

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("chat: empty component text")

// Parse reads the JSON text form: an object, an array of objects, or a bare
// JSON string (a single plain text component).
func Parse(s string) ([]Component, error) {
	data := bytes.TrimSpace([]byte(s))
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	switch data[0] {
	case '{':
		var c Component
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("chat: parse component: %w", err)
		}
		return []Component{c}, nil
	case '[':
		var cs []Component
		if err := json.Unmarshal(data, &cs); err != nil {
			return nil, fmt.Errorf("chat: parse components: %w", err)
		}
		if cs == nil {
			cs = []Component{}
		}
		return cs, nil
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil, fmt.Errorf("chat: parse text: %w", err)
		}
		return []Component{Text(text)}, nil
	default:
		return nil, fmt.Errorf("chat: parse: unexpected %q", data[0])
	}
}

func cloneFlag(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
