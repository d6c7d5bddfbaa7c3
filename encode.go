package mojangson

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	eng "github.com/reoring/mojangson/internal/engine"
	"github.com/reoring/mojangson/nbt"
)

// Syntax characters shared by the encoder and decoder.
const (
	compoundBegin  = '{'
	compoundEnd    = '}'
	listBegin      = '['
	listEnd        = ']'
	valueSeparator = ','
	keySeparator   = ':'
)

// Encode renders t as canonical Mojangson. A tag outside the nbt package's
// closed set (or nil) yields *UnsupportedKindError.
func Encode(t nbt.Tag) (string, error) {
	var b strings.Builder
	if err := encodeTo(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustEncode is Encode that panics on error. Use it for trees built from
// nbt types only, where the error is impossible.
func MustEncode(t nbt.Tag) string {
	s, err := Encode(t)
	if err != nil {
		panic(err)
	}
	return s
}

func encodeTo(b *strings.Builder, t nbt.Tag) error {
	switch x := t.(type) {
	case nil:
		return &UnsupportedKindError{Type: "<nil>", Kind: "none"}
	case nbt.Named:
		// the name belongs to the enclosing compound
		return encodeTo(b, x.Tag)
	case *nbt.Compound:
		b.WriteByte(compoundBegin)
		for i, e := range x.Entries() {
			if i > 0 {
				b.WriteByte(valueSeparator)
			}
			writeKey(b, e.Name)
			b.WriteByte(keySeparator)
			if err := encodeTo(b, e.Tag); err != nil {
				return err
			}
		}
		b.WriteByte(compoundEnd)
	case *nbt.List:
		b.WriteByte(listBegin)
		for i, it := range x.Items() {
			if i > 0 {
				b.WriteByte(valueSeparator)
			}
			if err := encodeTo(b, it); err != nil {
				return err
			}
		}
		b.WriteByte(listEnd)
	case nbt.Byte:
		b.WriteString(strconv.FormatInt(int64(x), 10))
		b.WriteByte('b')
	case nbt.Short:
		b.WriteString(strconv.FormatInt(int64(x), 10))
		b.WriteByte('s')
	case nbt.Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case nbt.Long:
		b.WriteString(strconv.FormatInt(int64(x), 10))
		b.WriteByte('L')
	case nbt.Float:
		b.WriteString(formatFloat(float64(x), 32))
		b.WriteByte('f')
	case nbt.Double:
		b.WriteString(formatFloat(float64(x), 64))
		b.WriteByte('d')
	case nbt.String:
		writeQuoted(b, string(x))
	case nbt.ByteArray:
		b.WriteString("[B;")
		for i, v := range x {
			if i > 0 {
				b.WriteByte(valueSeparator)
			}
			b.WriteString(strconv.FormatInt(int64(v), 10))
			b.WriteByte('B')
		}
		b.WriteByte(listEnd)
	case nbt.IntArray:
		b.WriteString("[I;")
		for i, v := range x {
			if i > 0 {
				b.WriteByte(valueSeparator)
			}
			b.WriteString(strconv.FormatInt(int64(v), 10))
		}
		b.WriteByte(listEnd)
	case nbt.LongArray:
		b.WriteString("[L;")
		for i, v := range x {
			if i > 0 {
				b.WriteByte(valueSeparator)
			}
			b.WriteString(strconv.FormatInt(v, 10))
			b.WriteByte('L')
		}
		b.WriteByte(listEnd)
	default:
		return &UnsupportedKindError{Type: fmt.Sprintf("%T", t), Kind: t.Kind().String()}
	}
	return nil
}

// writeKey emits name bare when every byte is in [A-Za-z0-9._+-], quoted
// otherwise.
func writeKey(b *strings.Builder, name string) {
	if isBareKey(name) {
		b.WriteString(name)
		return
	}
	writeQuoted(b, name)
}

func isBareKey(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !eng.IsBareChar(name[i]) {
			return false
		}
	}
	return true
}

// writeQuoted escapes only '\' and '"'.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}

// formatFloat returns the shortest text that parses back to v at the given
// bit size. The result always reads as a fractional literal.
func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if a := math.Abs(v); a == 0 || (a >= 1e-3 && a < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, bits)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(v, 'e', -1, bits)
}
