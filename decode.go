package mojangson

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	eng "github.com/reoring/mojangson/internal/engine"
	"github.com/reoring/mojangson/nbt"
)

var (
	intLiteral   = regexp.MustCompile(`^[-+]?[0-9]+$`)
	floatLiteral = regexp.MustCompile(`^[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
	// Newer SNBT spellings we recognise but do not decode.
	radixLiteral     = regexp.MustCompile(`^[-+]?0(?:[xX][0-9a-fA-F_]+|[bB][01_]+)[a-zA-Z]*$`)
	separatedLiteral = regexp.MustCompile(`^[-+]?[0-9][0-9_]*(?:\.[0-9_]*)?(?:[eE][-+]?[0-9_]+)?[a-zA-Z]?$`)
	signedSuffix     = regexp.MustCompile(`^[-+]?[0-9]+(?:[uUsS][bBsSiIlL]|[iI])$`)
)

// Decode parses Mojangson text into a tag tree. The whole input must form a
// single value. Malformed input yields *ParseError; spellings that are
// recognised but not implemented (SNBT operations such as bool(...),
// hexadecimal or binary literals, digit separators, signedness suffixes)
// yield a *ParseError wrapping ErrNotSupported.
func Decode(text string, opts ...DecodeOpt) (nbt.Tag, error) {
	opt := normalizeDecodeOpt(opts)
	d := &decoder{s: eng.NewScanner(text, eng.Options{Strict: opt.Strict, MaxDepth: opt.MaxDepth})}
	t, err := d.value()
	if err != nil {
		return nil, toParseError(err)
	}
	tok, err := d.s.Next()
	if err != nil {
		return nil, toParseError(err)
	}
	if tok.Kind != eng.KindEOF {
		return nil, &ParseError{Offset: tok.Offset, Expected: "end of input", Found: tok.String()}
	}
	return t, nil
}

// DecodeCompound parses text whose root must be a compound.
func DecodeCompound(text string, opts ...DecodeOpt) (*nbt.Compound, error) {
	if text == "{}" {
		return nbt.NewCompound(), nil
	}
	t, err := Decode(text, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*nbt.Compound)
	if !ok {
		return nil, &ParseError{Offset: 0, Expected: "compound", Found: t.Kind().String()}
	}
	return c, nil
}

type decoder struct {
	s *eng.Scanner
}

func (d *decoder) value() (nbt.Tag, error) {
	tok, err := d.s.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case eng.KindBeginCompound:
		return d.compound()
	case eng.KindBeginList:
		return d.list()
	case eng.KindQuoted:
		return nbt.String(tok.Text), nil
	case eng.KindBare:
		next, err := d.s.Peek()
		if err != nil {
			return nil, err
		}
		if next.Kind == eng.KindLParen {
			return nil, notSupported(tok.Offset, fmt.Sprintf("operation %s(...)", tok.Text))
		}
		return scalar(tok)
	default:
		return nil, &ParseError{Offset: tok.Offset, Expected: "value", Found: tok.String()}
	}
}

func (d *decoder) compound() (nbt.Tag, error) {
	c := nbt.NewCompound()
	tok, err := d.s.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == eng.KindEndCompound {
		_, _ = d.s.Next()
		return c, nil
	}
	for {
		key, err := d.s.Next()
		if err != nil {
			return nil, err
		}
		if key.Kind != eng.KindBare && key.Kind != eng.KindQuoted {
			return nil, &ParseError{Offset: key.Offset, Expected: "compound key", Found: key.String()}
		}
		if c.Has(key.Text) {
			return nil, &ParseError{Offset: key.Offset, Expected: "unique key", Found: "duplicate key " + strconv.Quote(key.Text)}
		}
		sep, err := d.s.Next()
		if err != nil {
			return nil, err
		}
		if sep.Kind != eng.KindColon {
			return nil, &ParseError{Offset: sep.Offset, Expected: "':'", Found: sep.String()}
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		c.Put(key.Text, v)

		tok, err := d.s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case eng.KindComma:
		case eng.KindEndCompound:
			return c, nil
		default:
			return nil, &ParseError{Offset: tok.Offset, Expected: "',' or '}'", Found: tok.String()}
		}
	}
}

func (d *decoder) list() (nbt.Tag, error) {
	if typ, ok := d.s.ArrayPrefix(); ok {
		return d.array(typ)
	}
	l, _ := nbt.NewList(nbt.KindEnd)
	tok, err := d.s.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == eng.KindEndList {
		_, _ = d.s.Next()
		return l, nil
	}
	for {
		if _, err := d.s.Peek(); err != nil {
			return nil, err
		}
		at := d.s.Offset()
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		if err := l.Append(v); err != nil {
			return nil, &ParseError{Offset: at, Expected: "list element of kind " + l.Elem().String(), Found: v.Kind().String(), Cause: err}
		}
		tok, err := d.s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case eng.KindComma:
		case eng.KindEndList:
			return l, nil
		default:
			return nil, &ParseError{Offset: tok.Offset, Expected: "',' or ']'", Found: tok.String()}
		}
	}
}

func (d *decoder) array(typ byte) (nbt.Tag, error) {
	var (
		bytes nbt.ByteArray
		ints  nbt.IntArray
		longs nbt.LongArray
	)
	result := func() nbt.Tag {
		switch typ {
		case 'B':
			return append(nbt.ByteArray{}, bytes...)
		case 'I':
			return append(nbt.IntArray{}, ints...)
		default:
			return append(nbt.LongArray{}, longs...)
		}
	}
	tok, err := d.s.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == eng.KindEndList {
		_, _ = d.s.Next()
		return result(), nil
	}
	for {
		tok, err := d.s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != eng.KindBare {
			return nil, &ParseError{Offset: tok.Offset, Expected: "array element", Found: tok.String()}
		}
		switch typ {
		case 'B':
			v, err := arrayElement(tok, "bB", 8, "byte")
			if err != nil {
				return nil, err
			}
			bytes = append(bytes, int8(v))
		case 'I':
			v, err := arrayElement(tok, "", 32, "int")
			if err != nil {
				return nil, err
			}
			ints = append(ints, int32(v))
		default:
			v, err := arrayElement(tok, "lL", 64, "long")
			if err != nil {
				return nil, err
			}
			longs = append(longs, v)
		}
		tok, err = d.s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case eng.KindComma:
		case eng.KindEndList:
			return result(), nil
		default:
			return nil, &ParseError{Offset: tok.Offset, Expected: "',' or ']'", Found: tok.String()}
		}
	}
}

// arrayElement parses an integer array element with an optional suffix.
func arrayElement(tok eng.Token, suffixes string, bits int, what string) (int64, error) {
	word := tok.Text
	if n := len(word); n > 1 && suffixes != "" && strings.IndexByte(suffixes, word[n-1]) >= 0 {
		word = word[:n-1]
	}
	if !intLiteral.MatchString(word) {
		if isUnsupportedLiteral(tok.Text) {
			return 0, notSupported(tok.Offset, "literal "+strconv.Quote(tok.Text))
		}
		return 0, &ParseError{Offset: tok.Offset, Expected: what, Found: tok.String()}
	}
	v, err := strconv.ParseInt(word, 10, bits)
	if err != nil {
		return 0, &ParseError{Offset: tok.Offset, Expected: what + " in range", Found: tok.String(), Cause: err}
	}
	return v, nil
}

// scalar interprets a bare word: booleans, suffixed and unsuffixed numbers,
// and anything else as an unquoted string.
func scalar(tok eng.Token) (nbt.Tag, error) {
	word := tok.Text
	switch word {
	case "true":
		return nbt.Byte(1), nil
	case "false":
		return nbt.Byte(0), nil
	}
	if t, ok := special(word); ok {
		return t, nil
	}
	if isUnsupportedLiteral(word) {
		return nil, notSupported(tok.Offset, "literal "+strconv.Quote(word))
	}
	rangeErr := func(kind nbt.Kind, err error) error {
		return &ParseError{Offset: tok.Offset, Expected: kind.String() + " in range", Found: tok.String(), Cause: err}
	}
	if n := len(word); n > 1 {
		body := word[:n-1]
		switch word[n-1] {
		case 'b', 'B':
			if intLiteral.MatchString(body) {
				v, err := strconv.ParseInt(body, 10, 8)
				if err != nil {
					return nil, rangeErr(nbt.KindByte, err)
				}
				return nbt.Byte(v), nil
			}
		case 's', 'S':
			if intLiteral.MatchString(body) {
				v, err := strconv.ParseInt(body, 10, 16)
				if err != nil {
					return nil, rangeErr(nbt.KindShort, err)
				}
				return nbt.Short(v), nil
			}
		case 'l', 'L':
			if intLiteral.MatchString(body) {
				v, err := strconv.ParseInt(body, 10, 64)
				if err != nil {
					return nil, rangeErr(nbt.KindLong, err)
				}
				return nbt.Long(v), nil
			}
		case 'f', 'F':
			if floatLiteral.MatchString(body) {
				v, err := strconv.ParseFloat(body, 32)
				if err != nil {
					return nil, rangeErr(nbt.KindFloat, err)
				}
				return nbt.Float(v), nil
			}
		case 'd', 'D':
			if floatLiteral.MatchString(body) {
				v, err := strconv.ParseFloat(body, 64)
				if err != nil {
					return nil, rangeErr(nbt.KindDouble, err)
				}
				return nbt.Double(v), nil
			}
		}
	}
	if intLiteral.MatchString(word) {
		v, err := strconv.ParseInt(word, 10, 32)
		if err != nil {
			return nil, rangeErr(nbt.KindInt, err)
		}
		return nbt.Int(v), nil
	}
	if floatLiteral.MatchString(word) {
		v, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, rangeErr(nbt.KindDouble, err)
		}
		return nbt.Double(v), nil
	}
	return nbt.String(word), nil
}

// special decodes the non-finite spellings the encoder emits.
func special(word string) (nbt.Tag, bool) {
	n := len(word)
	if n < 4 {
		return nil, false
	}
	var v float64
	switch word[:n-1] {
	case "NaN":
		v = math.NaN()
	case "Infinity", "+Infinity":
		v = math.Inf(1)
	case "-Infinity":
		v = math.Inf(-1)
	default:
		return nil, false
	}
	switch word[n-1] {
	case 'f', 'F':
		return nbt.Float(float32(v)), true
	case 'd', 'D':
		return nbt.Double(v), true
	}
	return nil, false
}

func isUnsupportedLiteral(word string) bool {
	if radixLiteral.MatchString(word) || signedSuffix.MatchString(word) {
		return true
	}
	return strings.IndexByte(word, '_') >= 0 && separatedLiteral.MatchString(word)
}

func notSupported(off int64, what string) error {
	return &ParseError{Offset: off, Found: what, Cause: ErrNotSupported}
}

func toParseError(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	var se *eng.SyntaxError
	if errors.As(err, &se) {
		return &ParseError{Offset: se.Offset, Expected: se.Expected, Found: se.Found, Cause: se.Cause}
	}
	return &ParseError{Offset: -1, Found: err.Error(), Cause: err}
}
