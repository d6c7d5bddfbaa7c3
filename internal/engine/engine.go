package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind represents Mojangson token kinds.
type Kind int

const (
	KindEOF           Kind = iota
	KindBeginCompound      // {
	KindEndCompound        // }
	KindBeginList          // [
	KindEndList            // ]
	KindComma              // ,
	KindColon              // :
	KindSemicolon          // ;
	KindLParen             // (
	KindQuoted             // "..." or '...', Text holds the unescaped value
	KindBare               // [A-Za-z0-9._+-]+
)

// Token is a lexical token with the byte offset of its first character.
type Token struct {
	Kind   Kind
	Text   string
	Offset int64
}

// String describes the token for error messages.
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "end of input"
	case KindBeginCompound:
		return "'{'"
	case KindEndCompound:
		return "'}'"
	case KindBeginList:
		return "'['"
	case KindEndList:
		return "']'"
	case KindComma:
		return "','"
	case KindColon:
		return "':'"
	case KindSemicolon:
		return "';'"
	case KindLParen:
		return "'('"
	case KindQuoted:
		return fmt.Sprintf("string %q", t.Text)
	case KindBare:
		return fmt.Sprintf("%q", t.Text)
	default:
		return "unknown token"
	}
}

// SyntaxError is a lexical or structural error at a byte offset.
type SyntaxError struct {
	Offset   int64
	Expected string
	Found    string
	Cause    error
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected %s at offset %d", e.Found, e.Offset)
	}
	return fmt.Sprintf("expected %s, found %s at offset %d", e.Expected, e.Found, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// Options controls scanning.
type Options struct {
	// Strict rejects whitespace between tokens.
	Strict bool
	// MaxDepth bounds the nesting of compounds and lists; 0 disables the check.
	MaxDepth int
}

// Scanner tokenizes Mojangson text with one token of lookahead.
type Scanner struct {
	src    string
	pos    int
	opt    Options
	depth  int
	peeked *Token
}

// NewScanner returns a Scanner over src.
func NewScanner(src string, opt Options) *Scanner {
	return &Scanner{src: src, opt: opt}
}

// Offset returns the current byte offset.
func (s *Scanner) Offset() int64 {
	if s.peeked != nil {
		return s.peeked.Offset
	}
	return int64(s.pos)
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (Token, error) {
	if s.peeked != nil {
		return *s.peeked, nil
	}
	t, err := s.scan()
	if err != nil {
		return Token{}, err
	}
	s.peeked = &t
	return t, nil
}

// Next consumes and returns the next token.
func (s *Scanner) Next() (Token, error) {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t, nil
	}
	return s.scan()
}

// ArrayPrefix consumes a typed array header ("B;", "I;" or "L;") directly
// after '[' and returns the type letter. It must be called with no token
// peeked; in permissive mode whitespace before the header is skipped.
func (s *Scanner) ArrayPrefix() (byte, bool) {
	if s.peeked != nil {
		return 0, false
	}
	p := s.pos
	if !s.opt.Strict {
		for p < len(s.src) && isSpace(s.src[p]) {
			p++
		}
	}
	if p+1 >= len(s.src) || s.src[p+1] != ';' {
		return 0, false
	}
	switch c := s.src[p]; c {
	case 'B', 'I', 'L':
		s.pos = p + 2
		return c, true
	}
	return 0, false
}

func (s *Scanner) scan() (Token, error) {
	if err := s.skipSpace(); err != nil {
		return Token{}, err
	}
	start := s.pos
	if start >= len(s.src) {
		return Token{Kind: KindEOF, Offset: int64(start)}, nil
	}
	c := s.src[start]
	var k Kind
	switch c {
	case '{':
		k = KindBeginCompound
	case '}':
		k = KindEndCompound
	case '[':
		k = KindBeginList
	case ']':
		k = KindEndList
	case ',':
		k = KindComma
	case ':':
		k = KindColon
	case ';':
		k = KindSemicolon
	case '(':
		k = KindLParen
	case '"', '\'':
		return s.scanQuoted()
	default:
		if IsBareChar(c) {
			for s.pos < len(s.src) && IsBareChar(s.src[s.pos]) {
				s.pos++
			}
			return Token{Kind: KindBare, Text: s.src[start:s.pos], Offset: int64(start)}, nil
		}
		return Token{}, &SyntaxError{Offset: int64(start), Found: s.describeAt(start)}
	}
	s.pos++
	switch k {
	case KindBeginCompound, KindBeginList:
		s.depth++
		if s.opt.MaxDepth > 0 && s.depth > s.opt.MaxDepth {
			return Token{}, &SyntaxError{
				Offset: int64(start),
				Found:  fmt.Sprintf("nesting deeper than %d", s.opt.MaxDepth),
			}
		}
	case KindEndCompound, KindEndList:
		s.depth--
	}
	return Token{Kind: k, Offset: int64(start)}, nil
}

func (s *Scanner) scanQuoted() (Token, error) {
	start := s.pos
	q := s.src[start]
	s.pos++
	var b strings.Builder
	seg := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch c {
		case q:
			b.WriteString(s.src[seg:s.pos])
			s.pos++
			return Token{Kind: KindQuoted, Text: b.String(), Offset: int64(start)}, nil
		case '\\':
			b.WriteString(s.src[seg:s.pos])
			if s.pos+1 >= len(s.src) {
				return Token{}, &SyntaxError{Offset: int64(s.pos), Expected: "escaped character", Found: "end of input"}
			}
			switch e := s.src[s.pos+1]; e {
			case '\\', '"', '\'':
				b.WriteByte(e)
			default:
				return Token{}, &SyntaxError{
					Offset:   int64(s.pos),
					Expected: `one of \\ \" \'`,
					Found:    fmt.Sprintf("escape sequence \\%c", e),
				}
			}
			s.pos += 2
			seg = s.pos
		default:
			s.pos++
		}
	}
	return Token{}, &SyntaxError{Offset: int64(start), Expected: "closing quote", Found: "end of input"}
}

func (s *Scanner) skipSpace() error {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		if s.opt.Strict {
			return &SyntaxError{Offset: int64(s.pos), Found: "whitespace"}
		}
		s.pos++
	}
	return nil
}

func (s *Scanner) describeAt(p int) string {
	r, _ := utf8.DecodeRuneInString(s.src[p:])
	return fmt.Sprintf("%q", r)
}

// IsBareChar reports whether c may appear in an unquoted key or value.
func IsBareChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '_' || c == '+' || c == '-'
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
