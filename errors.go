package mojangson

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired        = "required"
	CodeInvalidType     = "invalid_type"
	CodeParseError      = "parse_error"
	CodeUnsupportedKind = "unsupported_kind"
	CodeNotSupported    = "not_supported"
	CodeHandler         = "handler"
)

// ErrNotSupported marks grammar or operations that are recognised but not
// implemented. Match it with errors.Is.
var ErrNotSupported = errors.New("mojangson: not supported")

// Issue represents a single error entry.
type Issue struct {
	Path    string // JSON Pointer into the tag tree (for example: /Enchantments/0/lvl).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	Offset  int64 // Byte offset in the input text (-1 when unknown).
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /Unbreakable: expected TAG_Byte
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is and errors.As see through Issues.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Required returns a validation error for a missing argument.
func Required(path, what string) Issues {
	return Issues{{Path: path, Code: CodeRequired, Message: what + " is required", Offset: -1}}
}

// ParseError reports Mojangson text outside the grammar.
type ParseError struct {
	Offset   int64  // byte offset of the offending input
	Expected string // what the decoder was looking for, empty when anything else was unexpected
	Found    string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("mojangson: unexpected %s at offset %d", e.Found, e.Offset)
	}
	return fmt.Sprintf("mojangson: expected %s, found %s at offset %d", e.Expected, e.Found, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Issue projects the error into the Issue model.
func (e *ParseError) Issue() Issue {
	code := CodeParseError
	if errors.Is(e.Cause, ErrNotSupported) {
		code = CodeNotSupported
	}
	return Issue{Path: "/", Code: code, Message: e.Error(), Cause: e, Offset: e.Offset}
}

// UnsupportedKindError is returned by the encoder for a tag outside the
// closed set of nbt kinds. It indicates a programming error, not bad input.
type UnsupportedKindError struct {
	Type string // Go type of the offending value
	Kind string // kind it reported, if any
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("mojangson: unsupported tag kind %s (%s)", e.Kind, e.Type)
}

// Issue projects the error into the Issue model.
func (e *UnsupportedKindError) Issue() Issue {
	return Issue{Path: "/", Code: CodeUnsupportedKind, Message: e.Error(), Cause: e, Offset: -1}
}

// Code returns the issue code that best describes err, or "" for nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	if iss, ok := AsIssues(err); ok && len(iss) > 0 {
		return iss[0].Code
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Issue().Code
	}
	var ue *UnsupportedKindError
	if errors.As(err, &ue) {
		return CodeUnsupportedKind
	}
	if errors.Is(err, ErrNotSupported) {
		return CodeNotSupported
	}
	return CodeParseError
}
