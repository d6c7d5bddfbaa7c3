package mojangson

import (
	"strconv"
	"strings"
)

// Path builds JSON Pointer paths into a tag tree in a chain-safe way. The
// zero value is the root.
type Path struct {
	parts []string
}

// Root returns the root path.
func Root() Path { return Path{} }

// Field descends into a compound key, escaping '~' and '/' per RFC 6901.
func (p Path) Field(name string) Path {
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return Path{parts: append(append([]string{}, p.parts...), esc)}
}

// Index descends into a list element.
func (p Path) Index(i int) Path {
	return Path{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path; the root is "/".
func (p Path) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p Path) String() string { return p.Pointer() }

// Issue creates an Issue at p with no input offset.
func (p Path) Issue(code, msg string) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Offset: -1}
}
