package core

import (
	"strconv"
	"strings"
)

// StepKind identifies what a PathStep addresses.
type StepKind uint8

const (
	// StepKey is a struct field or string map key.
	StepKey StepKind = iota
	// StepIndex is a sequence position, byte offset or ordered collection
	// position.
	StepIndex
	// StepMarker is a synthetic step, e.g. the key half of an ordered map
	// entry or an unordered entry that found no partner.
	StepMarker
)

// PathStep is one segment of a Path.
type PathStep struct {
	Kind  StepKind
	Key   string // StepKey: the key. StepMarker: the marker name.
	Index int    // StepIndex and StepMarker.
}

// KeyStep returns a step addressing a field or string key.
func KeyStep(key string) PathStep {
	return PathStep{Kind: StepKey, Key: key}
}

// IndexStep returns a step addressing a position.
func IndexStep(i int) PathStep {
	return PathStep{Kind: StepIndex, Index: i}
}

// MarkerStep returns a synthetic step such as <key:2>.
func MarkerStep(name string, i int) PathStep {
	return PathStep{Kind: StepMarker, Key: name, Index: i}
}

func (s PathStep) String() string {
	switch s.Kind {
	case StepIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	case StepMarker:
		return "<" + s.Key + ":" + strconv.Itoa(s.Index) + ">"
	}
	if isIdentifier(s.Key) {
		return "." + s.Key
	}
	return "[" + strconv.Quote(s.Key) + "]"
}

// Path is the ordered list of steps from the comparison roots to a node.
// Paths are never modified in place; Extend always allocates.
type Path []PathStep

// Extend returns a new path with step appended. Sibling branches extending
// the same parent never observe each other's steps.
func (p Path) Extend(step PathStep) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = step
	return np
}

// String renders the path as "root.a[1]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("root")
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Pointer renders the path as a JSON Pointer (RFC 6901), "/a/1". The root
// is "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		switch s.Kind {
		case StepKey:
			b.WriteString(EscapeKey(s.Key))
		case StepIndex:
			b.WriteString(strconv.Itoa(s.Index))
		default:
			b.WriteString(EscapeKey(s.String()))
		}
	}
	return b.String()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

type PathPart struct {
	Key     string
	Index   int
	IsIndex bool
}

// ParsePath parses either a JSON Pointer ("/a/1") or the rendered form
// produced by Path.String ("root.a[1]", "a[1]", "a.b").
func ParsePath(path string) []PathPart {
	if path == "" || path == "/" || path == "root" {
		return nil
	}
	if strings.HasPrefix(path, "/") {
		return ParseJSONPointer(path)
	}
	return parseDotted(path)
}

func ParseJSONPointer(path string) []PathPart {
	if path == "" || path == "/" {
		return nil
	}

	tokens := strings.Split(strings.TrimPrefix(path, "/"), "/")
	parts := make([]PathPart, len(tokens))
	for i, token := range tokens {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		if idx, err := strconv.Atoi(token); err == nil && idx >= 0 {
			parts[i] = PathPart{Key: token, Index: idx, IsIndex: true}
		} else {
			parts[i] = PathPart{Key: token}
		}
	}
	return parts
}

func parseDotted(path string) []PathPart {
	if rest, ok := strings.CutPrefix(path, "root"); ok && (rest == "" || strings.ContainsRune(".[<", rune(rest[0]))) {
		path = rest
	}
	var parts []PathPart
	for len(path) > 0 {
		switch path[0] {
		case '.':
			path = path[1:]
		case '[':
			end := closingBracket(path)
			inner := path[1:end]
			path = path[min(end+1, len(path)):]
			if key, err := strconv.Unquote(inner); err == nil {
				parts = append(parts, PathPart{Key: key})
			} else if idx, err := strconv.Atoi(inner); err == nil && idx >= 0 {
				parts = append(parts, PathPart{Key: inner, Index: idx, IsIndex: true})
			} else {
				parts = append(parts, PathPart{Key: inner})
			}
		default:
			end := strings.IndexAny(path, ".[")
			if end < 0 {
				end = len(path)
			}
			parts = append(parts, PathPart{Key: path[:end]})
			path = path[end:]
		}
	}
	return parts
}

// closingBracket returns the index of the ']' closing the bracket at s[0],
// skipping over quoted keys.
func closingBracket(s string) int {
	if len(s) > 1 && s[1] == '"' {
		if q, err := strconv.QuotedPrefix(s[1:]); err == nil {
			return 1 + len(q)
		}
	}
	if i := strings.IndexByte(s, ']'); i >= 0 {
		return i
	}
	return len(s)
}

// NormalizePath converts a dotted or JSON Pointer path to the JSON Pointer
// form returned by Path.Pointer.
func NormalizePath(path string) string {
	parts := ParsePath(path)
	if len(parts) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte('/')
		if p.IsIndex {
			b.WriteString(strconv.Itoa(p.Index))
		} else {
			b.WriteString(EscapeKey(p.Key))
		}
	}
	return b.String()
}

func EscapeKey(key string) string {
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}
