package tree

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Map is a nested mapping node of a configuration tree.
type Map map[string]any

// Seq is an ordered sequence node of a configuration tree.
type Seq []any

// Kind is the structural shape of a tree value.
type Kind int

const (
	KindScalar Kind = iota
	KindMap
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "mapping"
	case KindSeq:
		return "sequence"
	default:
		return "scalar"
	}
}

// KindOf reports the shape of v. Plain map[string]any and []any values are
// accepted as mappings and sequences respectively.
func KindOf(v any) Kind {
	switch v.(type) {
	case Map, map[string]any:
		return KindMap
	case Seq, []any:
		return KindSeq
	default:
		return KindScalar
	}
}

// Pattern is a compiled file-suffix expression stored as a scalar in the tree.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr and panics if it is not a valid expression.
// Patterns are only built from fixed tables, so a bad expression is a
// programming error.
func NewPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(expr)}
}

// MatchString reports whether name matches the pattern.
func (p Pattern) MatchString(name string) bool {
	return p.re != nil && p.re.MatchString(name)
}

func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// MarshalJSON renders the pattern in the /expr/ literal form the engine expects.
func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal("/" + p.String() + "/")
}

// Clone returns a deep copy of v. Maps and sequences are copied recursively,
// scalars are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case Map:
		return cloneMap(t)
	case map[string]any:
		return cloneMap(t)
	case Seq:
		return cloneSeq(t)
	case []any:
		return cloneSeq(t)
	default:
		return v
	}
}

// CloneMap is Clone for a mapping root.
func CloneMap(m Map) Map {
	if m == nil {
		return nil
	}
	return cloneMap(m)
}

func cloneMap(m map[string]any) Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

func cloneSeq(s []any) Seq {
	out := make(Seq, len(s))
	for i, v := range s {
		out[i] = Clone(v)
	}
	return out
}

func asMap(v any) Map {
	switch t := v.(type) {
	case Map:
		return t
	case map[string]any:
		return Map(t)
	}
	return nil
}

func asSeq(v any) Seq {
	switch t := v.(type) {
	case Seq:
		return t
	case []any:
		return Seq(t)
	}
	return nil
}

// Get walks path from m and returns the value found there.
func Get(m Map, path ...string) (any, bool) {
	var cur any = m
	for _, key := range path {
		node := asMap(cur)
		if node == nil {
			return nil, false
		}
		v, ok := node[key]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Set stores value at path, creating intermediate mappings as needed. It
// fails with a [ShapeMismatchError] when an intermediate node exists and is
// not a mapping.
func Set(m Map, value any, path ...string) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	node := m
	for i, key := range path[:len(path)-1] {
		next, ok := node[key]
		if !ok || next == nil {
			child := Map{}
			node[key] = child
			node = child
			continue
		}
		child := asMap(next)
		if child == nil {
			return &ShapeMismatchError{
				Path:    strings.Join(path[:i+1], "."),
				Base:    KindOf(next),
				Overlay: KindMap,
			}
		}
		node = child
	}

	node[path[len(path)-1]] = value
	return nil
}
