package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when base and overlay hold structurally
	// incompatible values at the same key.
	ErrShapeMismatch = errors.New("configuration shape mismatch")
	// ErrEmptyPath is returned by Set when no path is given.
	ErrEmptyPath = errors.New("empty tree path")
)

// ShapeMismatchError describes where and how two trees disagree.
type ShapeMismatchError struct {
	Path    string
	Base    Kind
	Overlay Kind
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s at %q: base is a %s, overlay is a %s", ErrShapeMismatch, e.Path, e.Base, e.Overlay)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}
