package tree

import (
	"maps"
	"slices"
)

// Merge deep-merges overlay on top of base and returns a new tree.
//
// Mappings present on both sides are merged recursively, sequences are
// concatenated with the overlay entries after the base entries, and for
// scalars the overlay value wins. A key holding a mapping on one side and a
// different shape on the other fails with a [ShapeMismatchError]; the same
// holds for sequences. A nil value on either side counts as absent.
//
// Neither input is modified and the result shares no mappings or sequences
// with them.
func Merge(base, overlay Map) (Map, error) {
	return mergeMaps("", base, overlay)
}

// MergeAll folds layers left to right with [Merge].
func MergeAll(layers ...Map) (Map, error) {
	out := Map{}
	for _, layer := range layers {
		merged, err := Merge(out, layer)
		if err != nil {
			return nil, err
		}
		out = merged
	}
	return out, nil
}

func mergeMaps(path string, base, overlay Map) (Map, error) {
	out := make(Map, len(base)+len(overlay))
	for k, v := range base {
		out[k] = Clone(v)
	}

	for _, k := range slices.Sorted(maps.Keys(overlay)) {
		ov := overlay[k]
		bv, ok := base[k]
		if !ok {
			out[k] = Clone(ov)
			continue
		}

		merged, err := mergeValues(joinPath(path, k), bv, ov)
		if err != nil {
			return nil, err
		}
		out[k] = merged
	}

	return out, nil
}

func mergeValues(path string, bv, ov any) (any, error) {
	if bv == nil || ov == nil {
		return Clone(ov), nil
	}

	bk, ok := KindOf(bv), KindOf(ov)
	switch {
	case bk == KindMap && ok == KindMap:
		return mergeMaps(path, asMap(bv), asMap(ov))
	case bk == KindSeq && ok == KindSeq:
		bs, os := asSeq(bv), asSeq(ov)
		out := make(Seq, 0, len(bs)+len(os))
		out = append(out, cloneSeq(bs)...)
		out = append(out, cloneSeq(os)...)
		return out, nil
	case bk == KindScalar && ok == KindScalar:
		return ov, nil
	default:
		return nil, &ShapeMismatchError{Path: path, Base: bk, Overlay: ok}
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
