package chain

import "github.com/MKhiriev/go-pack-config/internal/tree"

// Stage kinds emitted into processing chains.
const (
	KindStyleInjection = "vue-style-loader"
	KindStyleResolve   = "css-loader"
	KindPrefix         = "postcss-loader"
	KindExtract        = "extract-text-webpack-plugin"
)

// Stage is one unit of a processing chain. Later stages consume the output of
// earlier ones.
//
// An extraction stage carries the fallback used when nothing is extracted and
// the inner chain whose output is redirected into a standalone file.
type Stage struct {
	Kind     string
	Options  tree.Map
	Fallback *Stage
	Use      Chain
}

// Chain is an ordered sequence of stages for one asset family.
type Chain []Stage

// Extracted reports whether the chain is wrapped in an extraction stage.
func (c Chain) Extracted() bool {
	return len(c) == 1 && c[0].Kind == KindExtract
}

// Unwrap returns the inner chain of an extracted chain, or c itself.
func (c Chain) Unwrap() Chain {
	if c.Extracted() {
		return c[0].Use
	}
	return c
}

// Tree renders the chain as a sequence of loader descriptors.
func (c Chain) Tree() tree.Seq {
	out := make(tree.Seq, 0, len(c))
	for _, s := range c {
		out = append(out, s.Tree())
	}
	return out
}

// Tree renders the stage as a loader descriptor.
func (s Stage) Tree() tree.Map {
	node := tree.Map{"loader": s.Kind}
	if s.Kind == KindExtract {
		options := tree.Map{"use": s.Use.Tree()}
		if s.Fallback != nil {
			options["fallback"] = s.Fallback.Kind
		}
		node["options"] = options
		return node
	}
	if s.Options != nil {
		node["options"] = tree.CloneMap(s.Options)
	}
	return node
}
