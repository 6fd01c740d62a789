// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package chain

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pack-config/internal/tree"
)

// Family is a group of file extensions sharing one preprocessing pipeline.
type Family struct {
	Name         string
	Preprocessor string
	Extensions   []string
	Extra        tree.Map
}

// preprocessors lists the preprocessor ids a family may reference.
var preprocessors = map[string]struct{}{
	"less":   {},
	"sass":   {},
	"stylus": {},
}

// Families returns the recognised asset families in table order.
func Families() []Family {
	return []Family{
		{Name: "css", Extensions: []string{"css", "postcss"}},
		{Name: "less", Preprocessor: "less", Extensions: []string{"less"}},
		{Name: "sass", Preprocessor: "sass", Extensions: []string{"sass"}, Extra: tree.Map{"indentedSyntax": true}},
		{Name: "scss", Preprocessor: "sass", Extensions: []string{"scss"}},
		{Name: "stylus", Preprocessor: "stylus", Extensions: []string{"stylus", "styl"}},
	}
}

// Rule applies a chain to every file whose name matches Test.
type Rule struct {
	Extension string
	Test      tree.Pattern
	Use       Chain
}

// Table maps each recognised extension to its processing chain. Its key set
// is fixed and read-only once built.
type Table struct {
	chains map[string]Chain
	order  []string
}

// Build generates the chain of every recognised family with flags.
func Build(flags Flags) (*Table, error) {
	return build(Families(), flags)
}

func build(families []Family, flags Flags) (*Table, error) {
	t := &Table{chains: make(map[string]Chain)}

	for _, f := range families {
		if f.Preprocessor != "" {
			if _, ok := preprocessors[f.Preprocessor]; !ok {
				return nil, fmt.Errorf("%w: family %q uses preprocessor %q", ErrUnknownAssetFamily, f.Name, f.Preprocessor)
			}
		}

		for _, ext := range f.Extensions {
			if _, dup := t.chains[ext]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateExtension, ext)
			}
			t.chains[ext] = Generate(f.Preprocessor, flags, f.Extra)
			t.order = append(t.order, ext)
		}
	}

	return t, nil
}

// Lookup returns the chain for extension (without the leading dot).
func (t *Table) Lookup(extension string) (Chain, error) {
	c, ok := t.chains[extension]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssetFamily, extension)
	}
	return c, nil
}

// Extensions returns the table keys in table order.
func (t *Table) Extensions() []string {
	return slices.Clone(t.order)
}

// AsRules flattens the table into one rule per extension.
func (t *Table) AsRules() []Rule {
	rules := make([]Rule, 0, len(t.order))
	for _, ext := range t.order {
		rules = append(rules, Rule{
			Extension: ext,
			Test:      tree.NewPattern(`\.` + ext + `$`),
			Use:       t.chains[ext],
		})
	}
	return rules
}

// Match returns the first rule whose pattern matches filename.
func (t *Table) Match(filename string) (Rule, bool) {
	for _, r := range t.AsRules() {
		if r.Test.MatchString(filename) {
			return r, true
		}
	}
	return Rule{}, false
}

// RulesTree renders AsRules as module rules.
func (t *Table) RulesTree() tree.Seq {
	rules := t.AsRules()
	out := make(tree.Seq, 0, len(rules))
	for _, r := range rules {
		out = append(out, tree.Map{"test": r.Test, "use": r.Use.Tree()})
	}
	return out
}

// LoadersTree renders the table keyed by extension, the shape component
// loaders expect.
func (t *Table) LoadersTree() tree.Map {
	out := make(tree.Map, len(t.order))
	for _, ext := range t.order {
		out[ext] = t.chains[ext].Tree()
	}
	return out
}
