package chain

import (
	"testing"

	"github.com/MKhiriev/go-pack-config/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Extensions(t *testing.T) {
	table, err := Build(Flags{})
	require.NoError(t, err)

	assert.Equal(t, []string{"css", "postcss", "less", "sass", "scss", "stylus", "styl"}, table.Extensions())
}

// TestAsRules_OneRulePerExtension verifies that every canonical extension is
// matched by exactly one rule.
func TestAsRules_OneRulePerExtension(t *testing.T) {
	table, err := Build(Flags{Autoprefix: true})
	require.NoError(t, err)

	rules := table.AsRules()
	require.Len(t, rules, len(table.Extensions()))

	for _, ext := range table.Extensions() {
		t.Run(ext, func(t *testing.T) {
			matches := 0
			for _, r := range rules {
				if r.Test.MatchString("src/App." + ext) {
					matches++
					assert.Equal(t, ext, r.Extension)
				}
			}
			assert.Equal(t, 1, matches)
		})
	}
}

func TestAsRules_FamilyChains(t *testing.T) {
	table, err := Build(Flags{})
	require.NoError(t, err)

	tests := []struct {
		file   string
		last   string
		indent bool
	}{
		{"a.css", KindStyleResolve, false},
		{"a.postcss", KindStyleResolve, false},
		{"a.less", "less-loader", false},
		{"a.sass", "sass-loader", true},
		{"a.scss", "sass-loader", false},
		{"a.stylus", "stylus-loader", false},
		{"a.styl", "stylus-loader", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			rule, ok := table.Match(tt.file)
			require.True(t, ok)

			last := rule.Use[len(rule.Use)-1]
			assert.Equal(t, tt.last, last.Kind)
			_, hasIndent := last.Options["indentedSyntax"]
			assert.Equal(t, tt.indent, hasIndent)
		})
	}
}

func TestMatch_NoRule(t *testing.T) {
	table, err := Build(Flags{})
	require.NoError(t, err)

	_, ok := table.Match("main.js")
	assert.False(t, ok)
	_, ok = table.Match("theme.css.map")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	table, err := Build(Flags{Extract: true})
	require.NoError(t, err)

	c, err := table.Lookup("scss")
	require.NoError(t, err)
	assert.True(t, c.Extracted())

	_, err = table.Lookup("sss")
	assert.ErrorIs(t, err, ErrUnknownAssetFamily)
}

func TestBuild_RejectsUnknownPreprocessor(t *testing.T) {
	_, err := build([]Family{{Name: "postcss-next", Preprocessor: "cssnext", Extensions: []string{"pcss"}}}, Flags{})
	assert.ErrorIs(t, err, ErrUnknownAssetFamily)
}

func TestBuild_RejectsDuplicateExtension(t *testing.T) {
	_, err := build([]Family{
		{Name: "a", Extensions: []string{"css"}},
		{Name: "b", Extensions: []string{"css"}},
	}, Flags{})
	assert.ErrorIs(t, err, ErrDuplicateExtension)
}

func TestRulesTree(t *testing.T) {
	table, err := Build(Flags{})
	require.NoError(t, err)

	rules := table.RulesTree()
	require.Len(t, rules, 7)

	first := rules[0].(tree.Map)
	assert.Equal(t, `\.css$`, first["test"].(tree.Pattern).String())
	assert.Len(t, first["use"], 2)

	loaders := table.LoadersTree()
	assert.Len(t, loaders, 7)
	assert.Contains(t, loaders, "styl")
}
