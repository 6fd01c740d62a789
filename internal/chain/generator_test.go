package chain

import (
	"testing"

	"github.com/MKhiriev/go-pack-config/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(c Chain) []string {
	out := make([]string, 0, len(c))
	for _, s := range c {
		out = append(out, s.Kind)
	}
	return out
}

func TestGenerate_StageOrder(t *testing.T) {
	tests := []struct {
		name         string
		preprocessor string
		flags        Flags
		expected     []string
	}{
		{
			name:     "plain css",
			expected: []string{KindStyleInjection, KindStyleResolve},
		},
		{
			name:     "css with prefixing",
			flags:    Flags{Autoprefix: true},
			expected: []string{KindStyleInjection, KindStyleResolve, KindPrefix},
		},
		{
			name:         "less with prefixing",
			preprocessor: "less",
			flags:        Flags{Autoprefix: true},
			expected:     []string{KindStyleInjection, KindStyleResolve, KindPrefix, "less-loader"},
		},
		{
			name:         "stylus without prefixing",
			preprocessor: "stylus",
			expected:     []string{KindStyleInjection, KindStyleResolve, "stylus-loader"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Generate(tt.preprocessor, tt.flags, nil)
			assert.Equal(t, tt.expected, kinds(c))
			assert.False(t, c.Extracted())
		})
	}
}

func TestGenerate_OptionsFollowFlags(t *testing.T) {
	c := Generate("sass", Flags{SourceMap: true, Autoprefix: true, Minimize: true}, nil)
	require.Len(t, c, 4)

	assert.Nil(t, c[0].Options)
	assert.Equal(t, tree.Map{"minimize": true, "sourceMap": true}, c[1].Options)
	assert.Equal(t, tree.Map{"sourceMap": true}, c[2].Options)
	assert.Equal(t, tree.Map{"sourceMap": true}, c[3].Options)
}

func TestGenerate_ExtraOptionsGoToPreprocessorOnly(t *testing.T) {
	extra := tree.Map{"indentedSyntax": true}
	c := Generate("sass", Flags{}, extra)
	require.Len(t, c, 3)

	assert.Equal(t, tree.Map{"indentedSyntax": true, "sourceMap": false}, c[2].Options)
	assert.NotContains(t, c[1].Options, "indentedSyntax")
	// the caller's map is not modified
	assert.Equal(t, tree.Map{"indentedSyntax": true}, extra)
}

func TestGenerate_ExtractionIsAWrapper(t *testing.T) {
	for _, pre := range []string{"", "less", "sass", "stylus"} {
		for _, prefix := range []bool{false, true} {
			flags := Flags{SourceMap: true, Autoprefix: prefix}
			inline := Generate(pre, flags, nil)

			flags.Extract = true
			extracted := Generate(pre, flags, nil)

			require.True(t, extracted.Extracted())
			require.NotNil(t, extracted[0].Fallback)
			assert.Equal(t, inline[0], *extracted[0].Fallback)
			assert.Equal(t, KindStyleInjection, extracted[0].Fallback.Kind)
			assert.Equal(t, inline[1:], extracted.Unwrap())
		}
	}
}

func TestChain_UnwrapInline(t *testing.T) {
	c := Generate("", Flags{}, nil)
	assert.Equal(t, c, c.Unwrap())
}

func TestChain_Tree(t *testing.T) {
	c := Generate("", Flags{Extract: true}, nil)

	assert.Equal(t, tree.Seq{
		tree.Map{
			"loader": KindExtract,
			"options": tree.Map{
				"fallback": KindStyleInjection,
				"use": tree.Seq{
					tree.Map{"loader": KindStyleResolve, "options": tree.Map{"minimize": false, "sourceMap": false}},
				},
			},
		},
	}, c.Tree())
}
