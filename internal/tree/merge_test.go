package tree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Merge ─────────────────────────────────────────────────────────────────────

func TestMerge_ScalarOverlayWins(t *testing.T) {
	out, err := Merge(Map{"a": 1}, Map{"a": 2})
	require.NoError(t, err)
	assert.Equal(t, 2, out["a"])
}

func TestMerge_SequencesConcatenate(t *testing.T) {
	out, err := Merge(Map{"a": Seq{1}}, Map{"a": Seq{2}})
	require.NoError(t, err)
	assert.Equal(t, Seq{1, 2}, out["a"])
}

func TestMerge_NestedMappingsRecurse(t *testing.T) {
	base := Map{
		"output": Map{"path": "/dist", "filename": "[name].js"},
		"module": Map{"rules": Seq{"vue", "js"}},
	}
	overlay := Map{
		"output":    Map{"filename": "js/[name].[chunkhash].js"},
		"module":    Map{"rules": Seq{"css"}},
		"devServer": Map{"port": 8080},
	}

	out, err := Merge(base, overlay)
	require.NoError(t, err)

	assert.Equal(t, Map{"path": "/dist", "filename": "js/[name].[chunkhash].js"}, out["output"])
	assert.Equal(t, Map{"rules": Seq{"vue", "js", "css"}}, out["module"])
	assert.Equal(t, Map{"port": 8080}, out["devServer"])
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := Map{
		"plugins": Seq{Map{"name": "Define"}},
		"output":  Map{"path": "/dist"},
	}
	overlay := Map{
		"plugins": Seq{Map{"name": "Html"}},
		"output":  Map{"path": "/out"},
		"extra":   Map{"nested": Seq{1}},
	}
	baseSnapshot := CloneMap(base)
	overlaySnapshot := CloneMap(overlay)

	out, err := Merge(base, overlay)
	require.NoError(t, err)

	// mutate the result everywhere and make sure inputs stay untouched
	out["output"].(Map)["path"] = "changed"
	out["plugins"].(Seq)[0].(Map)["name"] = "changed"
	out["extra"].(Map)["nested"].(Seq)[0] = 42

	assert.Equal(t, baseSnapshot, base)
	assert.Equal(t, overlaySnapshot, overlay)
}

func TestMerge_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		base    Map
		overlay Map
		path    string
	}{
		{
			name:    "sequence vs scalar",
			base:    Map{"plugins": Seq{1}},
			overlay: Map{"plugins": "x"},
			path:    "plugins",
		},
		{
			name:    "scalar vs mapping",
			base:    Map{"output": "dist"},
			overlay: Map{"output": Map{"path": "/dist"}},
			path:    "output",
		},
		{
			name:    "nested mapping vs sequence",
			base:    Map{"module": Map{"rules": Map{}}},
			overlay: Map{"module": Map{"rules": Seq{}}},
			path:    "module.rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Merge(tt.base, tt.overlay)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrShapeMismatch)

			var mismatch *ShapeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.path, mismatch.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestMerge_NilCountsAsAbsent(t *testing.T) {
	out, err := Merge(Map{"devtool": nil, "x": Seq{1}}, Map{"devtool": Map{"a": 1}, "x": nil})
	require.NoError(t, err)
	assert.Equal(t, Map{"a": 1}, out["devtool"])
	assert.Nil(t, out["x"])
}

func TestMerge_ScalarsOfDifferentTypes(t *testing.T) {
	out, err := Merge(Map{"devtool": "#source-map"}, Map{"devtool": false})
	require.NoError(t, err)
	assert.Equal(t, false, out["devtool"])
}

func TestMerge_AcceptsPlainGoShapes(t *testing.T) {
	out, err := Merge(
		Map{"a": map[string]any{"b": []any{1}}},
		Map{"a": Map{"b": Seq{2}}},
	)
	require.NoError(t, err)
	assert.Equal(t, Map{"b": Seq{1, 2}}, out["a"])
}

func TestMergeAll(t *testing.T) {
	out, err := MergeAll(Map{"a": Seq{1}}, Map{"a": Seq{2}}, Map{"a": Seq{3}, "b": true})
	require.NoError(t, err)
	assert.Equal(t, Map{"a": Seq{1, 2, 3}, "b": true}, out)
}

// ── Get / Set ─────────────────────────────────────────────────────────────────

func TestSet_CreatesIntermediateMaps(t *testing.T) {
	m := Map{}
	require.NoError(t, Set(m, 3000, "devServer", "port"))

	v, ok := Get(m, "devServer", "port")
	require.True(t, ok)
	assert.Equal(t, 3000, v)
}

func TestSet_FailsOnScalarIntermediate(t *testing.T) {
	m := Map{"devServer": "off"}
	err := Set(m, 3000, "devServer", "port")
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSet_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, Set(Map{}, 1), ErrEmptyPath)
}

func TestGet_Missing(t *testing.T) {
	_, ok := Get(Map{"a": Map{}}, "a", "b")
	assert.False(t, ok)

	_, ok = Get(Map{"a": 1}, "a", "b")
	assert.False(t, ok)
}

// ── Pattern ───────────────────────────────────────────────────────────────────

func TestPattern(t *testing.T) {
	p := NewPattern(`\.css$`)
	assert.True(t, p.MatchString("main.css"))
	assert.False(t, p.MatchString("main.scss.map"))

	data, err := json.Marshal(Map{"test": p})
	require.NoError(t, err)
	assert.JSONEq(t, `{"test":"/\\.css$/"}`, string(data))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindMap, KindOf(Map{}))
	assert.Equal(t, KindSeq, KindOf(Seq{}))
	assert.Equal(t, KindScalar, KindOf("x"))
	assert.Equal(t, KindScalar, KindOf(NewPattern("x")))
	assert.Equal(t, "sequence", KindSeq.String())
}
