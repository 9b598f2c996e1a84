package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_UnionsFields(t *testing.T) {
	s1 := extractJSON(t, `{"a":1,"shared":"x"}`)
	s2 := extractJSON(t, `{"b":2.5,"shared":9}`)

	merged, err := Merge("merged", s1, s2)
	require.NoError(t, err)

	a, ok := merged.Field("a")
	require.True(t, ok)
	assert.True(t, a.Optional, "a only appears in the first schema")

	b, ok := merged.Field("b")
	require.True(t, ok)
	assert.True(t, b.Optional)

	shared, ok := merged.Field("shared")
	require.True(t, ok)
	assert.False(t, shared.Optional)
	assert.Equal(t, 2, shared.Count)
	assert.Equal(t, []DataType{TypeString, TypeInteger}, shared.Types)

	assert.Equal(t, s1.TotalNodes()+s2.TotalNodes(), merged.TotalNodes())
}

func TestMerge_SingleSchema(t *testing.T) {
	s := extractJSON(t, `{"a":1}`)
	merged, err := Merge("m", s)
	require.NoError(t, err)
	assert.Equal(t, s.NumFields(), merged.NumFields())
}

func TestMerge_KindMismatch(t *testing.T) {
	js := extractJSON(t, `{"a":1}`)
	xs, err := ExtractXML("x", parseXML(t, `<root><a>1</a></root>`))
	require.NoError(t, err)

	_, err = Merge("m", js, xs)
	require.Error(t, err)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	s1 := extractJSON(t, `{"shared":"x"}`)
	s2 := extractJSON(t, `{"shared":9}`)

	_, err := Merge("m", s1, s2)
	require.NoError(t, err)

	shared, ok := s1.Field("shared")
	require.True(t, ok)
	assert.Equal(t, []DataType{TypeString}, shared.Types)
	assert.Equal(t, 1, shared.Count)
}

func TestMerge_Empty(t *testing.T) {
	_, err := Merge("m")
	require.Error(t, err)
}
