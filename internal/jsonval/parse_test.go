package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines_SkipsBlankLines(t *testing.T) {
	values, err := ParseLines("{\"a\":1}\n\n{\"b\":2}\n")
	require.NoError(t, err)
	require.Len(t, values, 2)

	a, ok := values[0].Obj.Int("a")
	require.True(t, ok)
	assert.Equal(t, 1, a)

	b, ok := values[1].Obj.Int("b")
	require.True(t, ok)
	assert.Equal(t, 2, b)
}

func TestParseLines_MalformedLineFailsWhole(t *testing.T) {
	values, err := ParseLines("{\"a\":1}\nnot json\n{\"b\":2}\n")
	assert.Error(t, err)
	assert.Nil(t, values)
}

func TestParseLines_Empty(t *testing.T) {
	values, err := ParseLines("   \n \n")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := Parse(`{"z": 1, "a": 2, "m": 3}`)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)

	keys := make([]string, 0, len(v.Obj))
	for _, m := range v.Obj {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestParse_Scalars(t *testing.T) {
	v, err := Parse(`null`)
	require.NoError(t, err)
	assert.Equal(t, KindNull, v.Kind)

	v, err = Parse(`true`)
	require.NoError(t, err)
	assert.Equal(t, KindBool, v.Kind)
	assert.True(t, v.Bool)

	v, err = Parse(`"hi"`)
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "hi", v.Str)
}

func TestParse_TrailingContent(t *testing.T) {
	_, err := Parse(`{"a":1} {"b":2}`)
	assert.Error(t, err)
}
