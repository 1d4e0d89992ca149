package enroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsGet(t *testing.T) {
	params := Params{
		{Key: "owner", Value: "softprops"},
		{Key: "repo", Value: "enroute"},
	}

	assert.Equal(t, "softprops", params.Get("owner"))
	assert.Equal(t, "enroute", params.Get("repo"))
	assert.Empty(t, params.Get("missing"))
}

func TestParamsHas(t *testing.T) {
	params := Params{{Key: "id", Value: "42"}}

	assert.True(t, params.Has("id"))
	assert.False(t, params.Has("missing"))
	assert.False(t, Params(nil).Has("id"))
}

func TestParamsClone(t *testing.T) {
	params := Params{{Key: "id", Value: "42"}}
	cloned := params.Clone()

	assert.Equal(t, params, cloned)
	cloned[0].Value = "43"
	assert.Equal(t, "42", params.Get("id"))
}

func TestParamsIterators(t *testing.T) {
	params := Params{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}

	var keys, values []string
	for k, v := range params.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)

	keys = keys[:0]
	for k := range params.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	values = values[:0]
	for v := range params.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []string{"1", "2", "3"}, values)

	// Early break stops the underlying iteration.
	var n int
	for range params.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
