package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSetAdd(t *testing.T) {
	var s StringSet
	assert.True(t, s.Add("wpa2"))
	assert.False(t, s.Add("wpa2"), "second insert reports already-present")
	assert.True(t, s.Has("wpa2"))
	assert.False(t, s.Has("wep"))
	assert.Equal(t, 1, s.Len())
}

func TestStringSetEqual(t *testing.T) {
	a := NewStringSet("wpa", "wpa2")
	b := NewStringSet("wpa2", "wpa")
	assert.True(t, a.Equal(b))
	b.Add("wep")
	assert.False(t, a.Equal(b))
}

func TestStringSetJSONRoundTrip(t *testing.T) {
	s := NewStringSet("wep", "wpa3", "wpa")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `["wep","wpa","wpa3"]`, string(data), "members serialize sorted")

	var out StringSet
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, s.Equal(out))
}
