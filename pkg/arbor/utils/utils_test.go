package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFilter(t *testing.T) {
	f := NewStringFilterFromSlice(nil)
	assert.True(t, f.Match("anything"))
	f.SetStrict()
	assert.False(t, f.Match("anything"))

	f = NewStringFilterFromSlice([]string{"a", "b", "z"})
	assert.True(t, f.Match("a"))
	assert.False(t, f.Match("c"))
	assert.Equal(t, []string{"b", "z"}, f.Unmatched([]string{"a", "c"}))
}

func TestPathFilter(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		recursive bool
		path      string
		match     bool
	}{
		{name: "empty matches all", patterns: nil, path: "a/b", match: true},
		{name: "exact", patterns: []string{"a/b"}, path: "a/b", match: true},
		{name: "exact is not recursive", patterns: []string{"a/b"}, path: "a/b/c", match: false},
		{name: "recursive prefix", patterns: []string{"a/b"}, recursive: true, path: "a/b/c", match: true},
		{name: "recursive is segment aware", patterns: []string{"a/b"}, recursive: true, path: "a/bc", match: false},
		{name: "star", patterns: []string{"math/*"}, path: "math/arith", match: true},
		{name: "star is one segment", patterns: []string{"math/*"}, path: "math/arith/add", match: false},
		{name: "doublestar", patterns: []string{"math/**"}, path: "math/arith/add", match: true},
		{name: "recursive glob", patterns: []string{"*/arith"}, recursive: true, path: "math/arith/add", match: true},
		{name: "slashes trimmed", patterns: []string{"/math/"}, path: "math", match: true},
		{name: "no match", patterns: []string{"strings", "io/*"}, recursive: true, path: "math", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewPathFilterFromSlice(tt.patterns, tt.recursive)
			require.NoError(t, err)
			assert.Equal(t, tt.match, f.Match(tt.path))
		})
	}
}

func TestPathFilterRejectsBadPattern(t *testing.T) {
	_, err := NewPathFilterFromSlice([]string{"math/[a"}, false)
	assert.Error(t, err)
}

func TestPathFilterStrict(t *testing.T) {
	f, err := NewPathFilterFromSlice(nil, true)
	require.NoError(t, err)
	f.SetStrict()
	assert.False(t, f.Match("a"))
}

func TestPathTree(t *testing.T) {
	tree := NewPathTree()
	tree.Add("math/arith")
	tree.Add("math/trig")
	tree.Add("/strings/")

	assert.True(t, tree.Contains("math"))
	assert.True(t, tree.Contains("math/trig"))
	assert.False(t, tree.Contains("math/trig/sin"))
	assert.Equal(t, []string{"math", "math/arith", "math/trig", "strings"}, tree.Paths())

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{"math":{"arith":{},"trig":{}},"strings":{}}`, string(data))
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "red text", StripANSI("\x1b[31mred\x1b[0m text"))
}
