package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL_AbsolutePassthrough(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a.json", ResolveURL("https://other.example/", "https://cdn.example/a.json"))
	assert.Equal(t, "http://cdn.example/a.json", ResolveURL("", "http://cdn.example/a.json"))
	assert.Equal(t, "https://cdn.example/a.json", ResolveURL("https://other.example/", "  https://cdn.example/a.json  "))
}

func TestResolveURL_Empty(t *testing.T) {
	assert.Equal(t, "", ResolveURL("https://cdn.example/", ""))
	assert.Equal(t, "", ResolveURL("https://cdn.example/", "   "))
}

func TestResolveURL_Relative(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a.json", ResolveURL("https://cdn.example/", "a.json"))
	assert.Equal(t, "https://cdn.example/a.json", ResolveURL("https://cdn.example", "a.json"))
	assert.Equal(t, "https://cdn.example/a.json", ResolveURL("https://cdn.example/", "/a.json"))
	assert.Equal(t, "https://cdn.example/sub/a.json", ResolveURL("https://cdn.example/sub/", "a.json"))
}

func TestResolveURL_DotSegments(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a.json", ResolveURL("https://cdn.example/sub/", "../a.json"))
	assert.Equal(t, "https://cdn.example/sub/a.json", ResolveURL("https://cdn.example/sub/", "./a.json"))
}
