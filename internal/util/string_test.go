package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
	assert.Equal(t, "", StripCodeFences("   "))
}

func TestSHA256HexStable(t *testing.T) {
	a := SHA256Hex("What is recursion?")
	b := SHA256Hex("What is recursion?")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, SHA256Hex("What is recursion? "))
}
