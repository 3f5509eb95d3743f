package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	got, err := ExtractJSON(`Sure! Here is the JSON: {"a":1} Hope that helps.`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("I cannot answer that.")
	assert.ErrorIs(t, err, ErrNoPayload)

	_, err = ExtractJSON("")
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestExtractJSONUnbalancedBraces(t *testing.T) {
	_, err := ExtractJSON("} backwards {")
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestExtractJSONGreedySpansBlocks(t *testing.T) {
	// Documented limitation: two objects come back as one candidate.
	got, err := ExtractJSON(`{"a":1} and {"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1} and {"b":2}`, got)
}

func TestDecodeObjectFencedMarkdown(t *testing.T) {
	m, err := decodeObject("```json\n{\"verified\": true}\n```")
	require.NoError(t, err)
	assert.Equal(t, true, m["verified"])
}

func TestDecodeObjectBadJSON(t *testing.T) {
	_, err := decodeObject(`{"verified": tru`)
	assert.ErrorIs(t, err, ErrNoPayload)

	_, err = decodeObject(`{"verified": tru}`)
	assert.ErrorIs(t, err, ErrBadPayload)
}
