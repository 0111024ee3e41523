package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPlainObject(t *testing.T) {
	span, err := ExtractJSON(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, span)
}

func TestExtractJSONSurroundingCommentary(t *testing.T) {
	raw := "Here is the result you asked for:\n{\"people\": []}\nLet me know if you need anything else."
	span, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"people": []}`, span)
}

func TestExtractJSONBracesInsideStrings(t *testing.T) {
	raw := `result: {"title": "Head of {Platform} Engineering", "n": 1} trailing`
	span, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"title": "Head of {Platform} Engineering", "n": 1}`, span)
}

func TestExtractJSONEscapedQuoteInString(t *testing.T) {
	raw := `{"name": "J \"Jay\" Doe}", "x": {}} tail`
	span, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "J \"Jay\" Doe}", "x": {}}`, span)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("I could not complete the task.")
	assert.ErrorIs(t, err, ErrNoJSON)
	assert.EqualError(t, err, "No JSON found")
}

func TestExtractJSONOpenBraceNeverCloses(t *testing.T) {
	_, err := ExtractJSON("partial output {")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONMalformedStillYieldsSpan(t *testing.T) {
	// Structurally broken JSON still yields a span so the parser can report
	// a useful error instead of "No JSON found".
	raw := `agent said {"mutual_connections": [}`
	span, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"mutual_connections": [}`, span)
}

func TestExtractJSONUnbalancedFallsBackToGreedySpan(t *testing.T) {
	// An unterminated string swallows the closing brace; the greedy
	// first-to-last span is returned so parsing can fail loudly.
	raw := `{"name": "unterminated }`
	span, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "unterminated }`, span)
}
