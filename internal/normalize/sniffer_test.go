package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffPlainJSON(t *testing.T) {
	s := Sniff(`[{"question":"q"}]`)
	assert.True(t, s.IsJSON())
	assert.JSONEq(t, `[{"question":"q"}]`, string(s.JSON))
}

func TestSniffFencedJSON(t *testing.T) {
	raw := "```json\n[1, 2, 3]\n```"
	s := Sniff(raw)
	assert.True(t, s.IsJSON())
	assert.JSONEq(t, `[1,2,3]`, string(s.JSON))
}

func TestSniffFenceWithoutLanguageTag(t *testing.T) {
	s := Sniff("```\n{\"a\": 1}\n```")
	assert.True(t, s.IsJSON())
	assert.JSONEq(t, `{"a":1}`, string(s.JSON))
}

func TestSniffFreeTextReturnsOriginal(t *testing.T) {
	raw := "  Q: What is Go?\nA: A language.  "
	s := Sniff(raw)
	assert.False(t, s.IsJSON())
	assert.Equal(t, raw, s.Text)
}

func TestSniffUnterminatedFenceIsText(t *testing.T) {
	raw := "```json\n[1, 2, 3]"
	s := Sniff(raw)
	assert.False(t, s.IsJSON())
	assert.Equal(t, raw, s.Text)
}

func TestSniffMalformedJSONKeepsRawText(t *testing.T) {
	raw := "```json\n{broken\n```"
	s := Sniff(raw)
	assert.False(t, s.IsJSON())
	// The original string comes back, not the fence-stripped one.
	assert.Equal(t, raw, s.Text)
}

func TestSniffEmptyAndWhitespace(t *testing.T) {
	assert.False(t, Sniff("").IsJSON())
	assert.False(t, Sniff("   \n\t ").IsJSON())
}
