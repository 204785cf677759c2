package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashcardsQAGrammar(t *testing.T) {
	text := "Q: What is a goroutine?\nA: A lightweight thread managed by the Go runtime.\n\nQuestion: What does gofmt do?\nAnswer: Formats Go source code."
	m := parseFlashcardText(text)
	require.Len(t, m.Cards, 2)
	assert.Equal(t, "What is a goroutine?", m.Cards[0].Front)
	assert.Equal(t, "A lightweight thread managed by the Go runtime.", m.Cards[0].Back)
	assert.Equal(t, "What does gofmt do?", m.Cards[1].Front)
}

func TestFlashcardsMultiLineFrontAndBack(t *testing.T) {
	text := "Q: Define polymorphism\nin object-oriented design.\nA: One interface,\nmany implementations."
	m := parseFlashcardText(text)
	require.Len(t, m.Cards, 1)
	assert.Equal(t, "Define polymorphism\nin object-oriented design.", m.Cards[0].Front)
	assert.Equal(t, "One interface,\nmany implementations.", m.Cards[0].Back)
}

func TestFlashcardsNumberedFallback(t *testing.T) {
	// No Q:/A: markers anywhere: first line becomes the front.
	text := "1. Photosynthesis\nThe process plants use to convert light into energy.\n\n2. Mitosis\nCell division producing two identical daughter cells."
	m := parseFlashcardText(text)
	require.Len(t, m.Cards, 2)
	assert.Equal(t, "Photosynthesis", m.Cards[0].Front)
	assert.Equal(t, "The process plants use to convert light into energy.", m.Cards[0].Back)
	assert.Equal(t, "Mitosis", m.Cards[1].Front)
}

func TestFlashcardsFallbackOnlyWhenNoMarkedCards(t *testing.T) {
	// One marked block suppresses the fallback for the unmarked one.
	text := "Q: Front\nA: Back\n\nJust a line\nand another line"
	m := parseFlashcardText(text)
	require.Len(t, m.Cards, 1)
	assert.Equal(t, "Front", m.Cards[0].Front)
}

func TestFlashcardsDropsIncompleteBlocks(t *testing.T) {
	text := "Q: Front with no answer\n\nQ: Complete\nA: Yes"
	m := parseFlashcardText(text)
	require.Len(t, m.Cards, 1)
	assert.Equal(t, "Complete", m.Cards[0].Front)
}

func TestFlashcardsEmptyInputYieldsDefault(t *testing.T) {
	m := parseFlashcardText("\n  \n")
	require.Len(t, m.Cards, 1)
	assert.NotEmpty(t, m.Cards[0].Front)
	assert.NotEmpty(t, m.Cards[0].Back)
}
