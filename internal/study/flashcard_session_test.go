package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuslearn/internal/model"
)

func threeCardDeck() *model.FlashcardModel {
	return &model.FlashcardModel{Cards: []model.Flashcard{
		{Front: "f1", Back: "b1"},
		{Front: "f2", Back: "b2"},
		{Front: "f3", Back: "b3"},
	}}
}

func TestFlashcardSessionFlip(t *testing.T) {
	s := NewFlashcardSession(threeCardDeck())
	require.Equal(t, FaceFront, s.Face)

	s.Flip()
	assert.Equal(t, FaceBack, s.Face)
	s.Flip()
	assert.Equal(t, FaceFront, s.Face)
}

func TestFlashcardSessionCircularNavigation(t *testing.T) {
	s := NewFlashcardSession(threeCardDeck())

	s.Next()
	assert.Equal(t, "f2", s.Current().Front)
	s.Next()
	s.Next() // wraps
	assert.Equal(t, "f1", s.Current().Front)

	s.Previous() // wraps backwards
	assert.Equal(t, "f3", s.Current().Front)
}

func TestFlashcardSessionNavigationResetsFace(t *testing.T) {
	s := NewFlashcardSession(threeCardDeck())
	s.Flip()
	s.Next()
	assert.Equal(t, FaceFront, s.Face)

	s.Flip()
	s.Previous()
	assert.Equal(t, FaceFront, s.Face)
}

func TestFlashcardSessionEmptyDeckGetsDefault(t *testing.T) {
	s := NewFlashcardSession(nil)
	require.Equal(t, 1, s.Total())
	assert.NotEmpty(t, s.Current().Front)

	// Circular navigation on a single card stays put.
	s.Next()
	assert.Equal(t, 0, s.Index)
}
