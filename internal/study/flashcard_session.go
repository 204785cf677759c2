package study

import (
	"nexuslearn/internal/model"
)

// CardFace is the side of the current card being shown
type CardFace string

const (
	FaceFront CardFace = "front"
	FaceBack  CardFace = "back"
)

// FlashcardSession tracks position and face while studying a deck.
// Navigation wraps around; the deck is non-empty by construction.
type FlashcardSession struct {
	Deck  *model.FlashcardModel `json:"deck"`
	Index int                   `json:"index"`
	Face  CardFace              `json:"face"`
}

// NewFlashcardSession starts at the front of the first card
func NewFlashcardSession(deck *model.FlashcardModel) *FlashcardSession {
	if deck == nil || len(deck.Cards) == 0 {
		deck = model.DefaultFlashcards()
	}
	return &FlashcardSession{Deck: deck, Face: FaceFront}
}

// Current returns the card the session is on
func (s *FlashcardSession) Current() model.Flashcard {
	return s.Deck.Cards[s.Index]
}

// Flip toggles between front and back of the current card
func (s *FlashcardSession) Flip() {
	if s.Face == FaceFront {
		s.Face = FaceBack
	} else {
		s.Face = FaceFront
	}
}

// Next moves to the following card, wrapping past the end, and always
// shows the front.
func (s *FlashcardSession) Next() {
	s.Index = (s.Index + 1) % len(s.Deck.Cards)
	s.Face = FaceFront
}

// Previous moves to the preceding card, wrapping before the start, and
// always shows the front.
func (s *FlashcardSession) Previous() {
	s.Index = (s.Index - 1 + len(s.Deck.Cards)) % len(s.Deck.Cards)
	s.Face = FaceFront
}

// Total returns the deck size
func (s *FlashcardSession) Total() int {
	return len(s.Deck.Cards)
}
