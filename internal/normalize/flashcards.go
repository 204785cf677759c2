package normalize

import (
	"regexp"
	"strings"

	"nexuslearn/internal/model"
)

var (
	frontLineRE   = regexp.MustCompile(`(?i)^[\s*_]*(?:question|q)[\s*_]*[:.][\s*_]*(.*)$`)
	backLineRE    = regexp.MustCompile(`(?i)^[\s*_]*(?:answer|a)[\s*_]*[:.][\s*_]*(.*)$`)
	cardNumberRE  = regexp.MustCompile(`^\s*\d+[.)]\s*`)
)

// parseFlashcardText turns Q:/A: formatted text into a card deck.
// Blocks are blank-line separated. When no block carries Q:/A: markers
// at all, each block's first line (numbering stripped) becomes a front
// and the remaining lines the back.
func parseFlashcardText(text string) *model.FlashcardModel {
	blocks := splitBlankBlocks(text)

	m := &model.FlashcardModel{Cards: []model.Flashcard{}}
	for _, block := range blocks {
		if card, ok := parseMarkedCard(block); ok {
			m.Cards = append(m.Cards, card)
		}
	}

	if len(m.Cards) == 0 {
		for _, block := range blocks {
			if card, ok := parseUnmarkedCard(block); ok {
				m.Cards = append(m.Cards, card)
			}
		}
	}

	if len(m.Cards) == 0 {
		return model.DefaultFlashcards()
	}
	return m
}

// parseMarkedCard reads the primary Q:/A: grammar: everything from the
// question marker up to the answer marker is the front, the rest of
// the block is the back.
func parseMarkedCard(block string) (model.Flashcard, bool) {
	var front, back []string
	inFront, inBack := false, false

	for _, line := range strings.Split(block, "\n") {
		if m := frontLineRE.FindStringSubmatch(line); m != nil && !inBack {
			inFront = true
			if s := strings.TrimSpace(m[1]); s != "" {
				front = append(front, s)
			}
			continue
		}
		if m := backLineRE.FindStringSubmatch(line); m != nil && inFront {
			inFront, inBack = false, true
			if s := strings.TrimSpace(m[1]); s != "" {
				back = append(back, s)
			}
			continue
		}
		switch {
		case inBack:
			back = append(back, line)
		case inFront:
			front = append(front, line)
		}
	}

	card := model.Flashcard{
		Front: strings.TrimSpace(strings.Join(front, "\n")),
		Back:  strings.TrimSpace(strings.Join(back, "\n")),
	}
	if card.Front == "" || card.Back == "" {
		return model.Flashcard{}, false
	}
	return card, true
}

// parseUnmarkedCard reads the fallback grammar: first line is the
// front, the remaining lines the back.
func parseUnmarkedCard(block string) (model.Flashcard, bool) {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return model.Flashcard{}, false
	}
	card := model.Flashcard{
		Front: strings.TrimSpace(cardNumberRE.ReplaceAllString(lines[0], "")),
		Back:  strings.TrimSpace(strings.Join(lines[1:], "\n")),
	}
	if card.Front == "" || card.Back == "" {
		return model.Flashcard{}, false
	}
	return card, true
}
