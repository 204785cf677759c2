package normalize

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"nexuslearn/internal/model"
)

// Normalizer turns raw AI output into canonical artifact models. Every
// call succeeds: JSON is tried first, then the kind's text grammar,
// then the kind's default model. Results are memoized on (kind, raw)
// so repeated renders of the same content never re-parse.
type Normalizer struct {
	mu   sync.Mutex
	memo map[memoKey]interface{}
}

// memoLimit caps the memo map; inputs are session-scoped and small,
// but server uptime is not.
const memoLimit = 256

type memoKey struct {
	kind model.ArtifactKind
	raw  string
}

// NewNormalizer creates a new content normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{memo: make(map[memoKey]interface{})}
}

// MindMap normalizes raw content into a mind map model
func (n *Normalizer) MindMap(raw string) *model.MindMapModel {
	return n.memoized(model.ArtifactMindMap, raw, func() interface{} {
		return normalizeMindMap(raw)
	}).(*model.MindMapModel)
}

// Quiz normalizes raw content into a quiz model
func (n *Normalizer) Quiz(raw string) *model.QuizModel {
	return n.memoized(model.ArtifactQuiz, raw, func() interface{} {
		return normalizeQuiz(raw)
	}).(*model.QuizModel)
}

// Flashcards normalizes raw content into a flashcard deck
func (n *Normalizer) Flashcards(raw string) *model.FlashcardModel {
	return n.memoized(model.ArtifactFlashcards, raw, func() interface{} {
		return normalizeFlashcards(raw)
	}).(*model.FlashcardModel)
}

// Timeline normalizes raw content into a timeline model
func (n *Normalizer) Timeline(raw string) *model.TimelineModel {
	return n.memoized(model.ArtifactTimeline, raw, func() interface{} {
		return normalizeTimeline(raw)
	}).(*model.TimelineModel)
}

// Normalize dispatches on a dynamic artifact kind. Unknown kinds get a
// mind map parse, matching the catch-all note rendering path.
func (n *Normalizer) Normalize(kind model.ArtifactKind, raw string) interface{} {
	switch kind {
	case model.ArtifactQuiz:
		return n.Quiz(raw)
	case model.ArtifactFlashcards:
		return n.Flashcards(raw)
	case model.ArtifactTimeline:
		return n.Timeline(raw)
	default:
		return n.MindMap(raw)
	}
}

// memoized returns the cached model for (kind, raw) or computes and
// stores it. Cached models are shared; callers must not mutate them.
func (n *Normalizer) memoized(kind model.ArtifactKind, raw string, compute func() interface{}) interface{} {
	key := memoKey{kind: kind, raw: raw}

	n.mu.Lock()
	if v, ok := n.memo[key]; ok {
		n.mu.Unlock()
		return v
	}
	n.mu.Unlock()

	v := compute()

	n.mu.Lock()
	if len(n.memo) >= memoLimit {
		n.memo = make(map[memoKey]interface{})
	}
	n.memo[key] = v
	n.mu.Unlock()
	return v
}

func normalizeMindMap(raw string) *model.MindMapModel {
	s := Sniff(raw)
	if s.IsJSON() {
		if m, ok := mindMapFromJSON(s.JSON); ok {
			return m
		}
		return parseOutlineText(string(s.JSON))
	}
	return parseOutlineText(s.Text)
}

func normalizeQuiz(raw string) *model.QuizModel {
	s := Sniff(raw)
	if s.IsJSON() {
		if m, ok := quizFromJSON(s.JSON); ok {
			return m
		}
		return parseQuizText(string(s.JSON))
	}
	return parseQuizText(s.Text)
}

func normalizeFlashcards(raw string) *model.FlashcardModel {
	s := Sniff(raw)
	if s.IsJSON() {
		if m, ok := flashcardsFromJSON(s.JSON); ok {
			return m
		}
		return parseFlashcardText(string(s.JSON))
	}
	return parseFlashcardText(s.Text)
}

func normalizeTimeline(raw string) *model.TimelineModel {
	s := Sniff(raw)
	if s.IsJSON() {
		if m, ok := timelineFromJSON(s.JSON); ok {
			return m
		}
		return parseTimelineText(string(s.JSON))
	}
	return parseTimelineText(s.Text)
}

// Recognized JSON shapes, one decode struct per kind. Anything that
// fails to decode, or decodes to nothing usable, falls through to the
// text grammar rather than being coerced.

type quizQuestionJSON struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswer      *int     `json:"correctAnswer"`
	CorrectAnswerSnake *int     `json:"correct_answer"`
	Explanation        string   `json:"explanation"`
	Topic              string   `json:"topic"`
	Difficulty         string   `json:"difficulty"`
}

func quizFromJSON(raw json.RawMessage) (*model.QuizModel, bool) {
	var items []quizQuestionJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	m := &model.QuizModel{Questions: []model.QuizQuestion{}}
	for i, item := range items {
		if strings.TrimSpace(item.Question) == "" || len(item.Options) < 2 {
			continue
		}
		q := model.QuizQuestion{
			Question:    strings.TrimSpace(item.Question),
			Options:     item.Options,
			Explanation: item.Explanation,
			Topic:       item.Topic,
			Difficulty:  item.Difficulty,
		}
		// camelCase wins when both spellings are present
		switch {
		case item.CorrectAnswer != nil:
			q.CorrectAnswer = *item.CorrectAnswer
		case item.CorrectAnswerSnake != nil:
			q.CorrectAnswer = *item.CorrectAnswerSnake
		default:
			log.Printf("[normalize] quiz question %d has no answer field, defaulting to option 0", i)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			log.Printf("[normalize] quiz question %d answer index %d out of range, defaulting to option 0", i, q.CorrectAnswer)
			q.CorrectAnswer = 0
		}
		m.Questions = append(m.Questions, q)
	}
	if len(m.Questions) == 0 {
		return nil, false
	}
	return m, true
}

type mindMapJSON struct {
	Nodes []model.OutlineNode `json:"nodes"`
	Edges []model.OutlineEdge `json:"edges"`
}

func mindMapFromJSON(raw json.RawMessage) (*model.MindMapModel, bool) {
	var graph mindMapJSON
	if err := json.Unmarshal(raw, &graph); err == nil && len(graph.Nodes) > 0 {
		if graph.Edges == nil {
			graph.Edges = []model.OutlineEdge{}
		}
		return &model.MindMapModel{Nodes: graph.Nodes, Edges: graph.Edges}, true
	}

	// Arrays of strings are outline lines
	var lines []string
	if err := json.Unmarshal(raw, &lines); err == nil && len(lines) > 0 {
		return parseOutlineText(strings.Join(lines, "\n")), true
	}

	return nil, false
}

type flashcardJSON struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

func flashcardsFromJSON(raw json.RawMessage) (*model.FlashcardModel, bool) {
	var items []flashcardJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	m := &model.FlashcardModel{Cards: []model.Flashcard{}}
	for _, item := range items {
		front := strings.TrimSpace(item.Front)
		back := strings.TrimSpace(item.Back)
		if front == "" || back == "" {
			continue
		}
		m.Cards = append(m.Cards, model.Flashcard{Front: front, Back: back})
	}
	if len(m.Cards) == 0 {
		return nil, false
	}
	return m, true
}

type timelineEventJSON struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func timelineFromJSON(raw json.RawMessage) (*model.TimelineModel, bool) {
	var items []timelineEventJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	m := &model.TimelineModel{Events: []model.TimelineEvent{}}
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		date := strings.TrimSpace(item.Date)
		if date == "" {
			date = "Unknown"
		}
		m.Events = append(m.Events, model.TimelineEvent{
			Date:        date,
			Title:       title,
			Description: strings.TrimSpace(item.Description),
		})
	}
	if len(m.Events) == 0 {
		return nil, false
	}
	return m, true
}
