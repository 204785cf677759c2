package service

import (
	"context"
	"errors"

	"nexuslearn/internal/cache"
	"nexuslearn/internal/model"
	"nexuslearn/internal/normalize"
	"nexuslearn/internal/study"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("study session not found or expired")
	ErrWrongNoteType   = errors.New("note does not contain this kind of study material")
	ErrUnknownAction   = errors.New("unknown session action")
)

// StudyService runs interactive study sessions over AI notes. Session
// state lives in the cache so a run survives reconnects and server
// restarts within the TTL.
type StudyService struct {
	notes      *NoteService
	studyCache cache.StudyCache
	normalizer *normalize.Normalizer
}

// NewStudyService creates a new study service
func NewStudyService(notes *NoteService, studyCache cache.StudyCache) *StudyService {
	return &StudyService{
		notes:      notes,
		studyCache: studyCache,
		normalizer: normalize.NewNormalizer(),
	}
}

// QuizSessionState is the client view of a quiz run. The correct
// answer is only present once the current question is revealed.
type QuizSessionState struct {
	SessionID     string          `json:"sessionId"`
	Index         int             `json:"index"`
	Total         int             `json:"total"`
	Phase         study.QuizPhase `json:"phase"`
	Score         int             `json:"score"`
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	Selected      int             `json:"selected"`
	CorrectAnswer int             `json:"correctAnswer"`
	Explanation   string          `json:"explanation,omitempty"`
}

// FlashcardSessionState is the client view of a flashcard run
type FlashcardSessionState struct {
	SessionID string         `json:"sessionId"`
	Index     int            `json:"index"`
	Total     int            `json:"total"`
	Face      study.CardFace `json:"face"`
	Text      string         `json:"text"`
}

// StartQuizSession normalizes a quiz note and begins a fresh run
func (s *StudyService) StartQuizSession(ctx context.Context, userID, noteID string) (*QuizSessionState, error) {
	rendered, err := s.notes.Get(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if rendered.NoteType != model.NoteTypeQuiz {
		return nil, ErrWrongNoteType
	}

	session := study.NewQuizSession(s.normalizer.Quiz(rendered.Content))
	sessionID := uuid.New().String()
	if err := s.studyCache.SetQuizSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}
	return quizState(sessionID, session), nil
}

// QuizAction applies one step to a quiz run. Valid actions are
// "select" (with an option index), "submit", "advance", and "restart".
func (s *StudyService) QuizAction(ctx context.Context, userID, sessionID, action string, option int) (*QuizSessionState, error) {
	session, err := s.studyCache.GetQuizSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	switch action {
	case "select":
		session.SelectOption(option)
	case "submit":
		session.Submit()
	case "advance":
		session.Advance()
	case "restart":
		session.Restart()
	default:
		return nil, ErrUnknownAction
	}

	if err := s.studyCache.SetQuizSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}
	return quizState(sessionID, session), nil
}

// EndQuizSession discards a quiz run
func (s *StudyService) EndQuizSession(ctx context.Context, userID, sessionID string) error {
	return s.studyCache.DeleteQuizSession(ctx, userID, sessionID)
}

// StartFlashcardSession normalizes a flashcard note and begins a run
func (s *StudyService) StartFlashcardSession(ctx context.Context, userID, noteID string) (*FlashcardSessionState, error) {
	rendered, err := s.notes.Get(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}
	if rendered.NoteType != model.NoteTypeFlashcards {
		return nil, ErrWrongNoteType
	}

	session := study.NewFlashcardSession(s.normalizer.Flashcards(rendered.Content))
	sessionID := uuid.New().String()
	if err := s.studyCache.SetFlashcardSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}
	return flashcardState(sessionID, session), nil
}

// FlashcardAction applies one step to a flashcard run. Valid actions
// are "flip", "next", and "previous".
func (s *StudyService) FlashcardAction(ctx context.Context, userID, sessionID, action string) (*FlashcardSessionState, error) {
	session, err := s.studyCache.GetFlashcardSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	switch action {
	case "flip":
		session.Flip()
	case "next":
		session.Next()
	case "previous":
		session.Previous()
	default:
		return nil, ErrUnknownAction
	}

	if err := s.studyCache.SetFlashcardSession(ctx, userID, sessionID, session); err != nil {
		return nil, err
	}
	return flashcardState(sessionID, session), nil
}

// EndFlashcardSession discards a flashcard run
func (s *StudyService) EndFlashcardSession(ctx context.Context, userID, sessionID string) error {
	return s.studyCache.DeleteFlashcardSession(ctx, userID, sessionID)
}

func quizState(sessionID string, session *study.QuizSession) *QuizSessionState {
	state := &QuizSessionState{
		SessionID:     sessionID,
		Index:         session.Index,
		Total:         session.Total(),
		Phase:         session.Phase,
		Score:         session.Score,
		Selected:      -1,
		CorrectAnswer: -1,
	}

	q := session.Current()
	if q == nil {
		return state
	}
	state.Question = q.Question
	state.Options = q.Options
	if sel, ok := session.Selections[session.Index]; ok {
		state.Selected = sel
	}
	// The answer key stays hidden while the question is open
	if session.Phase != study.PhaseAnswering {
		state.CorrectAnswer = q.CorrectAnswer
		state.Explanation = q.Explanation
	}
	return state
}

func flashcardState(sessionID string, session *study.FlashcardSession) *FlashcardSessionState {
	card := session.Current()
	text := card.Front
	if session.Face == study.FaceBack {
		text = card.Back
	}
	return &FlashcardSessionState{
		SessionID: sessionID,
		Index:     session.Index,
		Total:     session.Total(),
		Face:      session.Face,
		Text:      text,
	}
}
