package study

import (
	"nexuslearn/internal/model"
)

// QuizPhase is where a session stands on the current question
type QuizPhase string

const (
	PhaseAnswering QuizPhase = "answering" // selection open, nothing revealed
	PhaseRevealed  QuizPhase = "revealed"  // answer shown, waiting to advance
	PhaseCompleted QuizPhase = "completed" // past the last question
)

// QuizSession walks a quiz one question at a time:
// Answering -> Revealed -> Answering(next) -> ... -> Completed.
// The whole struct is JSON-serializable so it can be parked in the
// study cache between requests.
type QuizSession struct {
	Quiz       *model.QuizModel `json:"quiz"`
	Index      int              `json:"index"`
	Phase      QuizPhase        `json:"phase"`
	Selections map[int]int      `json:"selections"` // question index -> selected option
	Scored     map[int]bool     `json:"scored"`     // questions already counted toward Score
	Score      int              `json:"score"`
}

// NewQuizSession starts a session at the first question. An empty quiz
// (which normalization never produces) is replaced by the default
// model so the session is always playable.
func NewQuizSession(quiz *model.QuizModel) *QuizSession {
	if quiz == nil || len(quiz.Questions) == 0 {
		quiz = model.DefaultQuiz()
	}
	return &QuizSession{
		Quiz:       quiz,
		Phase:      PhaseAnswering,
		Selections: make(map[int]int),
		Scored:     make(map[int]bool),
	}
}

// Current returns the question the session is on, or nil once completed
func (s *QuizSession) Current() *model.QuizQuestion {
	if s.Phase == PhaseCompleted || s.Index >= len(s.Quiz.Questions) {
		return nil
	}
	return &s.Quiz.Questions[s.Index]
}

// SelectOption records a tentative selection for the current question.
// Only valid while answering; anything else is ignored.
func (s *QuizSession) SelectOption(option int) {
	if s.Phase != PhaseAnswering {
		return
	}
	q := s.Current()
	if q == nil || option < 0 || option >= len(q.Options) {
		return
	}
	s.Selections[s.Index] = option
}

// Submit reveals the current question. Without a selection it is a
// no-op: the UI is expected to disable the control, and the session
// just ignores the call. A correct selection scores the question at
// most once, so resubmitting after a restart never double-counts.
func (s *QuizSession) Submit() {
	if s.Phase != PhaseAnswering {
		return
	}
	selected, ok := s.Selections[s.Index]
	if !ok {
		return
	}
	q := s.Current()
	if q == nil {
		return
	}
	if selected == q.CorrectAnswer && !s.Scored[s.Index] {
		s.Score++
		s.Scored[s.Index] = true
	}
	s.Phase = PhaseRevealed
}

// Advance moves past a revealed question, completing the session after
// the last one. Only valid in the revealed phase.
func (s *QuizSession) Advance() {
	if s.Phase != PhaseRevealed {
		return
	}
	if s.Index >= len(s.Quiz.Questions)-1 {
		s.Phase = PhaseCompleted
		return
	}
	s.Index++
	s.Phase = PhaseAnswering
}

// Restart resets score, position, and selections. Valid in any phase.
func (s *QuizSession) Restart() {
	s.Index = 0
	s.Phase = PhaseAnswering
	s.Score = 0
	s.Selections = make(map[int]int)
	s.Scored = make(map[int]bool)
}

// Total returns the number of questions in the quiz
func (s *QuizSession) Total() int {
	return len(s.Quiz.Questions)
}
