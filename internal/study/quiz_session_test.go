package study

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuslearn/internal/model"
)

func twoQuestionQuiz() *model.QuizModel {
	return &model.QuizModel{Questions: []model.QuizQuestion{
		{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1},
		{Question: "q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 0},
	}}
}

func TestQuizSessionHappyPath(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	require.Equal(t, PhaseAnswering, s.Phase)
	require.Equal(t, "q1", s.Current().Question)

	s.SelectOption(1)
	s.Submit()
	assert.Equal(t, PhaseRevealed, s.Phase)
	assert.Equal(t, 1, s.Score)

	s.Advance()
	assert.Equal(t, PhaseAnswering, s.Phase)
	assert.Equal(t, 1, s.Index)

	s.SelectOption(2) // wrong
	s.Submit()
	assert.Equal(t, 1, s.Score)

	s.Advance()
	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Nil(t, s.Current())
}

func TestQuizSessionSubmitWithoutSelectionIsNoOp(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.Submit()
	assert.Equal(t, PhaseAnswering, s.Phase)
	assert.Equal(t, 0, s.Score)
}

func TestQuizSessionSelectOnlyWhileAnswering(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(1)
	s.Submit()

	// Revealed: selection calls are ignored.
	s.SelectOption(0)
	assert.Equal(t, 1, s.Selections[0])

	// Out-of-range selections are ignored too.
	s.Advance()
	s.SelectOption(9)
	_, ok := s.Selections[1]
	assert.False(t, ok)
}

func TestQuizSessionAdvanceOnlyWhenRevealed(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.Advance()
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, PhaseAnswering, s.Phase)
}

func TestQuizSessionScoringIdempotentAcrossReplay(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())

	s.SelectOption(1)
	s.Submit()
	require.Equal(t, 1, s.Score)

	// Replaying the same question after a restart scores it once, not
	// twice: the score was reset with everything else.
	s.Restart()
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, PhaseAnswering, s.Phase)
	assert.Empty(t, s.Selections)

	s.SelectOption(1)
	s.Submit()
	assert.Equal(t, 1, s.Score)
}

func TestQuizSessionRestartFromAnyPhase(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(1)
	s.Submit()
	s.Advance()
	s.SelectOption(0)
	s.Submit()
	s.Advance()
	require.Equal(t, PhaseCompleted, s.Phase)

	s.Restart()
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, PhaseAnswering, s.Phase)
}

func TestQuizSessionEmptyQuizGetsDefault(t *testing.T) {
	s := NewQuizSession(&model.QuizModel{})
	require.NotNil(t, s.Current())
	assert.GreaterOrEqual(t, len(s.Current().Options), 2)
}

func TestQuizSessionSurvivesSerialization(t *testing.T) {
	s := NewQuizSession(twoQuestionQuiz())
	s.SelectOption(1)
	s.Submit()

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored QuizSession
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, s.Score, restored.Score)
	assert.Equal(t, s.Phase, restored.Phase)
	assert.Equal(t, s.Selections, restored.Selections)

	restored.Advance()
	assert.Equal(t, 1, restored.Index)
}
