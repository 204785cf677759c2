package service

import (
	"context"
	"testing"
	"time"

	"nexuslearn/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuizCache struct {
	quizzes map[string]*model.ActiveQuiz
}

func newFakeQuizCache() *fakeQuizCache {
	return &fakeQuizCache{quizzes: make(map[string]*model.ActiveQuiz)}
}

func (c *fakeQuizCache) SetQuiz(_ context.Context, quiz *model.ActiveQuiz) error {
	c.quizzes[quiz.ID] = quiz
	return nil
}

func (c *fakeQuizCache) GetQuiz(_ context.Context, quizID string) (*model.ActiveQuiz, error) {
	return c.quizzes[quizID], nil
}

func (c *fakeQuizCache) DeleteQuiz(_ context.Context, quizID string) error {
	delete(c.quizzes, quizID)
	return nil
}

type fakeResultRepo struct {
	saved []*model.QuizResult
}

func (r *fakeResultRepo) Create(_ context.Context, result *model.QuizResult) (string, error) {
	r.saved = append(r.saved, result)
	return "result-1", nil
}

func (r *fakeResultRepo) GetByUserID(_ context.Context, userID string, limit int64) ([]*model.QuizResult, error) {
	return r.saved, nil
}

func (r *fakeResultRepo) GetByNotebookID(_ context.Context, notebookID string) ([]*model.QuizResult, error) {
	return r.saved, nil
}

func seedQuiz(cache *fakeQuizCache, userID string) *model.ActiveQuiz {
	quiz := &model.ActiveQuiz{
		ID:         "quiz-1",
		NotebookID: "nb-1",
		UserID:     userID,
		Questions: []model.QuizQuestion{
			{Question: "easy one", Options: []string{"a", "b"}, CorrectAnswer: 0, Topic: "Basics", Difficulty: "easy"},
			{Question: "medium one", Options: []string{"a", "b"}, CorrectAnswer: 1, Topic: "Basics", Difficulty: "medium"},
			{Question: "hard one", Options: []string{"a", "b"}, CorrectAnswer: 1, Topic: "Advanced", Difficulty: "hard"},
		},
		CreatedAt: time.Now(),
	}
	cache.quizzes[quiz.ID] = quiz
	return quiz
}

func TestDifficultyWeight(t *testing.T) {
	assert.Equal(t, 1.0, difficultyWeight("easy"))
	assert.Equal(t, 1.5, difficultyWeight("medium"))
	assert.Equal(t, 2.0, difficultyWeight("hard"))
	assert.Equal(t, 1.5, difficultyWeight(""))
	assert.Equal(t, 1.5, difficultyWeight("extreme"))
}

func TestSubmitWeightsScoreByDifficulty(t *testing.T) {
	quizCache := newFakeQuizCache()
	resultRepo := &fakeResultRepo{}
	svc := NewQuizService(nil, quizCache, resultRepo, nil, nil)

	seedQuiz(quizCache, "user-1")

	// Correct on easy and hard, wrong on medium: (1.0+2.0)/4.5
	result, err := svc.Submit(context.Background(), "user-1", &model.SubmitQuizRequest{
		QuizID: "quiz-1",
		Answers: []model.QuizAnswer{
			{QuestionIndex: 0, SelectedOption: 0},
			{QuestionIndex: 1, SelectedOption: 0},
			{QuestionIndex: 2, SelectedOption: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.InDelta(t, 3.0/4.5*100, result.Score, 0.0001)
}

func TestSubmitBuildsTopicBreakdown(t *testing.T) {
	quizCache := newFakeQuizCache()
	resultRepo := &fakeResultRepo{}
	svc := NewQuizService(nil, quizCache, resultRepo, nil, nil)

	seedQuiz(quizCache, "user-1")

	result, err := svc.Submit(context.Background(), "user-1", &model.SubmitQuizRequest{
		QuizID: "quiz-1",
		Answers: []model.QuizAnswer{
			{QuestionIndex: 0, SelectedOption: 0},
			{QuestionIndex: 1, SelectedOption: 0},
			{QuestionIndex: 2, SelectedOption: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.TopicPerformance{Correct: 1, Total: 2}, result.TopicBreakdown["Basics"])
	assert.Equal(t, model.TopicPerformance{Correct: 0, Total: 1}, result.TopicBreakdown["Advanced"])
}

func TestSubmitTreatsUnansweredAsWrong(t *testing.T) {
	quizCache := newFakeQuizCache()
	resultRepo := &fakeResultRepo{}
	svc := NewQuizService(nil, quizCache, resultRepo, nil, nil)

	seedQuiz(quizCache, "user-1")

	result, err := svc.Submit(context.Background(), "user-1", &model.SubmitQuizRequest{
		QuizID:  "quiz-1",
		Answers: []model.QuizAnswer{{QuestionIndex: 0, SelectedOption: 0}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, -1, result.Results[1].SelectedOption)
	assert.False(t, result.Results[1].IsCorrect)
}

func TestSubmitIsSingleAttempt(t *testing.T) {
	quizCache := newFakeQuizCache()
	resultRepo := &fakeResultRepo{}
	svc := NewQuizService(nil, quizCache, resultRepo, nil, nil)

	seedQuiz(quizCache, "user-1")

	req := &model.SubmitQuizRequest{
		QuizID:  "quiz-1",
		Answers: []model.QuizAnswer{{QuestionIndex: 0, SelectedOption: 0}},
	}
	_, err := svc.Submit(context.Background(), "user-1", req)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSubmitRejectsOtherUsersQuiz(t *testing.T) {
	quizCache := newFakeQuizCache()
	resultRepo := &fakeResultRepo{}
	svc := NewQuizService(nil, quizCache, resultRepo, nil, nil)

	seedQuiz(quizCache, "user-1")

	_, err := svc.Submit(context.Background(), "someone-else", &model.SubmitQuizRequest{QuizID: "quiz-1"})
	assert.ErrorIs(t, err, ErrQuizNotFound)
}
