package service

import (
	"context"
	"errors"
	"time"

	"nexuslearn/internal/cache"
	"nexuslearn/internal/model"
	"nexuslearn/internal/normalize"
	"nexuslearn/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrQuizNotFound = errors.New("quiz not found or expired")
	ErrQuizEmpty    = errors.New("no questions could be generated")
)

// difficultyWeight scales a question's contribution to the final
// score. Unknown difficulties count as medium.
func difficultyWeight(difficulty string) float64 {
	switch difficulty {
	case "easy":
		return 1.0
	case "hard":
		return 2.0
	default:
		return 1.5
	}
}

// QuizService generates interactive quizzes and scores submissions.
// Active quizzes live in the cache with their answer keys; only
// answer-free views leave the server before submission.
type QuizService struct {
	generator    *GeneratorService
	quizCache    cache.QuizCache
	resultRepo   repository.QuizResultRepo
	notebooks    *NotebookService
	documentRepo repository.DocumentRepo
	normalizer   *normalize.Normalizer
}

// NewQuizService creates a new quiz service
func NewQuizService(generator *GeneratorService, quizCache cache.QuizCache, resultRepo repository.QuizResultRepo, notebooks *NotebookService, documentRepo repository.DocumentRepo) *QuizService {
	return &QuizService{
		generator:    generator,
		quizCache:    quizCache,
		resultRepo:   resultRepo,
		notebooks:    notebooks,
		documentRepo: documentRepo,
		normalizer:   normalize.NewNormalizer(),
	}
}

// Generate creates a quiz from notebook documents and caches it
func (s *QuizService) Generate(ctx context.Context, userID string, req *model.GenerateQuizRequest) (*model.GenerateQuizResponse, error) {
	if _, err := s.notebooks.Get(ctx, userID, req.NotebookID); err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.GetByNotebookID(ctx, req.NotebookID)
	if err != nil {
		return nil, err
	}

	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = 5
	}

	raw, err := s.generator.GenerateQuizQuestions(ctx, numQuestions, req.Difficulty, gatherContext(docs))
	if err != nil {
		return nil, err
	}

	// Tolerant parse: whatever shape the model returned becomes a
	// well-formed quiz or the fallback.
	quizModel := s.normalizer.Quiz(raw)
	if len(quizModel.Questions) == 0 {
		return nil, ErrQuizEmpty
	}

	quiz := &model.ActiveQuiz{
		ID:         uuid.New().String(),
		NotebookID: req.NotebookID,
		UserID:     userID,
		Questions:  quizModel.Questions,
		Difficulty: req.Difficulty,
		CreatedAt:  time.Now(),
	}
	if err := s.quizCache.SetQuiz(ctx, quiz); err != nil {
		return nil, err
	}

	views := make([]model.QuizQuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		views = append(views, model.QuizQuestionView{
			Question:   q.Question,
			Options:    q.Options,
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
		})
	}

	return &model.GenerateQuizResponse{
		QuizID:         quiz.ID,
		Questions:      views,
		TotalQuestions: len(views),
	}, nil
}

// Submit scores a quiz attempt and persists the result. The score is
// the difficulty-weighted percentage of points earned.
func (s *QuizService) Submit(ctx context.Context, userID string, req *model.SubmitQuizRequest) (*model.QuizResult, error) {
	quiz, err := s.quizCache.GetQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil || quiz.UserID != userID {
		return nil, ErrQuizNotFound
	}

	selected := make(map[int]int, len(req.Answers))
	for _, a := range req.Answers {
		selected[a.QuestionIndex] = a.SelectedOption
	}

	var (
		correctCount   int
		earnedWeight   float64
		totalWeight    float64
		results        = make([]model.QuestionResult, 0, len(quiz.Questions))
		topicBreakdown = make(map[string]model.TopicPerformance)
	)

	for i, q := range quiz.Questions {
		difficulty := q.Difficulty
		if difficulty == "" {
			difficulty = quiz.Difficulty
		}
		weight := difficultyWeight(difficulty)
		totalWeight += weight

		sel, answered := selected[i]
		if !answered {
			sel = -1
		}
		isCorrect := sel == q.CorrectAnswer
		if isCorrect {
			correctCount++
			earnedWeight += weight
		}

		results = append(results, model.QuestionResult{
			QuestionIndex:  i,
			Question:       q.Question,
			SelectedOption: sel,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
			Difficulty:     difficulty,
		})

		topic := q.Topic
		if topic == "" {
			topic = "General"
		}
		perf := topicBreakdown[topic]
		perf.Total++
		if isCorrect {
			perf.Correct++
		}
		topicBreakdown[topic] = perf
	}

	score := 0.0
	if totalWeight > 0 {
		score = earnedWeight / totalWeight * 100
	}

	result := &model.QuizResult{
		QuizID:         quiz.ID,
		NotebookID:     quiz.NotebookID,
		UserID:         userID,
		CorrectCount:   correctCount,
		TotalQuestions: len(quiz.Questions),
		Score:          score,
		Results:        results,
		TopicBreakdown: topicBreakdown,
	}
	if _, err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	// A quiz is single-attempt; drop it once scored
	if err := s.quizCache.DeleteQuiz(ctx, quiz.ID); err != nil {
		return result, nil
	}
	return result, nil
}

// History returns the user's most recent quiz results
func (s *QuizService) History(ctx context.Context, userID string, limit int64) ([]*model.QuizResult, error) {
	return s.resultRepo.GetByUserID(ctx, userID, limit)
}

// NotebookHistory returns quiz results scoped to one notebook
func (s *QuizService) NotebookHistory(ctx context.Context, userID, notebookID string) ([]*model.QuizResult, error) {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return nil, err
	}
	return s.resultRepo.GetByNotebookID(ctx, notebookID)
}
