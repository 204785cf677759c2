package model

import "time"

// ActiveQuiz is a generated quiz held in the cache while a user takes
// it: the answer key stays server-side until submission.
type ActiveQuiz struct {
	ID         string         `json:"id"`
	NotebookID string         `json:"notebookId"`
	UserID     string         `json:"userId"`
	Questions  []QuizQuestion `json:"questions"`
	Difficulty string         `json:"difficulty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// GenerateQuizRequest is the request body for POST /v1/quizzes/generate
type GenerateQuizRequest struct {
	NotebookID   string   `json:"notebookId"`
	NumQuestions int      `json:"numQuestions"`
	Difficulty   string   `json:"difficulty"` // easy, medium, hard, mixed
	DocumentIDs  []string `json:"documentIds,omitempty"`
}

// QuizQuestionView is a question with the answer key stripped
type QuizQuestionView struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Topic      string   `json:"topic,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// GenerateQuizResponse is returned from quiz generation
type GenerateQuizResponse struct {
	QuizID         string             `json:"quizId"`
	Questions      []QuizQuestionView `json:"questions"`
	TotalQuestions int                `json:"totalQuestions"`
}

// QuizAnswer is one submitted answer
type QuizAnswer struct {
	QuestionIndex  int `json:"questionIndex"`
	SelectedOption int `json:"selectedOption"`
}

// SubmitQuizRequest is the request body for POST /v1/quizzes/submit
type SubmitQuizRequest struct {
	QuizID  string       `json:"quizId"`
	Answers []QuizAnswer `json:"answers"`
}

// QuestionResult is the per-question outcome returned on submission
type QuestionResult struct {
	QuestionIndex  int    `json:"questionIndex"`
	Question       string `json:"question"`
	SelectedOption int    `json:"selectedOption"`
	CorrectAnswer  int    `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	Explanation    string `json:"explanation,omitempty"`
	Difficulty     string `json:"difficulty,omitempty"`
}

// TopicPerformance aggregates correctness per topic
type TopicPerformance struct {
	Correct int `json:"correct" bson:"correct"`
	Total   int `json:"total" bson:"total"`
}

// QuizResult is the persisted outcome of a quiz attempt. Score is the
// difficulty-weighted percentage (easy 1.0, medium 1.5, hard 2.0).
type QuizResult struct {
	ID             string                      `json:"id" bson:"_id,omitempty"`
	QuizID         string                      `json:"quizId" bson:"quiz_id"`
	NotebookID     string                      `json:"notebookId" bson:"notebook_id"`
	UserID         string                      `json:"userId" bson:"user_id"`
	CorrectCount   int                         `json:"correctCount" bson:"correct_count"`
	TotalQuestions int                         `json:"totalQuestions" bson:"total_questions"`
	Score          float64                     `json:"score" bson:"score"`
	Results        []QuestionResult            `json:"results" bson:"results"`
	TopicBreakdown map[string]TopicPerformance `json:"topicBreakdown" bson:"topic_breakdown"`
	CreatedAt      time.Time                   `json:"createdAt" bson:"created_at"`
}
