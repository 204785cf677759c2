package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nexuslearn/internal/model"

	"github.com/redis/go-redis/v9"
)

// QuizCache holds generated quizzes while a user takes them. The
// answer key never leaves the server until submission, so the cache
// is the source of truth for scoring.
type QuizCache interface {
	SetQuiz(ctx context.Context, quiz *model.ActiveQuiz) error
	GetQuiz(ctx context.Context, quizID string) (*model.ActiveQuiz, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}

type quizCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuizCache creates a new quiz cache
func NewQuizCache(client *redis.Client) QuizCache {
	return &quizCache{
		client: client,
		ttl:    2 * time.Hour,
	}
}

func (c *quizCache) quizKey(quizID string) string {
	return fmt.Sprintf("quiz:%s", quizID)
}

func (c *quizCache) SetQuiz(ctx context.Context, quiz *model.ActiveQuiz) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.quizKey(quiz.ID), data, c.ttl).Err()
}

func (c *quizCache) GetQuiz(ctx context.Context, quizID string) (*model.ActiveQuiz, error) {
	data, err := c.client.Get(ctx, c.quizKey(quizID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quiz model.ActiveQuiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *quizCache) DeleteQuiz(ctx context.Context, quizID string) error {
	return c.client.Del(ctx, c.quizKey(quizID)).Err()
}
