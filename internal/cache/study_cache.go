package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nexuslearn/internal/study"

	"github.com/redis/go-redis/v9"
)

// StudyCache persists in-flight study sessions so a user can resume a
// quiz or flashcard run across requests. Sessions are keyed per user.
type StudyCache interface {
	SetQuizSession(ctx context.Context, userID, sessionID string, session *study.QuizSession) error
	GetQuizSession(ctx context.Context, userID, sessionID string) (*study.QuizSession, error)
	DeleteQuizSession(ctx context.Context, userID, sessionID string) error

	SetFlashcardSession(ctx context.Context, userID, sessionID string, session *study.FlashcardSession) error
	GetFlashcardSession(ctx context.Context, userID, sessionID string) (*study.FlashcardSession, error)
	DeleteFlashcardSession(ctx context.Context, userID, sessionID string) error
}

type studyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStudyCache creates a new study session cache
func NewStudyCache(client *redis.Client) StudyCache {
	return &studyCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *studyCache) quizSessionKey(userID, sessionID string) string {
	return fmt.Sprintf("study:%s:quiz:%s", userID, sessionID)
}

func (c *studyCache) flashcardSessionKey(userID, sessionID string) string {
	return fmt.Sprintf("study:%s:cards:%s", userID, sessionID)
}

func (c *studyCache) SetQuizSession(ctx context.Context, userID, sessionID string, session *study.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.quizSessionKey(userID, sessionID), data, c.ttl).Err()
}

func (c *studyCache) GetQuizSession(ctx context.Context, userID, sessionID string) (*study.QuizSession, error) {
	data, err := c.client.Get(ctx, c.quizSessionKey(userID, sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session study.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *studyCache) DeleteQuizSession(ctx context.Context, userID, sessionID string) error {
	return c.client.Del(ctx, c.quizSessionKey(userID, sessionID)).Err()
}

func (c *studyCache) SetFlashcardSession(ctx context.Context, userID, sessionID string, session *study.FlashcardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.flashcardSessionKey(userID, sessionID), data, c.ttl).Err()
}

func (c *studyCache) GetFlashcardSession(ctx context.Context, userID, sessionID string) (*study.FlashcardSession, error) {
	data, err := c.client.Get(ctx, c.flashcardSessionKey(userID, sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session study.FlashcardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *studyCache) DeleteFlashcardSession(ctx context.Context, userID, sessionID string) error {
	return c.client.Del(ctx, c.flashcardSessionKey(userID, sessionID)).Err()
}
