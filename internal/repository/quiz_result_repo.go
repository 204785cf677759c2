package repository

import (
	"context"
	"time"

	"nexuslearn/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuizResultRepo handles MongoDB operations for quiz attempt history
type QuizResultRepo interface {
	Create(ctx context.Context, result *model.QuizResult) (string, error)
	GetByUserID(ctx context.Context, userID string, limit int64) ([]*model.QuizResult, error)
	GetByNotebookID(ctx context.Context, notebookID string) ([]*model.QuizResult, error)
}

type quizResultRepo struct {
	collection *mongo.Collection
}

// NewQuizResultRepo creates a new quiz result repository
func NewQuizResultRepo(db *mongo.Database) QuizResultRepo {
	return &quizResultRepo{
		collection: db.Collection("quiz_results"),
	}
}

func (r *quizResultRepo) Create(ctx context.Context, result *model.QuizResult) (string, error) {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	result.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, result); err != nil {
		return "", err
	}
	return result.ID, nil
}

func (r *quizResultRepo) GetByUserID(ctx context.Context, userID string, limit int64) ([]*model.QuizResult, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.QuizResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizResultRepo) GetByNotebookID(ctx context.Context, notebookID string) ([]*model.QuizResult, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"notebook_id": notebookID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*model.QuizResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
