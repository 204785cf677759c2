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

// ProgressRepo handles MongoDB operations for reading progress
type ProgressRepo interface {
	Upsert(ctx context.Context, progress *model.ReadingProgress) error
	Get(ctx context.Context, userID, documentID string) (*model.ReadingProgress, error)
	GetByNotebookID(ctx context.Context, userID, notebookID string) ([]*model.ReadingProgress, error)
}

type progressRepo struct {
	collection *mongo.Collection
}

// NewProgressRepo creates a new reading progress repository
func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("reading_progress"),
	}
}

// Upsert keys progress on (user, document) so repeated saves replace
// the previous position instead of piling up records.
func (r *progressRepo) Upsert(ctx context.Context, progress *model.ReadingProgress) error {
	if progress.ID == "" {
		progress.ID = primitive.NewObjectID().Hex()
	}
	progress.UpdatedAt = time.Now()

	filter := bson.M{"user_id": progress.UserID, "document_id": progress.DocumentID}
	update := bson.M{"$set": bson.M{
		"notebook_id":  progress.NotebookID,
		"current_page": progress.CurrentPage,
		"total_pages":  progress.TotalPages,
		"percent":      progress.Percent,
		"updated_at":   progress.UpdatedAt,
	}, "$setOnInsert": bson.M{"_id": progress.ID}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *progressRepo) Get(ctx context.Context, userID, documentID string) (*model.ReadingProgress, error) {
	var progress model.ReadingProgress
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "document_id": documentID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepo) GetByNotebookID(ctx context.Context, userID, notebookID string) ([]*model.ReadingProgress, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "notebook_id": notebookID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.ReadingProgress
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
