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

// NotebookRepo handles MongoDB operations for notebooks
type NotebookRepo interface {
	Create(ctx context.Context, notebook *model.Notebook) (string, error)
	GetByID(ctx context.Context, id string) (*model.Notebook, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Notebook, error)
	Update(ctx context.Context, notebook *model.Notebook) error
	Delete(ctx context.Context, id string) error
}

type notebookRepo struct {
	collection *mongo.Collection
}

// NewNotebookRepo creates a new notebook repository
func NewNotebookRepo(db *mongo.Database) NotebookRepo {
	return &notebookRepo{
		collection: db.Collection("notebooks"),
	}
}

func (r *notebookRepo) Create(ctx context.Context, notebook *model.Notebook) (string, error) {
	if notebook.ID == "" {
		notebook.ID = primitive.NewObjectID().Hex()
	}
	notebook.CreatedAt = time.Now()
	notebook.UpdatedAt = notebook.CreatedAt

	if _, err := r.collection.InsertOne(ctx, notebook); err != nil {
		return "", err
	}
	return notebook.ID, nil
}

func (r *notebookRepo) GetByID(ctx context.Context, id string) (*model.Notebook, error) {
	var notebook model.Notebook
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notebook)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notebook, nil
}

func (r *notebookRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Notebook, error) {
	opts := options.Find().SetSort(bson.M{"updated_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notebooks []*model.Notebook
	if err := cursor.All(ctx, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (r *notebookRepo) Update(ctx context.Context, notebook *model.Notebook) error {
	notebook.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": notebook.ID}, notebook)
	return err
}

func (r *notebookRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
