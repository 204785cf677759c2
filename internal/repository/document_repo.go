package repository

import (
	"context"
	"time"

	"nexuslearn/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentRepo handles MongoDB operations for uploaded documents
type DocumentRepo interface {
	Create(ctx context.Context, doc *model.Document) (string, error)
	GetByID(ctx context.Context, id string) (*model.Document, error)
	GetByNotebookID(ctx context.Context, notebookID string) ([]*model.Document, error)
	Delete(ctx context.Context, id string) error
	DeleteByNotebookID(ctx context.Context, notebookID string) error
}

type documentRepo struct {
	collection *mongo.Collection
}

// NewDocumentRepo creates a new document repository
func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	return &documentRepo{
		collection: db.Collection("documents"),
	}
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) (string, error) {
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	doc.UploadedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) GetByNotebookID(ctx context.Context, notebookID string) ([]*model.Document, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"notebook_id": notebookID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *documentRepo) DeleteByNotebookID(ctx context.Context, notebookID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"notebook_id": notebookID})
	return err
}
