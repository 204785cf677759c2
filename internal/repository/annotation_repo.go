package repository

import (
	"context"
	"time"

	"nexuslearn/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnnotationRepo handles MongoDB operations for document annotations
type AnnotationRepo interface {
	Create(ctx context.Context, ann *model.Annotation) (string, error)
	GetByDocumentID(ctx context.Context, documentID string) ([]*model.Annotation, error)
	Delete(ctx context.Context, id string) error
}

type annotationRepo struct {
	collection *mongo.Collection
}

// NewAnnotationRepo creates a new annotation repository
func NewAnnotationRepo(db *mongo.Database) AnnotationRepo {
	return &annotationRepo{
		collection: db.Collection("annotations"),
	}
}

func (r *annotationRepo) Create(ctx context.Context, ann *model.Annotation) (string, error) {
	if ann.ID == "" {
		ann.ID = primitive.NewObjectID().Hex()
	}
	ann.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, ann); err != nil {
		return "", err
	}
	return ann.ID, nil
}

func (r *annotationRepo) GetByDocumentID(ctx context.Context, documentID string) ([]*model.Annotation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"document_id": documentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var anns []*model.Annotation
	if err := cursor.All(ctx, &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

func (r *annotationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
