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

// NoteRepo handles MongoDB operations for notes
type NoteRepo interface {
	Create(ctx context.Context, note *model.Note) (string, error)
	GetByID(ctx context.Context, id string) (*model.Note, error)
	GetByNotebookID(ctx context.Context, notebookID string) ([]*model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id string) error
	DeleteByNotebookID(ctx context.Context, notebookID string) error
}

type noteRepo struct {
	collection *mongo.Collection
}

// NewNoteRepo creates a new note repository
func NewNoteRepo(db *mongo.Database) NoteRepo {
	return &noteRepo{
		collection: db.Collection("notes"),
	}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) (string, error) {
	if note.ID == "" {
		note.ID = primitive.NewObjectID().Hex()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	if _, err := r.collection.InsertOne(ctx, note); err != nil {
		return "", err
	}
	return note.ID, nil
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepo) GetByNotebookID(ctx context.Context, notebookID string) ([]*model.Note, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"notebook_id": notebookID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) Update(ctx context.Context, note *model.Note) error {
	note.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": note.ID}, note)
	return err
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *noteRepo) DeleteByNotebookID(ctx context.Context, notebookID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"notebook_id": notebookID})
	return err
}
