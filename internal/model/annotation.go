package model

import "time"

// Annotation is a user highlight or comment anchored to a document
// position. Pixel placement is the PDF renderer's concern; we store
// the logical coordinates as given.
type Annotation struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	NotebookID string    `json:"notebookId" bson:"notebook_id"`
	DocumentID string    `json:"documentId" bson:"document_id"`
	UserID     string    `json:"userId" bson:"user_id"`
	Page       int       `json:"page" bson:"page"`
	Text       string    `json:"text" bson:"text"`           // highlighted source text
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	Color      string    `json:"color,omitempty" bson:"color,omitempty"`
	X          float64   `json:"x" bson:"x"`
	Y          float64   `json:"y" bson:"y"`
	Width      float64   `json:"width" bson:"width"`
	Height     float64   `json:"height" bson:"height"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}
