package model

import "time"

// ReadingProgress tracks how far a user has read a document
type ReadingProgress struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	NotebookID  string    `json:"notebookId" bson:"notebook_id"`
	DocumentID  string    `json:"documentId" bson:"document_id"`
	UserID      string    `json:"userId" bson:"user_id"`
	CurrentPage int       `json:"currentPage" bson:"current_page"`
	TotalPages  int       `json:"totalPages" bson:"total_pages"`
	Percent     float64   `json:"percent" bson:"percent"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
