package model

import "time"

// Document is an uploaded source document in a notebook. Binary
// storage and chunking live outside this service; we keep the metadata
// and extracted text the generator draws context from.
type Document struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	NotebookID string    `json:"notebookId" bson:"notebook_id"`
	Filename   string    `json:"filename" bson:"filename"`
	FileType   string    `json:"fileType" bson:"file_type"` // pdf, docx, txt, youtube
	PageCount  int       `json:"pageCount,omitempty" bson:"page_count,omitempty"`
	Text       string    `json:"-" bson:"text"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploaded_at"`
}
