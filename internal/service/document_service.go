package service

import (
	"context"
	"errors"

	"nexuslearn/internal/model"
	"nexuslearn/internal/repository"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentService handles document metadata and extracted text.
// Extraction itself happens client-side or in an ingest pipeline; this
// service stores what the generator needs.
type DocumentService struct {
	documentRepo repository.DocumentRepo
	notebooks    *NotebookService
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo repository.DocumentRepo, notebooks *NotebookService) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		notebooks:    notebooks,
	}
}

// Create registers a document in a notebook the user owns
func (s *DocumentService) Create(ctx context.Context, userID string, doc *model.Document) (string, error) {
	if _, err := s.notebooks.Get(ctx, userID, doc.NotebookID); err != nil {
		return "", err
	}
	return s.documentRepo.Create(ctx, doc)
}

// List retrieves documents in a notebook the user owns
func (s *DocumentService) List(ctx context.Context, userID, notebookID string) ([]*model.Document, error) {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return nil, err
	}
	return s.documentRepo.GetByNotebookID(ctx, notebookID)
}

// Delete removes a document the user can access
func (s *DocumentService) Delete(ctx context.Context, userID, id string) error {
	doc, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrDocumentNotFound
	}
	if _, err := s.notebooks.Get(ctx, userID, doc.NotebookID); err != nil {
		return err
	}
	return s.documentRepo.Delete(ctx, id)
}
