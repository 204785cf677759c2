package service

import (
	"context"
	"errors"

	"nexuslearn/internal/model"
	"nexuslearn/internal/repository"
)

var (
	ErrNotebookNotFound = errors.New("notebook not found")
	ErrNotOwner         = errors.New("notebook belongs to another user")
)

// NotebookService handles notebook CRUD operations
type NotebookService struct {
	notebookRepo repository.NotebookRepo
	noteRepo     repository.NoteRepo
	documentRepo repository.DocumentRepo
}

// NewNotebookService creates a new notebook service
func NewNotebookService(notebookRepo repository.NotebookRepo, noteRepo repository.NoteRepo, documentRepo repository.DocumentRepo) *NotebookService {
	return &NotebookService{
		notebookRepo: notebookRepo,
		noteRepo:     noteRepo,
		documentRepo: documentRepo,
	}
}

// Create creates a notebook owned by the given user
func (s *NotebookService) Create(ctx context.Context, userID string, notebook *model.Notebook) (string, error) {
	notebook.UserID = userID
	return s.notebookRepo.Create(ctx, notebook)
}

// List retrieves all notebooks owned by the user
func (s *NotebookService) List(ctx context.Context, userID string) ([]*model.Notebook, error) {
	return s.notebookRepo.GetByUserID(ctx, userID)
}

// Get retrieves a notebook, verifying ownership
func (s *NotebookService) Get(ctx context.Context, userID, id string) (*model.Notebook, error) {
	notebook, err := s.notebookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotebookNotFound
	}
	if notebook.UserID != userID {
		return nil, ErrNotOwner
	}
	return notebook, nil
}

// Update replaces a notebook's mutable fields, verifying ownership
func (s *NotebookService) Update(ctx context.Context, userID string, notebook *model.Notebook) error {
	existing, err := s.Get(ctx, userID, notebook.ID)
	if err != nil {
		return err
	}
	existing.Name = notebook.Name
	existing.Description = notebook.Description
	existing.Color = notebook.Color
	return s.notebookRepo.Update(ctx, existing)
}

// Delete removes a notebook and its notes and documents
func (s *NotebookService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.noteRepo.DeleteByNotebookID(ctx, id); err != nil {
		return err
	}
	if err := s.documentRepo.DeleteByNotebookID(ctx, id); err != nil {
		return err
	}
	return s.notebookRepo.Delete(ctx, id)
}
