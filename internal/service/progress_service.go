package service

import (
	"context"

	"nexuslearn/internal/model"
	"nexuslearn/internal/repository"
)

// ProgressService tracks reading position per user and document
type ProgressService struct {
	progressRepo repository.ProgressRepo
	notebooks    *NotebookService
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepo, notebooks *NotebookService) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		notebooks:    notebooks,
	}
}

// Save records the user's current position in a document
func (s *ProgressService) Save(ctx context.Context, userID string, progress *model.ReadingProgress) error {
	if _, err := s.notebooks.Get(ctx, userID, progress.NotebookID); err != nil {
		return err
	}
	progress.UserID = userID
	if progress.TotalPages > 0 {
		progress.Percent = float64(progress.CurrentPage) / float64(progress.TotalPages) * 100
	}
	return s.progressRepo.Upsert(ctx, progress)
}

// Get retrieves the user's position in a document, nil when unread
func (s *ProgressService) Get(ctx context.Context, userID, documentID string) (*model.ReadingProgress, error) {
	return s.progressRepo.Get(ctx, userID, documentID)
}

// ListForNotebook retrieves the user's positions across a notebook
func (s *ProgressService) ListForNotebook(ctx context.Context, userID, notebookID string) ([]*model.ReadingProgress, error) {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return nil, err
	}
	return s.progressRepo.GetByNotebookID(ctx, userID, notebookID)
}
