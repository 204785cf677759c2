package service

import (
	"context"
	"errors"

	"nexuslearn/internal/model"
	"nexuslearn/internal/repository"
)

var ErrAnnotationNotFound = errors.New("annotation not found")

// AnnotationService handles highlights and comments on documents
type AnnotationService struct {
	annotationRepo repository.AnnotationRepo
	notebooks      *NotebookService
}

// NewAnnotationService creates a new annotation service
func NewAnnotationService(annotationRepo repository.AnnotationRepo, notebooks *NotebookService) *AnnotationService {
	return &AnnotationService{
		annotationRepo: annotationRepo,
		notebooks:      notebooks,
	}
}

// Create stores an annotation in a notebook the user owns
func (s *AnnotationService) Create(ctx context.Context, userID string, ann *model.Annotation) (string, error) {
	if _, err := s.notebooks.Get(ctx, userID, ann.NotebookID); err != nil {
		return "", err
	}
	ann.UserID = userID
	return s.annotationRepo.Create(ctx, ann)
}

// ListForDocument retrieves the user's annotations on a document
func (s *AnnotationService) ListForDocument(ctx context.Context, userID, notebookID, documentID string) ([]*model.Annotation, error) {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return nil, err
	}
	anns, err := s.annotationRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	mine := make([]*model.Annotation, 0, len(anns))
	for _, a := range anns {
		if a.UserID == userID {
			mine = append(mine, a)
		}
	}
	return mine, nil
}

// Delete removes an annotation in a notebook the user owns
func (s *AnnotationService) Delete(ctx context.Context, userID, notebookID, id string) error {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return err
	}
	return s.annotationRepo.Delete(ctx, id)
}
