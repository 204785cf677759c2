package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nexuslearn/internal/cache"
	"nexuslearn/internal/model"
	"nexuslearn/internal/normalize"
	"nexuslearn/internal/repository"

	"github.com/google/uuid"
)

var ErrNoteNotFound = errors.New("note not found")

// maxGenerationContext caps how much document text is sent to the
// model per generation request.
const maxGenerationContext = 8000

// NoteService handles note CRUD and AI note generation. AI notes store
// raw model output; the renderable artifact is recovered on read and
// cached per note.
type NoteService struct {
	noteRepo      repository.NoteRepo
	notebooks     *NotebookService
	documentRepo  repository.DocumentRepo
	generator     *GeneratorService
	normalizer    *normalize.Normalizer
	artifactCache cache.ArtifactCache
	broadcaster   Broadcaster
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo repository.NoteRepo, notebooks *NotebookService, documentRepo repository.DocumentRepo, generator *GeneratorService, artifactCache cache.ArtifactCache) *NoteService {
	return &NoteService{
		noteRepo:      noteRepo,
		notebooks:     notebooks,
		documentRepo:  documentRepo,
		generator:     generator,
		normalizer:    normalize.NewNormalizer(),
		artifactCache: artifactCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *NoteService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create creates a note in a notebook the user owns
func (s *NoteService) Create(ctx context.Context, userID string, note *model.Note) (string, error) {
	if _, err := s.notebooks.Get(ctx, userID, note.NotebookID); err != nil {
		return "", err
	}
	if note.NoteType == "" {
		note.NoteType = model.NoteTypeText
	}
	return s.noteRepo.Create(ctx, note)
}

// List retrieves rendered notes for a notebook the user owns
func (s *NoteService) List(ctx context.Context, userID, notebookID string) ([]*model.RenderedNote, error) {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.GetByNotebookID(ctx, notebookID)
	if err != nil {
		return nil, err
	}

	rendered := make([]*model.RenderedNote, 0, len(notes))
	for _, note := range notes {
		rendered = append(rendered, s.render(ctx, note))
	}
	return rendered, nil
}

// Get retrieves a single rendered note
func (s *NoteService) Get(ctx context.Context, userID, id string) (*model.RenderedNote, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if _, err := s.notebooks.Get(ctx, userID, note.NotebookID); err != nil {
		return nil, err
	}
	return s.render(ctx, note), nil
}

// Update replaces a note's mutable fields and invalidates its cached
// artifact.
func (s *NoteService) Update(ctx context.Context, userID string, note *model.Note) error {
	existing, err := s.noteRepo.GetByID(ctx, note.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNoteNotFound
	}
	if _, err := s.notebooks.Get(ctx, userID, existing.NotebookID); err != nil {
		return err
	}

	existing.Title = note.Title
	existing.Content = note.Content
	existing.Color = note.Color
	existing.Tags = note.Tags
	if note.NoteType != "" {
		existing.NoteType = note.NoteType
	}
	if err := s.noteRepo.Update(ctx, existing); err != nil {
		return err
	}
	if err := s.artifactCache.Delete(ctx, existing.ID); err != nil {
		log.Printf("[note] failed to invalidate artifact cache for %s: %v", existing.ID, err)
	}
	return nil
}

// Delete removes a note the user can access
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNoteNotFound
	}
	if _, err := s.notebooks.Get(ctx, userID, note.NotebookID); err != nil {
		return err
	}
	if err := s.artifactCache.Delete(ctx, id); err != nil {
		log.Printf("[note] failed to invalidate artifact cache for %s: %v", id, err)
	}
	return s.noteRepo.Delete(ctx, id)
}

// Generate kicks off AI note generation in the background and returns
// a generation ID. Progress is delivered over WebSocket: a
// generation_started event immediately, then artifact_ready (or
// generation_failed) when the note is stored.
func (s *NoteService) Generate(ctx context.Context, userID string, req *model.GenerateNoteRequest) (string, error) {
	if _, err := s.notebooks.Get(ctx, userID, req.NotebookID); err != nil {
		return "", err
	}

	docs, err := s.documentRepo.GetByNotebookID(ctx, req.NotebookID)
	if err != nil {
		return "", err
	}
	sourceContext := gatherContext(docs)

	generationID := uuid.New().String()
	kind, noteType := resolveGeneration(req.NoteType)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, "generation_started", map[string]string{
			"generationId": generationID,
			"notebookId":   req.NotebookID,
			"noteType":     string(noteType),
		})
	}

	go func(userID string, req model.GenerateNoteRequest, kind model.ArtifactKind, noteType model.NoteType, sourceContext string) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[note] generation panic: %v", r)
			}
		}()

		asyncCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		content, err := s.generator.GenerateArtifact(asyncCtx, kind, req.Topic, sourceContext)
		if err != nil {
			log.Printf("[note] generation failed for user %s: %v", userID, err)
			if s.broadcaster != nil {
				s.broadcaster.BroadcastToUser(userID, "generation_failed", map[string]string{
					"generationId": generationID,
					"error":        "generation failed",
				})
			}
			return
		}

		note := &model.Note{
			NotebookID: req.NotebookID,
			Title:      generatedTitle(req.NoteType, req.Topic),
			Content:    content,
			NoteType:   noteType,
			Color:      "#e3f2fd",
			Tags:       []string{"AI Generated", req.NoteType},
		}
		if _, err := s.noteRepo.Create(asyncCtx, note); err != nil {
			log.Printf("[note] failed to store generated note: %v", err)
			if s.broadcaster != nil {
				s.broadcaster.BroadcastToUser(userID, "generation_failed", map[string]string{
					"generationId": generationID,
					"error":        "failed to store note",
				})
			}
			return
		}

		if s.broadcaster != nil {
			s.broadcaster.BroadcastToUser(userID, "artifact_ready", map[string]interface{}{
				"generationId": generationID,
				"note":         s.render(asyncCtx, note),
			})
		}
	}(userID, *req, kind, noteType, sourceContext)

	return generationID, nil
}

// Ask answers a free-form question against a notebook's documents
func (s *NoteService) Ask(ctx context.Context, userID, notebookID, question string) (string, error) {
	if _, err := s.notebooks.Get(ctx, userID, notebookID); err != nil {
		return "", err
	}
	docs, err := s.documentRepo.GetByNotebookID(ctx, notebookID)
	if err != nil {
		return "", err
	}
	return s.generator.Answer(ctx, question, gatherContext(docs))
}

// render attaches the normalized artifact to AI notes. Rendering is
// total: any content yields a usable artifact.
func (s *NoteService) render(ctx context.Context, note *model.Note) *model.RenderedNote {
	rendered := &model.RenderedNote{Note: *note}

	kind, ok := model.ArtifactKindFor(note.NoteType)
	if !ok {
		return rendered
	}

	if cached, hit := s.cachedArtifact(ctx, note.ID, kind); hit {
		rendered.Artifact = cached
		return rendered
	}

	artifact := s.normalizer.Normalize(kind, note.Content)
	if m, ok := artifact.(*model.MindMapModel); ok {
		rendered.Artifact = normalize.LayoutMap(m)
	} else {
		rendered.Artifact = artifact
	}

	if err := s.artifactCache.Set(ctx, note.ID, rendered.Artifact); err != nil {
		log.Printf("[note] failed to cache artifact for %s: %v", note.ID, err)
	}
	return rendered
}

func (s *NoteService) cachedArtifact(ctx context.Context, noteID string, kind model.ArtifactKind) (interface{}, bool) {
	switch kind {
	case model.ArtifactMindMap:
		var out normalize.PositionedMindMap
		if hit, err := s.artifactCache.Get(ctx, noteID, &out); err == nil && hit {
			return &out, true
		}
	case model.ArtifactQuiz:
		var out model.QuizModel
		if hit, err := s.artifactCache.Get(ctx, noteID, &out); err == nil && hit {
			return &out, true
		}
	case model.ArtifactFlashcards:
		var out model.FlashcardModel
		if hit, err := s.artifactCache.Get(ctx, noteID, &out); err == nil && hit {
			return &out, true
		}
	case model.ArtifactTimeline:
		var out model.TimelineModel
		if hit, err := s.artifactCache.Get(ctx, noteID, &out); err == nil && hit {
			return &out, true
		}
	}
	return nil, false
}

func resolveGeneration(requested string) (model.ArtifactKind, model.NoteType) {
	switch requested {
	case "mind_map":
		return model.ArtifactMindMap, model.NoteTypeMindMap
	case "flashcards":
		return model.ArtifactFlashcards, model.NoteTypeFlashcards
	case "quiz":
		return model.ArtifactQuiz, model.NoteTypeQuiz
	case "timeline":
		return model.ArtifactTimeline, model.NoteTypeTimeline
	default:
		return "", model.NoteTypeRichText
	}
}

func generatedTitle(noteType, topic string) string {
	words := strings.Fields(strings.ReplaceAll(noteType, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	title := "AI Generated " + strings.Join(words, " ")
	if topic != "" {
		title += ": " + topic
	}
	return title
}

func gatherContext(docs []*model.Document) string {
	var sb strings.Builder
	for _, doc := range docs {
		if doc.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		remaining := maxGenerationContext - sb.Len()
		if remaining <= 0 {
			break
		}
		text := doc.Text
		if len(text) > remaining {
			text = text[:remaining]
		}
		sb.WriteString(text)
	}
	if sb.Len() == 0 {
		return "No documents uploaded yet."
	}
	return sb.String()
}
