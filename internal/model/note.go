package model

import "time"

// NoteType tells the renderer how to treat a note's content
type NoteType string

const (
	NoteTypeText       NoteType = "text"
	NoteTypeRichText   NoteType = "rich_text"
	NoteTypeMindMap    NoteType = "ai_mindmap"    // content is raw AI outline text
	NoteTypeFlashcards NoteType = "ai_flashcards" // content is raw Q:/A: text
	NoteTypeQuiz       NoteType = "ai_quiz"       // content is raw quiz JSON or text
	NoteTypeTimeline   NoteType = "ai_timeline"   // content is raw dated-event text
)

// ArtifactKindFor maps an AI note type to its artifact kind; ok is
// false for plain notes that need no normalization.
func ArtifactKindFor(t NoteType) (ArtifactKind, bool) {
	switch t {
	case NoteTypeMindMap:
		return ArtifactMindMap, true
	case NoteTypeFlashcards:
		return ArtifactFlashcards, true
	case NoteTypeQuiz:
		return ArtifactQuiz, true
	case NoteTypeTimeline:
		return ArtifactTimeline, true
	default:
		return "", false
	}
}

// Note is a user-authored or AI-generated note. For AI note types the
// Content field holds the raw model output; renderable structure comes
// from normalization, never from storage.
type Note struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	NotebookID string    `json:"notebookId" bson:"notebook_id"`
	Title      string    `json:"title" bson:"title"`
	Content    string    `json:"content" bson:"content"`
	NoteType   NoteType  `json:"noteType" bson:"note_type"`
	Color      string    `json:"color,omitempty" bson:"color,omitempty"`
	Tags       []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}

// RenderedNote is a note plus its normalized artifact, ready for the
// client to map straight onto presentation components.
type RenderedNote struct {
	Note
	Artifact interface{} `json:"artifact,omitempty"` // canonical model for AI note types
}

// GenerateNoteRequest is the request body for POST /v1/notes/generate
type GenerateNoteRequest struct {
	NotebookID string `json:"notebookId"`
	NoteType   string `json:"noteType"` // summary, key_points, mind_map, flashcards, quiz, timeline
	Topic      string `json:"topic,omitempty"`
}
