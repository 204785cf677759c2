package model

// ArtifactKind identifies which study artifact a piece of AI content is
type ArtifactKind string

const (
	ArtifactMindMap    ArtifactKind = "mindmap"    // hierarchical outline rendered as a mind map
	ArtifactQuiz       ArtifactKind = "quiz"       // multiple-choice quiz
	ArtifactFlashcards ArtifactKind = "flashcards" // front/back card deck
	ArtifactTimeline   ArtifactKind = "timeline"   // chronological event list
)

// OutlineNode is a single labeled entry in a parsed outline
type OutlineNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Depth int    `json:"depth"` // 0 = root tier
}

// OutlineEdge connects a node to its parent-resolved child
type OutlineEdge struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}

// MindMapModel is the canonical mind map structure.
// Every node with Depth > 0 has exactly one incoming edge from the
// nearest preceding node one level up; depth-0 nodes have none.
type MindMapModel struct {
	Nodes []OutlineNode `json:"nodes"`
	Edges []OutlineEdge `json:"edges"`
}

// QuizQuestion is a single multiple-choice question
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"` // at least 2
	CorrectAnswer int      `json:"correctAnswer"` // 0-based index into Options
	Explanation   string   `json:"explanation,omitempty"`
	Topic         string   `json:"topic,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"` // easy, medium, hard
}

// QuizModel is a non-empty ordered question list
type QuizModel struct {
	Questions []QuizQuestion `json:"questions"`
}

// Flashcard is one front/back card
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardModel is a non-empty ordered deck
type FlashcardModel struct {
	Cards []Flashcard `json:"cards"`
}

// TimelineEvent is one dated entry. Date stays a string: the source
// emits years, full dates, or nothing, and we never re-sort.
type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TimelineModel is a non-empty ordered event list in source order
type TimelineModel struct {
	Events []TimelineEvent `json:"events"`
}

// DefaultMindMap is returned when no outline lines parse
func DefaultMindMap() *MindMapModel {
	return &MindMapModel{
		Nodes: []OutlineNode{{ID: "node-0", Label: "Mind Map", Depth: 0}},
		Edges: []OutlineEdge{},
	}
}

// DefaultQuiz is returned when no question blocks parse
func DefaultQuiz() *QuizModel {
	return &QuizModel{
		Questions: []QuizQuestion{{
			Question:      "No questions could be read from this content.",
			Options:       []string{"Regenerate the quiz", "Open the source note"},
			CorrectAnswer: 0,
		}},
	}
}

// DefaultFlashcards is returned when no cards parse
func DefaultFlashcards() *FlashcardModel {
	return &FlashcardModel{
		Cards: []Flashcard{{
			Front: "No flashcards could be read from this content.",
			Back:  "Try regenerating the deck.",
		}},
	}
}

// DefaultTimeline is returned when no events parse
func DefaultTimeline() *TimelineModel {
	return &TimelineModel{
		Events: []TimelineEvent{{
			Date:        "Unknown",
			Title:       "No events could be read from this content.",
			Description: "Try regenerating the timeline.",
		}},
	}
}
