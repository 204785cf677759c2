package normalize

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexuslearn/internal/model"
)

var hostileInputs = []string{
	"",
	"   \n\t  ",
	"{not json",
	"```json\n{broken\n```",
	`"just a string"`,
	"42",
	`{"unexpected":"shape"}`,
	"[]",
	"[1, 2, 3]",
	"```\n\n```",
}

// Totality: every kind returns a valid non-empty model for every input.
func TestNormalizeIsTotal(t *testing.T) {
	n := NewNormalizer()
	for i, raw := range hostileInputs {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			mm := n.MindMap(raw)
			require.NotNil(t, mm)
			assert.NotEmpty(t, mm.Nodes)

			qz := n.Quiz(raw)
			require.NotNil(t, qz)
			require.NotEmpty(t, qz.Questions)
			for _, q := range qz.Questions {
				assert.GreaterOrEqual(t, len(q.Options), 2)
				assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
				assert.Less(t, q.CorrectAnswer, len(q.Options))
			}

			fc := n.Flashcards(raw)
			require.NotNil(t, fc)
			assert.NotEmpty(t, fc.Cards)

			tl := n.Timeline(raw)
			require.NotNil(t, tl)
			assert.NotEmpty(t, tl.Events)
		})
	}
}

func TestQuizJSONRoundTrip(t *testing.T) {
	raw := `[{"question":"What is Go?","options":["A language","A game","A fish","A color"],"correctAnswer":0,"explanation":"Go is a programming language."}]`
	m := NewNormalizer().Quiz(raw)
	require.Len(t, m.Questions, 1)
	q := m.Questions[0]
	assert.Equal(t, "What is Go?", q.Question)
	assert.Equal(t, []string{"A language", "A game", "A fish", "A color"}, q.Options)
	assert.Equal(t, 0, q.CorrectAnswer)
	assert.Equal(t, "Go is a programming language.", q.Explanation)
}

func TestQuizJSONFieldAliasing(t *testing.T) {
	raw := `[{"question":"q?","options":["a","b","c"],"correct_answer":2}]`
	m := NewNormalizer().Quiz(raw)
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 2, m.Questions[0].CorrectAnswer)

	// camelCase wins when both spellings are present
	both := `[{"question":"q?","options":["a","b","c"],"correctAnswer":1,"correct_answer":2}]`
	m = NewNormalizer().Quiz(both)
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 1, m.Questions[0].CorrectAnswer)
}

func TestQuizJSONOutOfRangeAnswerDefaultsToZero(t *testing.T) {
	raw := `[{"question":"q?","options":["a","b"],"correctAnswer":7}]`
	m := NewNormalizer().Quiz(raw)
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 0, m.Questions[0].CorrectAnswer)
}

func TestQuizFencedJSON(t *testing.T) {
	raw := "```json\n[{\"question\":\"q?\",\"options\":[\"a\",\"b\"],\"correctAnswer\":1}]\n```"
	m := NewNormalizer().Quiz(raw)
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 1, m.Questions[0].CorrectAnswer)
}

func TestMindMapJSONGraphShape(t *testing.T) {
	raw := `{"nodes":[{"id":"n1","label":"Root","depth":0},{"id":"n2","label":"Child","depth":1}],"edges":[{"id":"e1","sourceId":"n1","targetId":"n2"}]}`
	m := NewNormalizer().MindMap(raw)
	require.Len(t, m.Nodes, 2)
	require.Len(t, m.Edges, 1)
	assert.Equal(t, "n1", m.Edges[0].SourceID)
}

func TestMindMapJSONOutlineLines(t *testing.T) {
	raw := `["Root","  Child","  Other"]`
	m := NewNormalizer().MindMap(raw)
	require.Len(t, m.Nodes, 3)
	assert.Len(t, m.Edges, 2)
}

func TestFlashcardsJSONShape(t *testing.T) {
	raw := `[{"front":"f1","back":"b1"},{"front":"","back":"dropped"},{"front":"f2","back":"b2"}]`
	m := NewNormalizer().Flashcards(raw)
	require.Len(t, m.Cards, 2)
	assert.Equal(t, "f1", m.Cards[0].Front)
	assert.Equal(t, "f2", m.Cards[1].Front)
}

func TestTimelineJSONShape(t *testing.T) {
	raw := `[{"date":"1969","title":"Moon Landing","description":"d"},{"title":"Undated event"}]`
	m := NewNormalizer().Timeline(raw)
	require.Len(t, m.Events, 2)
	assert.Equal(t, "1969", m.Events[0].Date)
	assert.Equal(t, "Unknown", m.Events[1].Date)
}

func TestWrongShapeJSONFallsThroughToGrammar(t *testing.T) {
	// Valid JSON, wrong shape for a quiz: grammar runs on the JSON
	// text, finds nothing, and the default model comes back.
	m := NewNormalizer().Quiz(`{"nodes":[],"edges":[]}`)
	require.NotEmpty(t, m.Questions)
}

func TestNormalizeDispatchByKind(t *testing.T) {
	n := NewNormalizer()
	assert.IsType(t, &model.QuizModel{}, n.Normalize(model.ArtifactQuiz, ""))
	assert.IsType(t, &model.FlashcardModel{}, n.Normalize(model.ArtifactFlashcards, ""))
	assert.IsType(t, &model.TimelineModel{}, n.Normalize(model.ArtifactTimeline, ""))
	assert.IsType(t, &model.MindMapModel{}, n.Normalize(model.ArtifactMindMap, ""))
}

func TestMemoizationReturnsSameModel(t *testing.T) {
	n := NewNormalizer()
	raw := "A\n  B"
	first := n.MindMap(raw)
	second := n.MindMap(raw)
	assert.Same(t, first, second)

	// Different kind, same raw: separate cache entries.
	deck := n.Flashcards(raw)
	assert.NotNil(t, deck)

	other := n.MindMap("A\n  C")
	assert.NotSame(t, first, other)
}
