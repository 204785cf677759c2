package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const numberedQuiz = `1. What is the capital of France?
A) London
B) Paris
C) Berlin
D) Madrid
Answer: B
Explanation: Paris has been the capital since 987.

2. Which planet is closest to the sun?
a. Venus
b. Mercury
Correct Answer: **B**
`

func TestQuizNumberedBlocks(t *testing.T) {
	m := parseQuizText(numberedQuiz)
	require.Len(t, m.Questions, 2)

	q := m.Questions[0]
	assert.Equal(t, "What is the capital of France?", q.Question)
	assert.Equal(t, []string{"London", "Paris", "Berlin", "Madrid"}, q.Options)
	assert.Equal(t, 1, q.CorrectAnswer)
	assert.Equal(t, "Paris has been the capital since 987.", q.Explanation)

	assert.Equal(t, "Which planet is closest to the sun?", m.Questions[1].Question)
	assert.Equal(t, 1, m.Questions[1].CorrectAnswer)
}

func TestQuizBlankLineFallbackSplit(t *testing.T) {
	text := "What is Go?\n(a) A language\n(b) A board game\nAnswer: A\n\nWhat is Rust?\nA: A language\nB: Oxidation\nAnswer: B"
	m := parseQuizText(text)
	require.Len(t, m.Questions, 2)
	assert.Equal(t, "What is Go?", m.Questions[0].Question)
	assert.Equal(t, 0, m.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, m.Questions[1].CorrectAnswer)
}

func TestQuizAnswerResolution(t *testing.T) {
	base := "1. Pick one.\nA) first\nB) second\nC) third\nD) fourth\n"

	m := parseQuizText(base + "Answer: B")
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 1, m.Questions[0].CorrectAnswer)

	m = parseQuizText(base + "Correct Answer: **C**")
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 2, m.Questions[0].CorrectAnswer)

	// Answer line with no extractable letter defaults to option 0.
	m = parseQuizText(base + "Answer: the second one")
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 0, m.Questions[0].CorrectAnswer)
}

func TestQuizMissingAnswerLineDefaultsToZero(t *testing.T) {
	m := parseQuizText("1. Pick one.\nA) first\nB) second")
	require.Len(t, m.Questions, 1)
	assert.Equal(t, 0, m.Questions[0].CorrectAnswer)
}

func TestQuizRenderedLettersIgnoreSourceLetters(t *testing.T) {
	// Source letters only establish encounter order.
	m := parseQuizText("1. Pick one.\nC) gamma\nA) alpha\nB) beta\nAnswer: A")
	require.Len(t, m.Questions, 1)
	assert.Equal(t, []string{"gamma", "alpha", "beta"}, m.Questions[0].Options)
	assert.Equal(t, 0, m.Questions[0].CorrectAnswer)
}

func TestQuizDiscardsBlocksWithTooFewOptions(t *testing.T) {
	text := "1. Orphan question?\nA) only option\n\n2. Real question?\nA) yes\nB) no\nAnswer: A"
	m := parseQuizText(text)
	require.Len(t, m.Questions, 1)
	assert.Equal(t, "Real question?", m.Questions[0].Question)
}

func TestQuizMarkdownEmphasisOnQuestion(t *testing.T) {
	m := parseQuizText("**Question 1:** What is Go?\nA) A language\nB) A game\nAnswer: A")
	require.Len(t, m.Questions, 1)
	assert.Equal(t, "What is Go?", m.Questions[0].Question)
}

func TestQuizEmptyInputYieldsDefault(t *testing.T) {
	m := parseQuizText("")
	require.Len(t, m.Questions, 1)
	assert.GreaterOrEqual(t, len(m.Questions[0].Options), 2)
	assert.Equal(t, 0, m.Questions[0].CorrectAnswer)
}
