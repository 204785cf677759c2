package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nexuslearn/internal/config"
	"nexuslearn/internal/model"
)

// GeneratorService produces raw study artifact text via the Groq API.
// Output is stored verbatim as note content; structure is recovered
// later by normalization, so a sloppy model response is never fatal.
type GeneratorService struct {
	config *config.AIConfig
	client *http.Client
}

// NewGeneratorService creates a new generator service
func NewGeneratorService() *GeneratorService {
	cfg := config.DefaultAIConfig()
	return &GeneratorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateArtifact generates raw content for the given artifact kind
// from the supplied source context. Falls back to canned content when
// the API is unconfigured or errors, so generation always succeeds.
func (s *GeneratorService) GenerateArtifact(ctx context.Context, kind model.ArtifactKind, topic, context string) (string, error) {
	if !s.config.IsEnabled() {
		return s.mockArtifact(kind, topic), nil
	}

	prompt := s.buildArtifactPrompt(kind, topic, context)
	response, err := s.callGroq(ctx, s.config.Models.Generate, prompt)
	if err != nil {
		return s.mockArtifact(kind, topic), nil
	}
	return response, nil
}

// GenerateQuizQuestions generates raw quiz JSON for interactive quizzes
func (s *GeneratorService) GenerateQuizQuestions(ctx context.Context, numQuestions int, difficulty, context string) (string, error) {
	if !s.config.IsEnabled() {
		return s.mockArtifact(model.ArtifactQuiz, ""), nil
	}

	prompt := s.buildQuizPrompt(numQuestions, difficulty, context)
	response, err := s.callGroq(ctx, s.config.Models.Generate, prompt)
	if err != nil {
		return s.mockArtifact(model.ArtifactQuiz, ""), nil
	}
	return response, nil
}

// Answer responds to a free-form question over notebook context
func (s *GeneratorService) Answer(ctx context.Context, question, context string) (string, error) {
	if !s.config.IsEnabled() {
		return "AI chat is not configured. Set GROQ_API_KEY to enable it.", nil
	}

	prompt := fmt.Sprintf(`Based on the following context from the uploaded documents, please answer the question.

Context:
%s

Question: %s

Answer clearly and concisely using only the provided context.`, context, question)

	response, err := s.callGroq(ctx, s.config.Models.Chat, prompt)
	if err != nil {
		return "", err
	}
	return response, nil
}

// callGroq makes a chat completion request to the Groq API
func (s *GeneratorService) callGroq(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": modelName,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a helpful educational assistant that creates high-quality study materials. Follow the requested output format exactly."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.7,
		"max_tokens":  2000,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.ChatCompletionsEndpoint(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api returned status %d", resp.StatusCode)
	}

	var groqResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return "", err
	}

	if len(groqResp.Choices) > 0 {
		return groqResp.Choices[0].Message.Content, nil
	}
	return "", fmt.Errorf("empty response from groq")
}

// Prompt builders
func (s *GeneratorService) buildArtifactPrompt(kind model.ArtifactKind, topic, context string) string {
	focus := "comprehensive coverage of all topics"
	if topic != "" {
		focus = topic
	}

	switch kind {
	case model.ArtifactMindMap:
		return fmt.Sprintf(`Create a mind map structure from the following content, focused on %s:

%s

Format as a hierarchical text structure with main topics and subtopics. Use indentation (2 spaces per level) to show hierarchy. Start each line with a dash. Example:
- Main Topic 1
  - Subtopic 1.1
    - Detail 1.1.1
  - Subtopic 1.2
- Main Topic 2`, focus, context)

	case model.ArtifactFlashcards:
		return fmt.Sprintf(`Create study flashcards from the following content, focused on %s:

%s

Format each flashcard as:
Q: [Question]
A: [Answer]

Create 5-10 flashcards covering the most important concepts. Separate each flashcard with a blank line.`, focus, context)

	case model.ArtifactQuiz:
		return fmt.Sprintf(`Create a multiple choice quiz from the following content, focused on %s, and return it as a JSON array.

%s

Return ONLY a valid JSON array of quiz questions. Each question should have this exact structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A text", "Option B text", "Option C text", "Option D text"],
    "correctAnswer": 0,
    "explanation": "Brief explanation of the correct answer"
  }
]

Important:
- correctAnswer is the index (0 for A, 1 for B, 2 for C, 3 for D)
- Create 5-8 questions
- Return ONLY valid JSON, no other text or markdown
- Make questions challenging and test understanding of key concepts`, focus, context)

	case model.ArtifactTimeline:
		return fmt.Sprintf(`Create a chronological timeline from the following content, focused on %s:

%s

Format each event as:
[Date/Year]: [Event Title]
[Description]

List events in chronological order. Separate each event with a blank line.`, focus, context)

	default:
		return fmt.Sprintf("Create study notes from the following content:\n\n%s\n\nMake it comprehensive and well-organized.", context)
	}
}

func (s *GeneratorService) buildQuizPrompt(numQuestions int, difficulty, context string) string {
	difficultyInstruction := "4. Mix difficulty levels across questions (easy, medium, hard)"
	difficultyField := `"difficulty": "easy" or "medium" or "hard"`
	if difficulty != "" && difficulty != "mixed" {
		difficultyInstruction = fmt.Sprintf("4. All questions should be %s difficulty", difficulty)
		difficultyField = fmt.Sprintf(`"difficulty": "%s"`, difficulty)
	}

	return fmt.Sprintf(`Based on the following content from educational documents, generate %d multiple-choice questions (MCQs).

Content:
%s

Requirements:
1. Generate exactly %d questions
2. Each question should have 4 options (A, B, C, D)
3. Questions should test understanding of the content
%s
5. Indicate the correct answer for each question
6. Questions should be diverse and cover different topics from the content

Format your response as a JSON array with this structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_answer": 0,
    "explanation": "Brief explanation of why this is correct",
    "topic": "Main topic this question covers",
    %s
  }
]

IMPORTANT: Return ONLY the JSON array, no additional text.`, numQuestions, context, numQuestions, difficultyInstruction, difficultyField)
}

// Mock implementations
func (s *GeneratorService) mockArtifact(kind model.ArtifactKind, topic string) string {
	if topic == "" {
		topic = "Study Topic"
	}

	switch kind {
	case model.ArtifactMindMap:
		return fmt.Sprintf("- %s\n  - Key Concept 1\n    - Supporting Detail\n  - Key Concept 2\n- Review\n  - Practice Questions", topic)
	case model.ArtifactFlashcards:
		return fmt.Sprintf("Q: What is the central idea of %s?\nA: Configure GROQ_API_KEY to generate real flashcards.\n\nQ: How many cards does a mock deck have?\nA: Two.", topic)
	case model.ArtifactQuiz:
		quiz := []map[string]interface{}{
			{
				"question":      fmt.Sprintf("Which statement about %s is correct?", topic),
				"options":       []string{"It is generated", "It is mocked", "It is cached", "It is empty"},
				"correctAnswer": 1,
				"explanation":   "Mock quiz content is returned when the AI API is not configured.",
				"topic":         topic,
				"difficulty":    "easy",
			},
			{
				"question":      "What enables real quiz generation?",
				"options":       []string{"A database index", "GROQ_API_KEY", "More documents", "A restart"},
				"correctAnswer": 1,
				"explanation":   "The generator calls the Groq API when a key is present.",
				"topic":         topic,
				"difficulty":    "easy",
			},
		}
		data, _ := json.Marshal(quiz)
		return string(data)
	case model.ArtifactTimeline:
		return fmt.Sprintf("[2024]: %s introduced\nPlaceholder event from the mock generator.\n\n[2025]: Adoption grows\nSecond placeholder event.", topic)
	default:
		return strings.TrimSpace(fmt.Sprintf("Mock study notes about %s.", topic))
	}
}
