package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"nexuslearn/internal/config"
	"nexuslearn/internal/model"
	"nexuslearn/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with one notebook containing an example of
// every AI note type, so the normalization pipeline has something to
// chew on out of the box.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	userRepo := repository.NewUserRepo(db)
	notebookRepo := repository.NewNotebookRepo(db)
	noteRepo := repository.NewNoteRepo(db)
	documentRepo := repository.NewDocumentRepo(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	existing, err := userRepo.GetByEmail(ctx, "demo@nexuslearn.dev")
	if err != nil {
		log.Fatalf("Failed to check for demo user: %v", err)
	}
	if existing != nil {
		log.Fatal("Demo user already exists, nothing to do")
	}

	user := &model.User{
		Name:         "Demo Student",
		Email:        "demo@nexuslearn.dev",
		PasswordHash: string(hash),
		AuthProvider: "local",
	}
	userID, err := userRepo.Create(ctx, user)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	notebook := &model.Notebook{
		UserID:      userID,
		Name:        "Space Race History",
		Description: "Seeded notebook with one of each AI note type",
		Color:       "#ede7f6",
	}
	notebookID, err := notebookRepo.Create(ctx, notebook)
	if err != nil {
		log.Fatalf("Failed to create notebook: %v", err)
	}

	doc := &model.Document{
		NotebookID: notebookID,
		Filename:   "space-race-overview.txt",
		FileType:   "txt",
		PageCount:  1,
		Text: "The Space Race was a competition between the United States and the " +
			"Soviet Union. Sputnik 1 launched in 1957, Yuri Gagarin orbited Earth " +
			"in 1961, and Apollo 11 landed on the Moon in 1969.",
	}
	if _, err := documentRepo.Create(ctx, doc); err != nil {
		log.Fatalf("Failed to create document: %v", err)
	}

	notes := []*model.Note{
		{
			NotebookID: notebookID,
			Title:      "Space Race Mind Map",
			NoteType:   model.NoteTypeMindMap,
			Color:      "#e3f2fd",
			Tags:       []string{"AI Generated", "mind_map"},
			Content: "- Space Race\n" +
				"  - Early Satellites\n" +
				"    - Sputnik 1 (1957)\n" +
				"  - Human Spaceflight\n" +
				"    - Vostok 1 (1961)\n" +
				"  - Lunar Program\n" +
				"    - Apollo 11 (1969)",
		},
		{
			NotebookID: notebookID,
			Title:      "Space Race Flashcards",
			NoteType:   model.NoteTypeFlashcards,
			Color:      "#e3f2fd",
			Tags:       []string{"AI Generated", "flashcards"},
			Content: "Q: What was the first artificial satellite?\n" +
				"A: Sputnik 1, launched by the Soviet Union in 1957.\n\n" +
				"Q: Who was the first human in space?\n" +
				"A: Yuri Gagarin, aboard Vostok 1 in 1961.\n\n" +
				"Q: Which mission first landed humans on the Moon?\n" +
				"A: Apollo 11, in July 1969.",
		},
		{
			NotebookID: notebookID,
			Title:      "Space Race Quiz",
			NoteType:   model.NoteTypeQuiz,
			Color:      "#e3f2fd",
			Tags:       []string{"AI Generated", "quiz"},
			Content: `[
  {
    "question": "Which nation launched Sputnik 1?",
    "options": ["United States", "Soviet Union", "United Kingdom", "France"],
    "correctAnswer": 1,
    "explanation": "The Soviet Union launched Sputnik 1 in October 1957."
  },
  {
    "question": "In what year did Apollo 11 land on the Moon?",
    "options": ["1965", "1967", "1969", "1971"],
    "correctAnswer": 2,
    "explanation": "Apollo 11 landed on July 20, 1969."
  }
]`,
		},
		{
			NotebookID: notebookID,
			Title:      "Space Race Timeline",
			NoteType:   model.NoteTypeTimeline,
			Color:      "#e3f2fd",
			Tags:       []string{"AI Generated", "timeline"},
			Content: "[1957]: Sputnik 1\nFirst artificial satellite reaches orbit.\n\n" +
				"[1961]: Vostok 1\nYuri Gagarin becomes the first human in space.\n\n" +
				"[1969]: Apollo 11\nFirst crewed Moon landing.",
		},
	}

	for _, note := range notes {
		if _, err := noteRepo.Create(ctx, note); err != nil {
			log.Fatalf("Failed to create note %q: %v", note.Title, err)
		}
	}

	fmt.Printf("Seeded demo account demo@nexuslearn.dev (password: demo1234) with notebook %s\n", notebookID)
}
