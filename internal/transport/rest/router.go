package rest

import (
	"net/http"
	"os"

	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/handler"
	"nexuslearn/internal/transport/rest/middleware"
	"nexuslearn/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	NotebookService   *service.NotebookService
	NoteService       *service.NoteService
	DocumentService   *service.DocumentService
	QuizService       *service.QuizService
	StudyService      *service.StudyService
	AnnotationService *service.AnnotationService
	ProgressService   *service.ProgressService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	notebookHandler := handler.NewNotebookHandler(c.NotebookService, c.DocumentService)
	noteHandler := handler.NewNoteHandler(c.NoteService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	studyHandler := handler.NewStudyHandler(c.StudyService)
	annotationHandler := handler.NewAnnotationHandler(c.AnnotationService)
	progressHandler := handler.NewProgressHandler(c.ProgressService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.UserWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireUser)

	authed.HandleFunc("/auth/me", authHandler.Me).Methods("GET", "OPTIONS")

	// Notebooks and documents
	authed.HandleFunc("/notebooks", notebookHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/notebooks", notebookHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}", notebookHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}", notebookHandler.Update).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}", notebookHandler.Delete).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/documents", notebookHandler.CreateDocument).Methods("POST", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/documents", notebookHandler.ListDocuments).Methods("GET", "OPTIONS")
	authed.HandleFunc("/documents/{documentId}", notebookHandler.DeleteDocument).Methods("DELETE", "OPTIONS")

	// Notes and AI generation
	authed.HandleFunc("/notes", noteHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/notes/generate", noteHandler.Generate).Methods("POST", "OPTIONS")
	authed.HandleFunc("/notes/{noteId}", noteHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notes/{noteId}", noteHandler.Update).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/notes/{noteId}", noteHandler.Delete).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/notes", noteHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/chat", noteHandler.Chat).Methods("POST", "OPTIONS")

	// Interactive quizzes
	authed.HandleFunc("/quizzes/generate", quizHandler.Generate).Methods("POST", "OPTIONS")
	authed.HandleFunc("/quizzes/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	authed.HandleFunc("/quizzes/history", quizHandler.History).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/quizzes", quizHandler.NotebookHistory).Methods("GET", "OPTIONS")

	// Study sessions
	authed.HandleFunc("/study/quiz", studyHandler.StartQuiz).Methods("POST", "OPTIONS")
	authed.HandleFunc("/study/quiz/{sessionId}", studyHandler.QuizAction).Methods("POST", "OPTIONS")
	authed.HandleFunc("/study/quiz/{sessionId}", studyHandler.EndQuiz).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/study/flashcards", studyHandler.StartFlashcards).Methods("POST", "OPTIONS")
	authed.HandleFunc("/study/flashcards/{sessionId}", studyHandler.FlashcardAction).Methods("POST", "OPTIONS")
	authed.HandleFunc("/study/flashcards/{sessionId}", studyHandler.EndFlashcards).Methods("DELETE", "OPTIONS")

	// Annotations and reading progress
	authed.HandleFunc("/notebooks/{notebookId}/annotations", annotationHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/documents/{documentId}/annotations", annotationHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/annotations/{annotationId}", annotationHandler.Delete).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/reading-progress", progressHandler.Save).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/reading-progress/{documentId}", progressHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/notebooks/{notebookId}/reading-progress", progressHandler.ListForNotebook).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
