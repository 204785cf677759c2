package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexuslearn/internal/cache"
	"nexuslearn/internal/config"
	"nexuslearn/internal/repository"
	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest"
	"nexuslearn/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Load AI config and log model settings
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Generate: %s", aiConfig.Models.Generate)
	log.Printf("  Chat:     %s", aiConfig.Models.Chat)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured")
	} else {
		log.Println("  API Key:  NOT SET (using mock generator)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	notebookRepo := repository.NewNotebookRepo(db)
	noteRepo := repository.NewNoteRepo(db)
	documentRepo := repository.NewDocumentRepo(db)
	quizResultRepo := repository.NewQuizResultRepo(db)
	annotationRepo := repository.NewAnnotationRepo(db)
	progressRepo := repository.NewProgressRepo(db)

	// Initialize caches
	quizCache := cache.NewQuizCache(rdb)
	studyCache := cache.NewStudyCache(rdb)
	artifactCache := cache.NewArtifactCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	generator := service.NewGeneratorService()
	notebookSvc := service.NewNotebookService(notebookRepo, noteRepo, documentRepo)
	documentSvc := service.NewDocumentService(documentRepo, notebookSvc)
	noteSvc := service.NewNoteService(noteRepo, notebookSvc, documentRepo, generator, artifactCache)
	quizSvc := service.NewQuizService(generator, quizCache, quizResultRepo, notebookSvc, documentRepo)
	studySvc := service.NewStudyService(noteSvc, studyCache)
	annotationSvc := service.NewAnnotationService(annotationRepo, notebookSvc)
	progressSvc := service.NewProgressService(progressRepo, notebookSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	noteSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		NotebookService:   notebookSvc,
		NoteService:       noteSvc,
		DocumentService:   documentSvc,
		QuizService:       quizSvc,
		StudyService:      studySvc,
		AnnotationService: annotationSvc,
		ProgressService:   progressSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/notebooks")
		log.Println("  POST /v1/notes/generate")
		log.Println("  POST /v1/quizzes/generate")
		log.Println("  POST /v1/study/quiz")
		log.Println("  WS  /v1/ws")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
