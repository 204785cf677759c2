package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// StudyHandler handles interactive study session endpoints
type StudyHandler struct {
	studySvc *service.StudyService
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(studySvc *service.StudyService) *StudyHandler {
	return &StudyHandler{studySvc: studySvc}
}

type startSessionRequest struct {
	NoteID string `json:"noteId"`
}

type sessionActionRequest struct {
	Action string `json:"action"`
	Option int    `json:"option"`
}

// StartQuiz handles POST /v1/study/quiz
func (h *StudyHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NoteID == "" {
		writeError(w, http.StatusBadRequest, "noteId is required")
		return
	}

	state, err := h.studySvc.StartQuizSession(r.Context(), userID, req.NoteID)
	if err != nil {
		writeStudyError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

// QuizAction handles POST /v1/study/quiz/{sessionId}
func (h *StudyHandler) QuizAction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	var req sessionActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.studySvc.QuizAction(r.Context(), userID, sessionID, req.Action, req.Option)
	if err != nil {
		writeStudyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// EndQuiz handles DELETE /v1/study/quiz/{sessionId}
func (h *StudyHandler) EndQuiz(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.studySvc.EndQuizSession(r.Context(), userID, sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

// StartFlashcards handles POST /v1/study/flashcards
func (h *StudyHandler) StartFlashcards(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NoteID == "" {
		writeError(w, http.StatusBadRequest, "noteId is required")
		return
	}

	state, err := h.studySvc.StartFlashcardSession(r.Context(), userID, req.NoteID)
	if err != nil {
		writeStudyError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

// FlashcardAction handles POST /v1/study/flashcards/{sessionId}
func (h *StudyHandler) FlashcardAction(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	var req sessionActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.studySvc.FlashcardAction(r.Context(), userID, sessionID, req.Action)
	if err != nil {
		writeStudyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// EndFlashcards handles DELETE /v1/study/flashcards/{sessionId}
func (h *StudyHandler) EndFlashcards(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.studySvc.EndFlashcardSession(r.Context(), userID, sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

func writeStudyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWrongNoteType):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrUnknownAction):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
	}
}
