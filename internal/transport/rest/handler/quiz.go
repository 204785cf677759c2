package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"nexuslearn/internal/model"
	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// QuizHandler handles interactive quiz endpoints
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// Generate handles POST /v1/quizzes/generate
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NotebookID == "" {
		writeError(w, http.StatusBadRequest, "notebookId is required")
		return
	}

	resp, err := h.quizSvc.Generate(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuizEmpty) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /v1/quizzes/submit
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuizID == "" {
		writeError(w, http.StatusBadRequest, "quizId is required")
		return
	}

	result, err := h.quizSvc.Submit(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to score quiz")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// History handles GET /v1/quizzes/history
func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := int64(20)
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := h.quizSvc.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if results == nil {
		results = []*model.QuizResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

// NotebookHistory handles GET /v1/notebooks/{notebookId}/quizzes
func (h *QuizHandler) NotebookHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	results, err := h.quizSvc.NotebookHistory(r.Context(), userID, notebookID)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}
	if results == nil {
		results = []*model.QuizResult{}
	}

	writeJSON(w, http.StatusOK, results)
}
