package handler

import (
	"encoding/json"
	"net/http"

	"nexuslearn/internal/model"
	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ProgressHandler handles reading progress endpoints
type ProgressHandler struct {
	progressSvc *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressSvc *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// Save handles PUT /v1/reading-progress
func (h *ProgressHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var progress model.ReadingProgress
	if err := json.NewDecoder(r.Body).Decode(&progress); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if progress.NotebookID == "" || progress.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "notebookId and documentId are required")
		return
	}

	if err := h.progressSvc.Save(r.Context(), userID, &progress); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// Get handles GET /v1/reading-progress/{documentId}
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	documentID := mux.Vars(r)["documentId"]

	progress, err := h.progressSvc.Get(r.Context(), userID, documentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	if progress == nil {
		writeError(w, http.StatusNotFound, "no progress recorded")
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

// ListForNotebook handles GET /v1/notebooks/{notebookId}/reading-progress
func (h *ProgressHandler) ListForNotebook(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	items, err := h.progressSvc.ListForNotebook(r.Context(), userID, notebookID)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}
	if items == nil {
		items = []*model.ReadingProgress{}
	}

	writeJSON(w, http.StatusOK, items)
}
