package handler

import (
	"encoding/json"
	"net/http"

	"nexuslearn/internal/model"
	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// AnnotationHandler handles document annotation endpoints
type AnnotationHandler struct {
	annotationSvc *service.AnnotationService
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(annotationSvc *service.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{annotationSvc: annotationSvc}
}

// Create handles POST /v1/notebooks/{notebookId}/annotations
func (h *AnnotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	var ann model.Annotation
	if err := json.NewDecoder(r.Body).Decode(&ann); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ann.NotebookID = notebookID
	if ann.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "documentId is required")
		return
	}

	id, err := h.annotationSvc.Create(r.Context(), userID, &ann)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// List handles GET /v1/notebooks/{notebookId}/documents/{documentId}/annotations
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	vars := mux.Vars(r)

	anns, err := h.annotationSvc.ListForDocument(r.Context(), userID, vars["notebookId"], vars["documentId"])
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}
	if anns == nil {
		anns = []*model.Annotation{}
	}

	writeJSON(w, http.StatusOK, anns)
}

// Delete handles DELETE /v1/notebooks/{notebookId}/annotations/{annotationId}
func (h *AnnotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	vars := mux.Vars(r)

	if err := h.annotationSvc.Delete(r.Context(), userID, vars["notebookId"], vars["annotationId"]); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
