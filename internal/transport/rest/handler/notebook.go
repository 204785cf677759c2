package handler

import (
	"encoding/json"
	"net/http"

	"nexuslearn/internal/model"
	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// NotebookHandler handles notebook CRUD endpoints
type NotebookHandler struct {
	notebookSvc *service.NotebookService
	documentSvc *service.DocumentService
}

// NewNotebookHandler creates a new notebook handler
func NewNotebookHandler(notebookSvc *service.NotebookService, documentSvc *service.DocumentService) *NotebookHandler {
	return &NotebookHandler{notebookSvc: notebookSvc, documentSvc: documentSvc}
}

// Create handles POST /v1/notebooks
func (h *NotebookHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var notebook model.Notebook
	if err := json.NewDecoder(r.Body).Decode(&notebook); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if notebook.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := h.notebookSvc.Create(r.Context(), userID, &notebook)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create notebook")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// List handles GET /v1/notebooks
func (h *NotebookHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	notebooks, err := h.notebookSvc.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list notebooks")
		return
	}
	if notebooks == nil {
		notebooks = []*model.Notebook{}
	}

	writeJSON(w, http.StatusOK, notebooks)
}

// Get handles GET /v1/notebooks/{notebookId}
func (h *NotebookHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	notebook, err := h.notebookSvc.Get(r.Context(), userID, notebookID)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, notebook)
}

// Update handles PUT /v1/notebooks/{notebookId}
func (h *NotebookHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	var notebook model.Notebook
	if err := json.NewDecoder(r.Body).Decode(&notebook); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	notebook.ID = notebookID

	if err := h.notebookSvc.Update(r.Context(), userID, &notebook); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /v1/notebooks/{notebookId}
func (h *NotebookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	if err := h.notebookSvc.Delete(r.Context(), userID, notebookID); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// CreateDocument handles POST /v1/notebooks/{notebookId}/documents
func (h *NotebookHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	var body struct {
		Filename  string `json:"filename"`
		FileType  string `json:"fileType"`
		PageCount int    `json:"pageCount"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	doc := &model.Document{
		NotebookID: notebookID,
		Filename:   body.Filename,
		FileType:   body.FileType,
		PageCount:  body.PageCount,
		Text:       body.Text,
	}
	id, err := h.documentSvc.Create(r.Context(), userID, doc)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListDocuments handles GET /v1/notebooks/{notebookId}/documents
func (h *NotebookHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	docs, err := h.documentSvc.List(r.Context(), userID, notebookID)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}
	if docs == nil {
		docs = []*model.Document{}
	}

	writeJSON(w, http.StatusOK, docs)
}

// DeleteDocument handles DELETE /v1/documents/{documentId}
func (h *NotebookHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	documentID := mux.Vars(r)["documentId"]

	if err := h.documentSvc.Delete(r.Context(), userID, documentID); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
