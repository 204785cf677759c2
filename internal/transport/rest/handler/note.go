package handler

import (
	"encoding/json"
	"net/http"

	"nexuslearn/internal/model"
	"nexuslearn/internal/service"
	"nexuslearn/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// NoteHandler handles note CRUD and AI generation endpoints
type NoteHandler struct {
	noteSvc *service.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteSvc *service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// Create handles POST /v1/notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var note model.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if note.NotebookID == "" {
		writeError(w, http.StatusBadRequest, "notebookId is required")
		return
	}

	id, err := h.noteSvc.Create(r.Context(), userID, &note)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// List handles GET /v1/notebooks/{notebookId}/notes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	notes, err := h.noteSvc.List(r.Context(), userID, notebookID)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}
	if notes == nil {
		notes = []*model.RenderedNote{}
	}

	writeJSON(w, http.StatusOK, notes)
}

// Get handles GET /v1/notes/{noteId}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	noteID := mux.Vars(r)["noteId"]

	note, err := h.noteSvc.Get(r.Context(), userID, noteID)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Update handles PUT /v1/notes/{noteId}
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	noteID := mux.Vars(r)["noteId"]

	var note model.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	note.ID = noteID

	if err := h.noteSvc.Update(r.Context(), userID, &note); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /v1/notes/{noteId}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	noteID := mux.Vars(r)["noteId"]

	if err := h.noteSvc.Delete(r.Context(), userID, noteID); err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Generate handles POST /v1/notes/generate. Generation runs in the
// background; the response carries the generation ID the client can
// match against WebSocket events.
func (h *NoteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.GenerateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NotebookID == "" || req.NoteType == "" {
		writeError(w, http.StatusBadRequest, "notebookId and noteType are required")
		return
	}

	generationID, err := h.noteSvc.Generate(r.Context(), userID, &req)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"generationId": generationID,
		"status":       "generating",
	})
}

// Chat handles POST /v1/notebooks/{notebookId}/chat
func (h *NoteHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notebookID := mux.Vars(r)["notebookId"]

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := h.noteSvc.Ask(r.Context(), userID, notebookID, req.Question)
	if err != nil {
		status, msg := ownershipStatus(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
