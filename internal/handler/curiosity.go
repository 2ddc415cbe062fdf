package handler

import (
	"log/slog"
	"net/http"

	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/httputil"
)

// CuriosityHandler handles the curiosity texts shown by the help button
type CuriosityHandler struct {
	curiosityService forumSvc.CuriosityService
	logger           *slog.Logger
}

// NewCuriosityHandler creates a new curiosity handler
func NewCuriosityHandler(curiosityService forumSvc.CuriosityService, logger *slog.Logger) *CuriosityHandler {
	return &CuriosityHandler{
		curiosityService: curiosityService,
		logger:           logger,
	}
}

// ListCuriosities returns every text
// GET /api/curiosities
func (h *CuriosityHandler) ListCuriosities(w http.ResponseWriter, r *http.Request) {
	texts, err := h.curiosityService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"curiosities": texts})
}

// NextCuriosity returns the text after ?after=, wrapping around
// GET /api/curiosities/next
func (h *CuriosityHandler) NextCuriosity(w http.ResponseWriter, r *http.Request) {
	next, err := h.curiosityService.Next(r.Context(), r.URL.Query().Get("after"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, next)
}

// GetCuriosity returns one text
// GET /api/curiosities/{id}
func (h *CuriosityHandler) GetCuriosity(w http.ResponseWriter, r *http.Request) {
	c, err := h.curiosityService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, c)
}

// PreviewCuriosity renders content without storing it
// POST /api/curiosities/preview
func (h *CuriosityHandler) PreviewCuriosity(w http.ResponseWriter, r *http.Request) {
	var req forumSvc.CuriosityRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	html, err := h.curiosityService.Preview(&req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"html": html})
}

// CreateCuriosity appends a text
// POST /api/curiosities
func (h *CuriosityHandler) CreateCuriosity(w http.ResponseWriter, r *http.Request) {
	var req forumSvc.CuriosityRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.curiosityService.Add(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, created)
}

// UpdateCuriosity replaces a text's content
// PATCH /api/curiosities/{id}
func (h *CuriosityHandler) UpdateCuriosity(w http.ResponseWriter, r *http.Request) {
	var req forumSvc.CuriosityRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.curiosityService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, updated)
}

// DeleteCuriosity removes a text. The last one cannot be removed.
// DELETE /api/curiosities/{id}
func (h *CuriosityHandler) DeleteCuriosity(w http.ResponseWriter, r *http.Request) {
	if err := h.curiosityService.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
