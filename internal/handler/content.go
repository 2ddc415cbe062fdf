package handler

import (
	"log/slog"
	"net/http"

	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/httputil"
)

// ContentRequest carries post HTML
type ContentRequest struct {
	Content string `json:"content"`
}

// ContentHandler exposes the save and display pipelines
type ContentHandler struct {
	content forumSvc.ContentService
	logger  *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(content forumSvc.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		content: content,
		logger:  logger,
	}
}

// Prepare returns editor HTML in stored form
// POST /api/content/prepare
func (h *ContentHandler) Prepare(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prepared := h.content.Prepare(req.Content)
	h.logger.Debug("content prepared", "in_bytes", len(req.Content), "out_bytes", len(prepared))

	httputil.RespondJSON(w, http.StatusOK, ContentRequest{Content: prepared})
}

// Render expands stored content for display
// POST /api/content/render
func (h *ContentHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.content.Render(req.Content))
}
