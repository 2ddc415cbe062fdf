package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"forum/internal/domain"
	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/httputil"
)

// FeaturedHandler handles the featured carousel
type FeaturedHandler struct {
	featuredService forumSvc.FeaturedTopicService
	logger          *slog.Logger
}

// NewFeaturedHandler creates a new featured topic handler
func NewFeaturedHandler(featuredService forumSvc.FeaturedTopicService, logger *slog.Logger) *FeaturedHandler {
	return &FeaturedHandler{
		featuredService: featuredService,
		logger:          logger,
	}
}

// ListFeatured returns the carousel in position order
// GET /api/featured-topics
func (h *FeaturedHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	topics, err := h.featuredService.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"topics": topics})
}

// GetPositions reports free and used positions
// GET /api/featured-topics/positions
func (h *FeaturedHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.featuredService.Positions(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{
		"availablePositions": positions.AvailablePositions,
		"usedPositions":      positions.UsedPositions,
	})
}

// AddFeatured places a topic in the carousel
// POST /api/featured-topics/{topicId}
func (h *FeaturedHandler) AddFeatured(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("topicId")

	var req forumSvc.AddFeaturedRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.featuredService.Add(r.Context(), topicID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("featured topic set by admin", "topic_id", topicID, "position", entry.Position, "admin", httputil.AdminSubject(r))
	respondSuccess(w, http.StatusOK, map[string]any{
		"message":  "Tópico adicionado aos destaques",
		"featured": entry,
	})
}

// RemoveFeatured takes a topic out of the carousel
// DELETE /api/featured-topics/{topicId}
func (h *FeaturedHandler) RemoveFeatured(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("topicId")

	if err := h.featuredService.Remove(r.Context(), topicID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFailure(w, http.StatusNotFound, "Tópico não encontrado nos destaques")
			return
		}
		handleError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"message": "Tópico removido dos destaques"})
}
