package handler

import (
	"log/slog"
	"net/http"

	"forum/internal/categories"
	models "forum/internal/domain/models/forum"
	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/httputil"
)

// TopicHandler handles topic listing, viewing and search
type TopicHandler struct {
	topicService forumSvc.TopicService
	catalog      *categories.Catalog
	logger       *slog.Logger
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topicService forumSvc.TopicService, catalog *categories.Catalog, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
		catalog:      catalog,
		logger:       logger,
	}
}

// ListTopics returns topic summaries
// GET /api/topics?category=&sort=&start=&end=&limit=&offset=
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TopicFilter{
		CategoryID: q.Get("category"),
		Sort:       models.TopicSort(q.Get("sort")),
	}

	var err error
	if filter.Start, err = httputil.QueryTime(r, "start"); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.End, err = httputil.QueryTime(r, "end"); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Limit, err = httputil.QueryInt(r, "limit", 0); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.Offset, err = httputil.QueryInt(r, "offset", 0); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	topics, err := h.topicService.List(r.Context(), &filter)
	if err != nil {
		handleError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"topics": topics})
}

// GetTopic returns a topic with rendered content
// GET /api/topics/{id}
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topic, err := h.topicService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, topic)
}

// Search finds topics by title
// GET /api/search?q=&type=&categories=
func (h *TopicHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := forumSvc.SearchRequest{
		Query:      r.URL.Query().Get("q"),
		Type:       r.URL.Query().Get("type"),
		Categories: httputil.QueryList(r, "categories"),
	}

	results, err := h.topicService.Search(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{
		"results": results.Results,
		"total":   results.Total,
	})
}

// ListCategories returns the forum sections in sidebar order
// GET /api/categories
func (h *TopicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]any{"categories": h.catalog.All()})
}
