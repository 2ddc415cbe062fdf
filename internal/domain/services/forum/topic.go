package forum

import (
	"context"

	"forum/internal/domain/models/forum"
)

// TopicService serves topic listings, search and the topic view
type TopicService interface {
	// List returns topic summaries matching the filter
	List(ctx context.Context, filter *forum.TopicFilter) ([]forum.TopicSummary, error)

	// Get returns a topic with its content rendered for display
	Get(ctx context.Context, id string) (*forum.RenderedTopic, error)

	// Search finds topics by title
	Search(ctx context.Context, req *SearchRequest) (*forum.SearchResults, error)
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query      string   `json:"q"`
	Type       string   `json:"type,omitempty"`       // "users" searches people, which the forum does not index yet
	Categories []string `json:"categories,omitempty"` // Category IDs; empty means all
}
