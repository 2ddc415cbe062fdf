package forum

import (
	"context"

	"forum/internal/domain/models/forum"
)

// TopicRepository defines data access operations for topics
type TopicRepository interface {
	// Create stores a new topic; returns domain.ErrConflict if the ID exists
	Create(ctx context.Context, topic *forum.Topic) error

	// GetByID retrieves a topic by ID
	GetByID(ctx context.Context, id string) (*forum.Topic, error)

	// List returns topics matching the filter in the filter's order
	List(ctx context.Context, filter *forum.TopicFilter) ([]forum.Topic, error)

	// SearchByTitle returns topics whose title contains query, ignoring case.
	// An empty categoryIDs matches every category.
	SearchByTitle(ctx context.Context, query string, categoryIDs []string) ([]forum.Topic, error)
}
