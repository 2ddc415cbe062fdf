package forum

import (
	"context"

	"forum/internal/domain/models/forum"
)

// FeaturedTopicRepository stores the featured carousel.
// Writes that must happen together go through a repositories.TransactionManager.
type FeaturedTopicRepository interface {
	// List returns every entry ordered by position
	List(ctx context.Context) ([]forum.FeaturedTopic, error)

	// GetByPosition returns the entry at position, or domain.ErrNotFound
	GetByPosition(ctx context.Context, position int) (*forum.FeaturedTopic, error)

	// Upsert stores entry, replacing any earlier entry for the same topic
	Upsert(ctx context.Context, entry *forum.FeaturedTopic) error

	// Delete removes the entry for topicID, or returns domain.ErrNotFound
	Delete(ctx context.Context, topicID string) error
}
