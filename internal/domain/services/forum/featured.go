package forum

import (
	"context"

	"forum/internal/domain/models/forum"
)

// FeaturedTopicService manages the featured carousel
type FeaturedTopicService interface {
	// List returns featured topics ordered by position
	List(ctx context.Context) ([]forum.Topic, error)

	// Add places a topic at a position, evicting the current occupant
	Add(ctx context.Context, topicID string, req *AddFeaturedRequest) (*forum.FeaturedTopic, error)

	// Remove takes a topic out of the carousel
	Remove(ctx context.Context, topicID string) error

	// Positions reports free and used positions
	Positions(ctx context.Context) (*forum.FeaturedPositions, error)
}

// AddFeaturedRequest is the body of an add-to-carousel call
type AddFeaturedRequest struct {
	Position         int     `json:"position"`
	FeaturedImageURL *string `json:"featuredImageUrl,omitempty"`
}
