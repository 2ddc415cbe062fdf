package forum

import (
	"context"

	"forum/internal/domain/models/forum"
)

// CuriosityService manages the rotating curiosity texts
type CuriosityService interface {
	// List returns every text with its rendered HTML, seeding defaults when
	// nothing usable is stored
	List(ctx context.Context) ([]forum.RenderedCuriosity, error)

	// Get returns one text
	Get(ctx context.Context, id string) (*forum.RenderedCuriosity, error)

	// Next returns the text after afterID, wrapping around. An unknown or
	// empty afterID yields the first text.
	Next(ctx context.Context, afterID string) (*forum.RenderedCuriosity, error)

	// Add appends a text
	Add(ctx context.Context, req *CuriosityRequest) (*forum.RenderedCuriosity, error)

	// Update replaces a text's content
	Update(ctx context.Context, id string, req *CuriosityRequest) (*forum.RenderedCuriosity, error)

	// Delete removes a text; the last one cannot be deleted
	Delete(ctx context.Context, id string) error

	// Preview validates and renders content without storing it
	Preview(req *CuriosityRequest) (string, error)
}

// CuriosityRequest carries curiosity content from the admin panel
type CuriosityRequest struct {
	Content string `json:"content"`
}
