package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
)

// FeaturedRepository keeps the carousel in a map keyed by topic id.
type FeaturedRepository struct {
	mu      sync.RWMutex
	entries map[string]models.FeaturedTopic
}

// NewFeaturedRepository creates an empty featured topic repository
func NewFeaturedRepository() *FeaturedRepository {
	return &FeaturedRepository{entries: make(map[string]models.FeaturedTopic)}
}

func (r *FeaturedRepository) List(ctx context.Context) ([]models.FeaturedTopic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.FeaturedTopic, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	return entries, nil
}

func (r *FeaturedRepository) GetByPosition(ctx context.Context, position int) (*models.FeaturedTopic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Position == position {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("featured position %d: %w", position, domain.ErrNotFound)
}

func (r *FeaturedRepository) Upsert(ctx context.Context, entry *models.FeaturedTopic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		if e.Position == entry.Position && id != entry.TopicID {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("position %d is taken by %s", entry.Position, id),
				ResourceType: "featured topic",
				ResourceID:   id,
			}
		}
	}
	r.entries[entry.TopicID] = *entry
	return nil
}

func (r *FeaturedRepository) Delete(ctx context.Context, topicID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[topicID]; !ok {
		return fmt.Errorf("featured topic %s: %w", topicID, domain.ErrNotFound)
	}
	delete(r.entries, topicID)
	return nil
}

func (r *FeaturedRepository) snapshot() func() {
	r.mu.RLock()
	saved := maps.Clone(r.entries)
	r.mu.RUnlock()

	return func() {
		r.mu.Lock()
		r.entries = saved
		r.mu.Unlock()
	}
}
