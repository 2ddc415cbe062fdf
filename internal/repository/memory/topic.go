package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
)

// TopicRepository keeps topics in a map keyed by id.
type TopicRepository struct {
	mu     sync.RWMutex
	topics map[string]models.Topic
}

// NewTopicRepository creates an empty topic repository
func NewTopicRepository() *TopicRepository {
	return &TopicRepository{topics: make(map[string]models.Topic)}
}

func (r *TopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.topics[topic.ID]; exists {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("topic '%s' already exists", topic.ID),
			ResourceType: "topic",
			ResourceID:   topic.ID,
		}
	}
	r.topics[topic.ID] = *topic
	return nil
}

func (r *TopicRepository) GetByID(ctx context.Context, id string) (*models.Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.topics[id]
	if !ok {
		return nil, &domain.NotFoundError{ResourceType: "topic", ResourceID: id}
	}
	return &t, nil
}

func (r *TopicRepository) List(ctx context.Context, filter *models.TopicFilter) ([]models.Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var topics []models.Topic
	for _, t := range r.topics {
		if filter.CategoryID != "" && t.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Start != nil && t.CreatedAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && t.CreatedAt.After(*filter.End) {
			continue
		}
		topics = append(topics, t)
	}

	sort.Slice(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]
		switch filter.Sort {
		case models.SortLikes:
			if a.Likes != b.Likes {
				return a.Likes > b.Likes
			}
		case models.SortComments:
			if a.Replies != b.Replies {
				return a.Replies > b.Replies
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return page(topics, filter.Offset, filter.Limit), nil
}

func (r *TopicRepository) SearchByTitle(ctx context.Context, query string, categoryIDs []string) ([]models.Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	topics := []models.Topic{}
	for _, t := range r.topics {
		if !strings.Contains(strings.ToLower(t.Title), needle) {
			continue
		}
		if len(categoryIDs) > 0 && !slices.Contains(categoryIDs, t.CategoryID) {
			continue
		}
		topics = append(topics, t)
	}

	sort.Slice(topics, func(i, j int) bool {
		if !topics[i].CreatedAt.Equal(topics[j].CreatedAt) {
			return topics[i].CreatedAt.After(topics[j].CreatedAt)
		}
		return topics[i].ID < topics[j].ID
	})
	return topics, nil
}

func page(topics []models.Topic, offset, limit int) []models.Topic {
	if offset >= len(topics) {
		return []models.Topic{}
	}
	topics = topics[offset:]
	if limit > 0 && limit < len(topics) {
		topics = topics[:limit]
	}
	return topics
}
