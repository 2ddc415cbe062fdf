package forum

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"forum/internal/categories"
	"forum/internal/config"
	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
	forumRepo "forum/internal/domain/repositories/forum"
	forumSvc "forum/internal/domain/services/forum"
)

// topicService implements the TopicService interface
type topicService struct {
	topicRepo forumRepo.TopicRepository
	catalog   *categories.Catalog
	content   forumSvc.ContentService
	logger    *slog.Logger
}

// NewTopicService creates a new topic service
func NewTopicService(
	topicRepo forumRepo.TopicRepository,
	catalog *categories.Catalog,
	content forumSvc.ContentService,
	logger *slog.Logger,
) forumSvc.TopicService {
	return &topicService{
		topicRepo: topicRepo,
		catalog:   catalog,
		content:   content,
		logger:    logger,
	}
}

func (s *topicService) List(ctx context.Context, filter *models.TopicFilter) ([]models.TopicSummary, error) {
	f := *filter
	if f.Sort == "" {
		f.Sort = models.SortRecent
	}
	if err := validation.ValidateStruct(&f,
		validation.Field(&f.Sort, validation.In(models.SortRecent, models.SortLikes, models.SortComments)),
		validation.Field(&f.Limit, validation.Min(0), validation.Max(config.MaxTopicPageSize)),
		validation.Field(&f.Offset, validation.Min(0)),
	); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	if f.Limit == 0 {
		f.Limit = config.DefaultTopicPageSize
	}
	// The date range only narrows the popularity orderings
	if f.Sort == models.SortRecent {
		f.Start, f.End = nil, nil
	}

	topics, err := s.topicRepo.List(ctx, &f)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TopicSummary, len(topics))
	for i, t := range topics {
		excerpt := s.content.Excerpt(t.Content, config.ExcerptLength)
		t.Content = ""
		summaries[i] = models.TopicSummary{Topic: t, Excerpt: excerpt}
	}
	return summaries, nil
}

func (s *topicService) Get(ctx context.Context, id string) (*models.RenderedTopic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	frag := s.content.Render(topic.Content)
	return &models.RenderedTopic{
		Topic:           *topic,
		RenderedContent: frag.HTML,
		Media:           frag.Media,
	}, nil
}

// Search matches topic titles. People search is not indexed, so type=users
// always comes back empty.
func (s *topicService) Search(ctx context.Context, req *forumSvc.SearchRequest) (*models.SearchResults, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, domain.NewValidationError(`Query parameter "q" is required`)
	}

	results := &models.SearchResults{Results: []models.SearchResult{}}
	if req.Type == "users" {
		return results, nil
	}

	topics, err := s.topicRepo.SearchByTitle(ctx, query, req.Categories)
	if err != nil {
		return nil, err
	}

	for _, t := range topics {
		result := models.SearchResult{
			ID:       t.ID,
			Title:    t.Title,
			Category: t.CategoryID,
			Author:   t.Author,
		}
		if cat, ok := s.catalog.Get(t.CategoryID); ok {
			result.Category = cat.Name
			result.CategoryType = cat.Type
		}
		results.Results = append(results.Results, result)
	}
	results.Total = len(results.Results)

	s.logger.Debug("topic search", "query", query, "categories", req.Categories, "total", results.Total)
	return results, nil
}
