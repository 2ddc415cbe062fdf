package forum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"forum/internal/config"
	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
	"forum/internal/domain/repositories"
	forumRepo "forum/internal/domain/repositories/forum"
	forumSvc "forum/internal/domain/services/forum"
)

var msgInvalidPosition = fmt.Sprintf("Posição deve ser entre 1 e %d", config.FeaturedPositions)

// featuredService implements the FeaturedTopicService interface
type featuredService struct {
	featuredRepo forumRepo.FeaturedTopicRepository
	topicRepo    forumRepo.TopicRepository
	txManager    repositories.TransactionManager
	now          func() time.Time
	logger       *slog.Logger
}

// NewFeaturedService creates a new featured topic service
func NewFeaturedService(
	featuredRepo forumRepo.FeaturedTopicRepository,
	topicRepo forumRepo.TopicRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) forumSvc.FeaturedTopicService {
	return &featuredService{
		featuredRepo: featuredRepo,
		topicRepo:    topicRepo,
		txManager:    txManager,
		now:          time.Now,
		logger:       logger,
	}
}

// List returns the carousel in position order. Entries whose topic has been
// removed are skipped.
func (s *featuredService) List(ctx context.Context) ([]models.Topic, error) {
	entries, err := s.featuredRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	topics := make([]models.Topic, 0, len(entries))
	for _, e := range entries {
		topic, err := s.topicRepo.GetByID(ctx, e.TopicID)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("featured topic missing, skipping", "topic_id", e.TopicID, "position", e.Position)
			continue
		}
		if err != nil {
			return nil, err
		}

		position := e.Position
		topic.IsFeatured = true
		topic.FeaturedPosition = &position
		if e.FeaturedImageURL != nil && *e.FeaturedImageURL != "" {
			topic.ImageURL = e.FeaturedImageURL
		}
		topics = append(topics, *topic)
	}
	return topics, nil
}

// Add puts a topic at a position. Whatever occupied the position is evicted
// and an earlier entry for the same topic is replaced, in one transaction.
func (s *featuredService) Add(ctx context.Context, topicID string, req *forumSvc.AddFeaturedRequest) (*models.FeaturedTopic, error) {
	if err := validation.Validate(req.Position,
		validation.Required.Error(msgInvalidPosition),
		validation.Min(1).Error(msgInvalidPosition),
		validation.Max(config.FeaturedPositions).Error(msgInvalidPosition),
	); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if _, err := s.topicRepo.GetByID(ctx, topicID); err != nil {
		return nil, err
	}

	entry := &models.FeaturedTopic{
		TopicID:          topicID,
		Position:         req.Position,
		FeaturedImageURL: req.FeaturedImageURL,
		AddedAt:          s.now(),
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		occupant, err := s.featuredRepo.GetByPosition(txCtx, entry.Position)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return err
		case occupant.TopicID != topicID:
			if err := s.featuredRepo.Delete(txCtx, occupant.TopicID); err != nil {
				return fmt.Errorf("evict position %d: %w", entry.Position, err)
			}
			s.logger.Info("featured topic evicted", "topic_id", occupant.TopicID, "position", entry.Position)
		}
		return s.featuredRepo.Upsert(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("topic featured", "topic_id", topicID, "position", entry.Position)
	return entry, nil
}

func (s *featuredService) Remove(ctx context.Context, topicID string) error {
	if err := s.featuredRepo.Delete(ctx, topicID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{ResourceType: "featured topic", ResourceID: topicID}
		}
		return err
	}

	s.logger.Info("topic unfeatured", "topic_id", topicID)
	return nil
}

func (s *featuredService) Positions(ctx context.Context) (*models.FeaturedPositions, error) {
	entries, err := s.featuredRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	used := make(map[int]bool, len(entries))
	for _, e := range entries {
		used[e.Position] = true
	}

	positions := &models.FeaturedPositions{AvailablePositions: []int{}, UsedPositions: []int{}}
	for p := 1; p <= config.FeaturedPositions; p++ {
		if used[p] {
			positions.UsedPositions = append(positions.UsedPositions, p)
		} else {
			positions.AvailablePositions = append(positions.AvailablePositions, p)
		}
	}
	return positions, nil
}
