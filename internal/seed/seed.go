// Package seed loads the demo forum content.
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
	forumRepo "forum/internal/domain/repositories/forum"
)

//go:embed data/forum.yaml
var dataFiles embed.FS

type seedTopic struct {
	ID           string          `yaml:"id"`
	Title        string          `yaml:"title"`
	Description  string          `yaml:"description"`
	Content      string          `yaml:"content"`
	Author       string          `yaml:"author"`
	AuthorID     string          `yaml:"authorId"`
	AuthorAvatar string          `yaml:"authorAvatar"`
	Replies      int             `yaml:"replies"`
	Views        int             `yaml:"views"`
	Likes        int             `yaml:"likes"`
	LastPost     models.LastPost `yaml:"lastPost"`
	Category     string          `yaml:"category"`
	CreatedAt    time.Time       `yaml:"createdAt"`
	UpdatedAt    time.Time       `yaml:"updatedAt"`
	ImageURL     string          `yaml:"imageUrl"`
}

type seedFeatured struct {
	TopicID          string `yaml:"topicId"`
	Position         int    `yaml:"position"`
	FeaturedImageURL string `yaml:"featuredImageUrl"`
}

// Data is the demo content.
type Data struct {
	Topics   []models.Topic
	Featured []models.FeaturedTopic
}

// Load parses the embedded demo content.
func Load() (*Data, error) {
	raw, err := dataFiles.ReadFile("data/forum.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}
	return Parse(raw)
}

// Parse builds seed data from YAML.
func Parse(raw []byte) (*Data, error) {
	var file struct {
		Topics   []seedTopic    `yaml:"topics"`
		Featured []seedFeatured `yaml:"featured"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	data := &Data{}
	for _, t := range file.Topics {
		topic := models.Topic{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Content:      t.Content,
			Author:       t.Author,
			AuthorID:     t.AuthorID,
			AuthorAvatar: t.AuthorAvatar,
			Replies:      t.Replies,
			Views:        t.Views,
			Likes:        t.Likes,
			LastPost:     t.LastPost,
			CategoryID:   t.Category,
			CreatedAt:    t.CreatedAt,
			UpdatedAt:    t.UpdatedAt,
		}
		if t.ImageURL != "" {
			topic.ImageURL = &t.ImageURL
		}
		data.Topics = append(data.Topics, topic)
	}
	for _, f := range file.Featured {
		entry := models.FeaturedTopic{TopicID: f.TopicID, Position: f.Position}
		if f.FeaturedImageURL != "" {
			entry.FeaturedImageURL = &f.FeaturedImageURL
		}
		data.Featured = append(data.Featured, entry)
	}
	return data, nil
}

// Seed writes data into the repositories. Topics that already exist are
// left as they are, so seeding twice is harmless.
func Seed(ctx context.Context, data *Data, topics forumRepo.TopicRepository, featured forumRepo.FeaturedTopicRepository, logger *slog.Logger) error {
	now := time.Now()

	created := 0
	for i := range data.Topics {
		err := topics.Create(ctx, &data.Topics[i])
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed topic %s: %w", data.Topics[i].ID, err)
		}
		created++
	}

	for i := range data.Featured {
		entry := data.Featured[i]
		entry.AddedAt = now
		err := featured.Upsert(ctx, &entry)
		if errors.Is(err, domain.ErrConflict) {
			logger.Debug("featured position already taken, skipping", "topic_id", entry.TopicID, "position", entry.Position)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed featured %s: %w", entry.TopicID, err)
		}
	}

	logger.Info("demo content seeded", "topics_created", created, "featured", len(data.Featured))
	return nil
}
