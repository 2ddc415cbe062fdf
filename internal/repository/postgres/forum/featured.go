package forum

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
	forumRepo "forum/internal/domain/repositories/forum"
	"forum/internal/repository/postgres"
)

// PostgresFeaturedRepository implements the FeaturedTopicRepository interface.
// The table enforces one entry per topic and per position.
type PostgresFeaturedRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewFeaturedRepository creates a new featured topic repository
func NewFeaturedRepository(config *postgres.RepositoryConfig) forumRepo.FeaturedTopicRepository {
	return &PostgresFeaturedRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresFeaturedRepository) List(ctx context.Context) ([]models.FeaturedTopic, error) {
	query := fmt.Sprintf(`
		SELECT topic_id, position, featured_image_url, added_at
		FROM %s
		ORDER BY position
	`, r.tables.FeaturedTopics)

	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list featured topics: %w", err)
	}
	defer rows.Close()

	entries := []models.FeaturedTopic{}
	for rows.Next() {
		var e models.FeaturedTopic
		if err := rows.Scan(&e.TopicID, &e.Position, &e.FeaturedImageURL, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan featured topic: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list featured topics: %w", err)
	}
	return entries, nil
}

func (r *PostgresFeaturedRepository) GetByPosition(ctx context.Context, position int) (*models.FeaturedTopic, error) {
	// Lock the row so concurrent adds to the same position serialize
	query := fmt.Sprintf(`
		SELECT topic_id, position, featured_image_url, added_at
		FROM %s
		WHERE position = $1
		FOR UPDATE
	`, r.tables.FeaturedTopics)

	var e models.FeaturedTopic
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, position).Scan(&e.TopicID, &e.Position, &e.FeaturedImageURL, &e.AddedAt)
	if err != nil {
		return nil, postgres.TranslateError(err, "get featured position",
			postgres.Row{Type: "featured position", ID: strconv.Itoa(position)})
	}
	return &e, nil
}

func (r *PostgresFeaturedRepository) Upsert(ctx context.Context, entry *models.FeaturedTopic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (topic_id, position, featured_image_url, added_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (topic_id) DO UPDATE
		SET position = EXCLUDED.position,
		    featured_image_url = EXCLUDED.featured_image_url,
		    added_at = EXCLUDED.added_at
	`, r.tables.FeaturedTopics)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query, entry.TopicID, entry.Position, entry.FeaturedImageURL, entry.AddedAt)
	if err != nil {
		return postgres.TranslateError(err, "upsert featured topic", postgres.Row{
			Type:     "featured topic",
			ID:       entry.TopicID,
			Conflict: fmt.Sprintf("position %d was taken concurrently", entry.Position),
		})
	}
	return nil
}

func (r *PostgresFeaturedRepository) Delete(ctx context.Context, topicID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE topic_id = $1`, r.tables.FeaturedTopics)

	executor := postgres.GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, topicID)
	if err != nil {
		return fmt.Errorf("delete featured topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("featured topic %s: %w", topicID, domain.ErrNotFound)
	}
	return nil
}
