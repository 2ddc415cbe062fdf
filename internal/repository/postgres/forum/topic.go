package forum

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	models "forum/internal/domain/models/forum"
	forumRepo "forum/internal/domain/repositories/forum"
	"forum/internal/repository/postgres"
)

const topicColumns = `id, title, description, content, author, author_id, author_avatar,
	replies, views, likes, last_post_author, last_post_date, last_post_time,
	category_id, image_url, created_at, updated_at`

// PostgresTopicRepository implements the TopicRepository interface
type PostgresTopicRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(config *postgres.RepositoryConfig) forumRepo.TopicRepository {
	return &PostgresTopicRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

func (r *PostgresTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, r.tables.Topics, topicColumns)

	executor := postgres.GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		topic.ID,
		topic.Title,
		topic.Description,
		topic.Content,
		topic.Author,
		topic.AuthorID,
		topic.AuthorAvatar,
		topic.Replies,
		topic.Views,
		topic.Likes,
		topic.LastPost.Author,
		topic.LastPost.Date,
		topic.LastPost.Time,
		topic.CategoryID,
		topic.ImageURL,
		topic.CreatedAt,
		topic.UpdatedAt,
	)
	if err != nil {
		return postgres.TranslateError(err, "create topic", postgres.Row{Type: "topic", ID: topic.ID})
	}
	return nil
}

func (r *PostgresTopicRepository) GetByID(ctx context.Context, id string) (*models.Topic, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, topicColumns, r.tables.Topics)

	executor := postgres.GetExecutor(ctx, r.pool)
	topic, err := scanTopic(executor.QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.TranslateError(err, "get topic", postgres.Row{Type: "topic", ID: id})
	}
	return topic, nil
}

func (r *PostgresTopicRepository) List(ctx context.Context, filter *models.TopicFilter) ([]models.Topic, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != "" {
		where = append(where, "category_id = "+arg(filter.CategoryID))
	}
	if filter.Start != nil {
		where = append(where, "created_at >= "+arg(*filter.Start))
	}
	if filter.End != nil {
		where = append(where, "created_at <= "+arg(*filter.End))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, topicColumns, r.tables.Topics)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + orderBy(filter.Sort)
	// LIMIT NULL means no limit
	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	query += fmt.Sprintf(" LIMIT %s OFFSET %s", arg(limit), arg(filter.Offset))

	return r.query(ctx, "list topics", query, args...)
}

func (r *PostgresTopicRepository) SearchByTitle(ctx context.Context, query string, categoryIDs []string) ([]models.Topic, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE strpos(lower(title), lower($1)) > 0
		  AND (cardinality($2::text[]) = 0 OR category_id = ANY($2))
		ORDER BY created_at DESC, id
	`, topicColumns, r.tables.Topics)

	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	return r.query(ctx, "search topics", sql, query, categoryIDs)
}

func (r *PostgresTopicRepository) query(ctx context.Context, op, sql string, args ...any) ([]models.Topic, error) {
	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		topics = append(topics, *topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return topics, nil
}

func orderBy(sort models.TopicSort) string {
	switch sort {
	case models.SortLikes:
		return "likes DESC, created_at DESC, id"
	case models.SortComments:
		return "replies DESC, created_at DESC, id"
	default:
		return "created_at DESC, id"
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTopic(row rowScanner) (*models.Topic, error) {
	var t models.Topic
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Content,
		&t.Author,
		&t.AuthorID,
		&t.AuthorAvatar,
		&t.Replies,
		&t.Views,
		&t.Likes,
		&t.LastPost.Author,
		&t.LastPost.Date,
		&t.LastPost.Time,
		&t.CategoryID,
		&t.ImageURL,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
