package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the forum tables for the configured prefix if they
// do not exist yet.
func EnsureSchema(ctx context.Context, config *RepositoryConfig) error {
	t := config.Tables
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id               TEXT PRIMARY KEY,
				title            VARCHAR(70) NOT NULL,
				description      TEXT NOT NULL DEFAULT '',
				content          TEXT NOT NULL DEFAULT '',
				author           TEXT NOT NULL,
				author_id        TEXT NOT NULL,
				author_avatar    TEXT NOT NULL DEFAULT '',
				replies          INTEGER NOT NULL DEFAULT 0,
				views            INTEGER NOT NULL DEFAULT 0,
				likes            INTEGER NOT NULL DEFAULT 0,
				last_post_author TEXT NOT NULL DEFAULT '',
				last_post_date   TEXT NOT NULL DEFAULT '',
				last_post_time   TEXT NOT NULL DEFAULT '',
				category_id      TEXT NOT NULL,
				image_url        TEXT,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, t.Topics),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_category_idx ON %s (category_id, created_at DESC)`, t.Topics, t.Topics),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				topic_id           TEXT PRIMARY KEY REFERENCES %s (id) ON DELETE CASCADE,
				position           INTEGER NOT NULL UNIQUE CHECK (position BETWEEN 1 AND 4),
				featured_image_url TEXT,
				added_at           TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, t.FeaturedTopics, t.Topics),
	}

	executor := GetExecutor(ctx, config.Pool)
	for _, stmt := range statements {
		if _, err := executor.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	config.Logger.Info("schema ready", "topics", t.Topics, "featured", t.FeaturedTopics)
	return nil
}
