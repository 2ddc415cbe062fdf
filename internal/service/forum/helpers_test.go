package forum

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"forum/internal/categories"
	models "forum/internal/domain/models/forum"
	"forum/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalog(t *testing.T) *categories.Catalog {
	t.Helper()
	catalog, err := categories.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return catalog
}

var baseTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// seedTopics stores topics whose CreatedAt is baseTime plus i hours.
func seedTopics(t *testing.T, repo *memory.TopicRepository, topics ...models.Topic) {
	t.Helper()
	for i := range topics {
		if topics[i].CreatedAt.IsZero() {
			topics[i].CreatedAt = baseTime.Add(time.Duration(i) * time.Hour)
		}
		if err := repo.Create(context.Background(), &topics[i]); err != nil {
			t.Fatalf("Create(%s) error = %v", topics[i].ID, err)
		}
	}
}
