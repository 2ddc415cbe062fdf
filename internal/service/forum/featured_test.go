package forum

import (
	"context"
	"errors"
	"slices"
	"testing"

	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/repository/memory"
)

func strPtr(s string) *string { return &s }

func newFeaturedFixture(t *testing.T) (forumSvc.FeaturedTopicService, *memory.TopicRepository, *memory.FeaturedRepository) {
	t.Helper()
	topics := memory.NewTopicRepository()
	featured := memory.NewFeaturedRepository()
	seedTopics(t, topics,
		models.Topic{ID: "a", Title: "Topic A", ImageURL: strPtr("https://img/a.png")},
		models.Topic{ID: "b", Title: "Topic B"},
		models.Topic{ID: "c", Title: "Topic C"},
	)
	svc := NewFeaturedService(featured, topics, memory.NewTransactionManager(featured), testLogger())
	return svc, topics, featured
}

func featuredIDs(t *testing.T, svc forumSvc.FeaturedTopicService) []string {
	t.Helper()
	topics, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	ids := make([]string, len(topics))
	for i, topic := range topics {
		ids[i] = topic.ID
	}
	return ids
}

func TestFeaturedService_AddEvictsOccupant(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFeaturedFixture(t)

	if _, err := svc.Add(ctx, "a", &forumSvc.AddFeaturedRequest{Position: 1}); err != nil {
		t.Fatalf("Add(a) error = %v", err)
	}
	if _, err := svc.Add(ctx, "b", &forumSvc.AddFeaturedRequest{Position: 1}); err != nil {
		t.Fatalf("Add(b) error = %v", err)
	}

	if got := featuredIDs(t, svc); !slices.Equal(got, []string{"b"}) {
		t.Errorf("List() = %v, want [b]", got)
	}
}

func TestFeaturedService_AddMovesTopic(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFeaturedFixture(t)

	for _, step := range []struct {
		id       string
		position int
	}{{"a", 1}, {"b", 2}, {"a", 3}} {
		if _, err := svc.Add(ctx, step.id, &forumSvc.AddFeaturedRequest{Position: step.position}); err != nil {
			t.Fatalf("Add(%s, %d) error = %v", step.id, step.position, err)
		}
	}

	if got := featuredIDs(t, svc); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("List() = %v, want [b a]", got)
	}

	positions, err := svc.Positions(ctx)
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	if !slices.Equal(positions.UsedPositions, []int{2, 3}) || !slices.Equal(positions.AvailablePositions, []int{1, 4}) {
		t.Errorf("Positions() = %+v", positions)
	}
}

func TestFeaturedService_AddValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFeaturedFixture(t)

	for _, position := range []int{0, -1, 5} {
		_, err := svc.Add(ctx, "a", &forumSvc.AddFeaturedRequest{Position: position})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Add(position %d) error = %v, want validation error", position, err)
			continue
		}
		if err.Error() != msgInvalidPosition {
			t.Errorf("Add(position %d) error = %q, want %q", position, err.Error(), msgInvalidPosition)
		}
	}

	if _, err := svc.Add(ctx, "missing", &forumSvc.AddFeaturedRequest{Position: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Add(missing topic) error = %v, want not found", err)
	}
}

func TestFeaturedService_ListDecoratesTopics(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFeaturedFixture(t)

	mustAdd := func(id string, req *forumSvc.AddFeaturedRequest) {
		t.Helper()
		if _, err := svc.Add(ctx, id, req); err != nil {
			t.Fatalf("Add(%s) error = %v", id, err)
		}
	}
	mustAdd("a", &forumSvc.AddFeaturedRequest{Position: 2})
	mustAdd("b", &forumSvc.AddFeaturedRequest{Position: 1, FeaturedImageURL: strPtr("https://img/b-wide.png")})
	mustAdd("c", &forumSvc.AddFeaturedRequest{Position: 4, FeaturedImageURL: strPtr("")})

	topics, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	tests := []struct {
		id       string
		position int
		image    string
	}{
		{id: "b", position: 1, image: "https://img/b-wide.png"},
		{id: "a", position: 2, image: "https://img/a.png"},
		{id: "c", position: 4, image: ""},
	}
	if len(topics) != len(tests) {
		t.Fatalf("List() returned %d topics, want %d", len(topics), len(tests))
	}
	for i, tt := range tests {
		got := topics[i]
		if got.ID != tt.id || !got.IsFeatured || got.FeaturedPosition == nil || *got.FeaturedPosition != tt.position {
			t.Errorf("topics[%d] = id %s featured %v position %v, want %s at %d", i, got.ID, got.IsFeatured, got.FeaturedPosition, tt.id, tt.position)
		}
		image := ""
		if got.ImageURL != nil {
			image = *got.ImageURL
		}
		if image != tt.image {
			t.Errorf("topics[%d] image = %q, want %q", i, image, tt.image)
		}
	}
}

func TestFeaturedService_ListSkipsMissingTopics(t *testing.T) {
	ctx := context.Background()
	svc, _, featured := newFeaturedFixture(t)

	if _, err := svc.Add(ctx, "a", &forumSvc.AddFeaturedRequest{Position: 1}); err != nil {
		t.Fatal(err)
	}
	// An entry left behind by a deleted topic
	if err := featured.Upsert(ctx, &models.FeaturedTopic{TopicID: "deleted", Position: 2}); err != nil {
		t.Fatal(err)
	}

	if got := featuredIDs(t, svc); !slices.Equal(got, []string{"a"}) {
		t.Errorf("List() = %v, want [a]", got)
	}
}

func TestFeaturedService_Remove(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFeaturedFixture(t)

	if _, err := svc.Add(ctx, "a", &forumSvc.AddFeaturedRequest{Position: 1}); err != nil {
		t.Fatal(err)
	}
	if err := svc.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove(a) error = %v", err)
	}
	if got := featuredIDs(t, svc); len(got) != 0 {
		t.Errorf("List() after remove = %v", got)
	}

	err := svc.Remove(ctx, "a")
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) || notFound.ResourceType != "featured topic" {
		t.Errorf("Remove(absent) error = %v, want featured topic not found", err)
	}
}
