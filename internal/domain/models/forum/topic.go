package forum

import "time"

// Topic is a forum thread. Content holds stored HTML; it never carries
// editor state.
type Topic struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Content      string    `json:"content,omitempty" db:"content"`
	Author       string    `json:"author" db:"author"`
	AuthorID     string    `json:"authorId" db:"author_id"`
	AuthorAvatar string    `json:"authorAvatar" db:"author_avatar"`
	Replies      int       `json:"replies" db:"replies"`
	Views        int       `json:"views" db:"views"`
	Likes        int       `json:"likes" db:"likes"`
	IsLiked      bool      `json:"isLiked" db:"-"`
	LastPost     LastPost  `json:"lastPost"`
	CategoryID   string    `json:"category" db:"category_id"`
	ImageURL     *string   `json:"featuredImageUrl,omitempty" db:"image_url"` // Topic's own cover, used when a featured entry has none
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Set when the topic is read through the featured carousel
	IsFeatured       bool `json:"isFeatured"`
	FeaturedPosition *int `json:"featuredPosition,omitempty"`
}

// LastPost summarizes the most recent reply.
type LastPost struct {
	Author string `json:"author" db:"last_post_author"`
	Date   string `json:"date" db:"last_post_date"`
	Time   string `json:"time" db:"last_post_time"`
}

// TopicSort orders topic listings.
type TopicSort string

const (
	SortRecent   TopicSort = "recent"
	SortLikes    TopicSort = "likes"
	SortComments TopicSort = "comments"
)

// TopicFilter selects and orders topics. Start and End bound CreatedAt and
// only apply to the likes and comments orderings.
type TopicFilter struct {
	CategoryID string
	Sort       TopicSort
	Start      *time.Time
	End        *time.Time
	Limit      int
	Offset     int
}

// TopicSummary is a listing entry. Content is left empty in favor of a
// plain-text excerpt.
type TopicSummary struct {
	Topic
	Excerpt string `json:"excerpt"`
}

// RenderedTopic is a topic with its content run through the display pipeline.
type RenderedTopic struct {
	Topic
	RenderedContent string  `json:"renderedContent"`
	Media           []Media `json:"media"`
}
