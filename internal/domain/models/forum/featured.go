package forum

import "time"

// FeaturedTopic places a topic in one of the carousel positions.
type FeaturedTopic struct {
	TopicID          string    `json:"topicId" db:"topic_id"`
	Position         int       `json:"position" db:"position"`
	FeaturedImageURL *string   `json:"featuredImageUrl,omitempty" db:"featured_image_url"`
	AddedAt          time.Time `json:"addedAt" db:"added_at"`
}

// FeaturedPositions reports which carousel slots are taken.
type FeaturedPositions struct {
	AvailablePositions []int `json:"availablePositions"`
	UsedPositions      []int `json:"usedPositions"`
}
