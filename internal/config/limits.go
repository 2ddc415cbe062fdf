package config

const (
	// MaxCuriosityLength is the maximum length, in characters, of a curiosity
	// text. They are shown in a small tooltip-sized modal.
	MaxCuriosityLength = 200

	// FeaturedPositions is the number of slots in the featured carousel.
	FeaturedPositions = 4

	// MaxTopicTitleLength is the maximum length for topic titles.
	MaxTopicTitleLength = 70

	// ExcerptLength is the length of topic previews in listings.
	ExcerptLength = 160

	// DefaultTopicPageSize and MaxTopicPageSize bound topic listings.
	DefaultTopicPageSize = 20
	MaxTopicPageSize     = 100

	// MaxRequestBodyBytes limits JSON request bodies. Posts can embed
	// images as data URIs, hence the generous size.
	MaxRequestBodyBytes = 10 << 20
)
