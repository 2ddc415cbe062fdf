package forum

import "forum/internal/domain/models/forum"

// ContentService runs the save and display pipelines for post HTML.
// Methods never fail: input that cannot be processed passes through.
type ContentService interface {
	// Prepare canonicalizes raw editor HTML and strips editor state and
	// unsafe markup, producing the string to store
	Prepare(raw string) string

	// Render expands stored content for display
	Render(stored string) *forum.Fragment

	// Excerpt returns a plain-text preview of at most maxRunes runes
	Excerpt(stored string, maxRunes int) string
}
