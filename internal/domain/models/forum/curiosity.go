package forum

import "time"

// Curiosity is a short tip shown by the help button. Content uses the
// **bold** / *italic* markup of the formatting package.
type Curiosity struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// RenderedCuriosity carries the formatted HTML next to the source text.
type RenderedCuriosity struct {
	Curiosity
	HTML string `json:"html"`
}
