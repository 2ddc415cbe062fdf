package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"forum/internal/domain/models/forum"
)

var (
	editorLineBreak = regexp.MustCompile(`<div><br/?></div>`)
	emptyBlock      = regexp.MustCompile(`<div>` + jsSpace + `*</div>`)
)

const (
	thumbnailImageStyle = "max-width: 120px; width: 120px; height: auto; border-radius: 8px; margin: 8px 4px; " +
		"cursor: pointer; display: inline-block; border: 1px solid #e5e7eb; box-shadow: 0 2px 8px rgba(0,0,0,0.1);"

	thumbnailVideoStyle = "position: relative; display: inline-block; width: 200px; height: 150px; margin: 8px 4px; " +
		"border-radius: 8px; overflow: hidden; cursor: pointer; border: 1px solid #e5e7eb; background: #000;"

	videoElementStyle = "width: 100%; height: 100%; object-fit: cover; display: block; pointer-events: none;"
	videoOverlayStyle = "position: absolute; inset: 0; display: flex; align-items: center; justify-content: center; " +
		"background: rgba(0,0,0,0.3); pointer-events: none;"

	playIcon = `<svg width="48" height="48" viewBox="0 0 24 24"><path d="M8 5v14l11-7z" fill="rgba(255,255,255,0.9)"></path></svg>`
)

// Expander turns stored post HTML into display HTML with media placeholders
// replaced by thumbnails. It is safe for concurrent use.
type Expander struct {
	newID func() string
}

// NewExpander returns an Expander that names thumbnails with random ids.
func NewExpander() *Expander {
	return &Expander{newID: randomID}
}

func randomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

var defaultExpander = NewExpander()

// Expand renders stored content with the default Expander.
func Expand(stored string) *forum.Fragment {
	return defaultExpander.Expand(stored)
}

// Expand strips editor state from stored, turns the editor's empty lines into
// <br> and replaces every placeholder in text with its thumbnail. Anything
// that is not a well-formed placeholder stays as it is.
func (e *Expander) Expand(stored string) *forum.Fragment {
	display := ForDisplay(stored)
	display = editorLineBreak.ReplaceAllString(display, "<br>")
	display = emptyBlock.ReplaceAllString(display, "<br>")

	frag := &forum.Fragment{Media: []forum.Media{}}
	used := make(map[string]bool)

	frag.HTML = replacePlaceholders(display, func(p Placeholder) string {
		m := p.media(e.newID)
		m.ID = uniqueID(m.ID, used)
		frag.Media = append(frag.Media, m)
		return renderMedia(m)
	})
	return frag
}

// uniqueID returns base, or base with the first free numeric suffix when a
// fragment repeats the same video.
func uniqueID(base string, used map[string]bool) string {
	id := base
	for n := 2; used[id]; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	used[id] = true
	return id
}

func renderMedia(m forum.Media) string {
	var b strings.Builder
	if m.Kind == forum.MediaImage {
		fmt.Fprintf(&b, `<img id="%s" src="%s" alt="%s" data-media-kind="image" style="%s">`,
			escapeAttr(m.ID), escapeAttr(m.Src), escapeAttr(m.Name), thumbnailImageStyle)
		return b.String()
	}

	fmt.Fprintf(&b, `<div id="%s" class="video-thumbnail-container" data-media-kind="video" title="%s" style="%s">`,
		escapeAttr(m.ID), escapeAttr(m.Name), thumbnailVideoStyle)
	fmt.Fprintf(&b, `<video muted preload="metadata" style="%s"><source src="%s" type="video/mp4"></video>`,
		videoElementStyle, escapeAttr(m.Src))
	fmt.Fprintf(&b, `<div class="video-overlay" style="%s">%s</div></div>`, videoOverlayStyle, playIcon)
	return b.String()
}
