package sanitizer

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// editorStyles are the inline style properties the post editor writes.
var editorStyles = []string{
	"color", "background-color", "font-size", "font-weight", "font-style", "font-family",
	"text-decoration", "text-align", "vertical-align",
	"display", "position", "width", "height", "max-width", "max-height",
	"margin", "padding", "border", "border-radius", "cursor", "object-fit", "overflow",
}

var classList = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

// HTMLSanitizer removes scripts, event handlers and unsafe URLs from post HTML
// while keeping what the editor produces: formatting, font tags, inline
// styles, images and video previews.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates the sanitizer used on the save path.
func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()

	// Pasted images arrive as data URIs
	policy.AllowDataURIImages()

	policy.AllowElements("font", "u", "span", "div", "video", "source")
	policy.AllowAttrs("color", "face", "size").OnElements("font")
	policy.AllowAttrs("class").Matching(classList).OnElements("div", "span", "img")
	policy.AllowAttrs("muted", "controls", "preload").OnElements("video")
	policy.AllowAttrs("src").OnElements("video", "source")
	policy.AllowAttrs("type").Matching(regexp.MustCompile(`^video/[a-z0-9.+-]+$`)).OnElements("source")
	policy.AllowStyles(editorStyles...).Globally()

	return &HTMLSanitizer{policy: policy}
}

// Sanitize returns html with everything outside the policy removed.
func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
