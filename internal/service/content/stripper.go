package content

import (
	"regexp"

	"golang.org/x/net/html"
)

// jsSpace is the \s class of the editor's regular expressions. RE2's \s is
// ASCII only.
const jsSpace = `[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	whitespaceRun      = regexp.MustCompile(jsSpace + `+`)
	whitespaceBeforeGT = regexp.MustCompile(jsSpace + `+>`)

	// Used only when the fragment cannot be parsed.
	editorAttrPattern = regexp.MustCompile(`\s*data-(?:edit-mode|click-handled|has-delete)=(?:"[^"]*"|'[^']*'|[^\s>]*)`)

	deleteButtonTitle = regexp.MustCompile(`^(?i:excluir|delete)\s+\S`)
	deleteButtonWord  = regexp.MustCompile(`(?i)excluir|delete`)
	relativePosition  = regexp.MustCompile(`position\s*:\s*relative`)
)

// editorAttributes are set by the editor while a post is being written and
// mean nothing outside of it.
var editorAttributes = map[string]bool{
	"data-edit-mode":     true,
	"data-click-handled": true,
	"data-has-delete":    true,
}

// ForSaving strips editor affordances from HTML that is about to be stored.
func ForSaving(fragment string) string {
	return stripEditorState(fragment)
}

// ForDisplay strips editor affordances from stored HTML before it is shown.
// Older posts were saved before the save path stripped everything, so display
// runs the same rules.
func ForDisplay(fragment string) string {
	return stripEditorState(fragment)
}

func stripEditorState(fragment string) string {
	return untilStable(fragment, stripTree)
}

func stripTree(fragment string) string {
	if fragment == "" {
		return ""
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return collapseWhitespace(editorAttrPattern.ReplaceAllString(fragment, ""))
	}

	eachElement(root, func(n *html.Node) {
		removeAttrs(n, editorAttributes)
	})

	for _, button := range elementsByTag(root, "button") {
		if title, ok := getAttr(button, "title"); ok && deleteButtonTitle.MatchString(title) {
			detach(button)
		}
	}

	eachElement(root, func(n *html.Node) {
		if !hasClass(n, "video-preview") {
			return
		}
		for _, button := range elementsByTag(n, "button") {
			if title, ok := getAttr(button, "title"); ok && deleteButtonWord.MatchString(title) {
				detach(button)
			}
		}
	})

	// Innermost wrappers first, so a wrapper around a wrapper also unwraps.
	divs := elementsByTag(root, "div")
	for i := len(divs) - 1; i >= 0; i-- {
		unwrapImage(divs[i])
	}

	return collapseWhitespace(renderChildren(root))
}

// unwrapImage replaces a relatively positioned wrapper holding a single image
// with the image itself.
func unwrapImage(div *html.Node) {
	if div.Parent == nil {
		return
	}
	style, ok := getAttr(div, "style")
	if !ok || !relativePosition.MatchString(style) {
		return
	}

	var img *html.Node
	for c := div.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if c.Data != "img" || img != nil {
				return
			}
			img = c
		case html.TextNode:
			if trimJSSpace(c.Data) != "" {
				return
			}
		case html.CommentNode:
		default:
			return
		}
	}
	if img == nil {
		return
	}

	div.RemoveChild(img)
	div.Parent.InsertBefore(img, div)
	div.Parent.RemoveChild(div)
}

func collapseWhitespace(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	return whitespaceBeforeGT.ReplaceAllString(s, ">")
}
