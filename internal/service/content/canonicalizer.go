package content

import (
	"golang.org/x/net/html"
)

const (
	// maxCanonicalPasses bounds the rule loop over one tree. Every productive
	// pass removes at least one node or attribute, so real input settles in
	// two or three.
	maxCanonicalPasses = 32

	// maxReparsePasses bounds the parse, transform, serialize loop. Misnested
	// markup (an <a> inside an <a>, an <li> inside an <li>) serializes to HTML
	// that parses into a different tree, so the output is fed back in until
	// it stops changing.
	maxReparsePasses = 8
)

// Canonicalize removes the noise a rich-text editor leaves behind: empty
// <font>, <span> and <div> wrappers and style attributes with no declarations.
// Line breaks and media survive. The result is stable under a second call.
//
// Input that cannot be parsed is returned unchanged.
func Canonicalize(fragment string) string {
	return untilStable(fragment, canonicalizeTree)
}

// untilStable applies fn until its output stops changing.
func untilStable(fragment string, fn func(string) string) string {
	out := fragment
	for pass := 0; pass < maxReparsePasses; pass++ {
		next := fn(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func canonicalizeTree(fragment string) string {
	if fragment == "" {
		return ""
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return fragment
	}

	for pass := 0; pass < maxCanonicalPasses; pass++ {
		if !canonicalPass(root) {
			break
		}
	}
	return renderChildren(root)
}

// canonicalPass applies each cleanup rule once, in order, and reports whether
// the tree changed.
func canonicalPass(root *html.Node) bool {
	changed := false

	for _, font := range elementsByTag(root, "font") {
		if isBlank(font) && !hasDescendant(font, "br") {
			detach(font)
			changed = true
		}
	}

	for _, span := range elementsByTag(root, "span") {
		if isBlank(span) && !hasDescendant(span, "img", "video", "br") {
			detach(span)
			changed = true
		}
	}

	// <div><br></div> is how the editor spells an empty line.
	for _, div := range elementsByTag(root, "div") {
		if isBlank(div) && !hasDescendant(div, "img", "video", "br") {
			detach(div)
			changed = true
		}
	}

	emptyStyle := map[string]bool{"style": true}
	eachElement(root, func(n *html.Node) {
		if style, ok := getAttr(n, "style"); ok && trimJSSpace(style) == "" {
			removeAttrs(n, emptyStyle)
			changed = true
		}
	})

	return changed
}
