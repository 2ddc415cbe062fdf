// Package formatting turns the lightweight markup used in curiosity texts
// into inline HTML.
package formatting

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

var (
	boldItalic = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	bold       = regexp.MustCompile(`\*\*(.*?)\*\*`)

	inlineTag = regexp.MustCompile(`</?(?:strong|em)>`)

	// A lone asterisk on each side. RE2 has no lookarounds.
	italic = func() *regexp2.Regexp {
		re := regexp2.MustCompile(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`, regexp2.None)
		re.MatchTimeout = 100 * time.Millisecond
		return re
	}()
)

// Render converts **bold**, *italic* and ***both*** to <strong>/<em>.
// Text is not HTML-escaped; it is only ever authored by admins.
func Render(text string) string {
	out := boldItalic.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	out = bold.ReplaceAllString(out, "<strong>$1</strong>")

	withItalic, err := italic.ReplaceFunc(out, func(m regexp2.Match) string {
		inner := m.GroupByNumber(1).String()
		if !wellNested(inner) {
			return m.String()
		}
		return "<em>" + inner + "</em>"
	}, -1, -1)
	if err != nil {
		return out
	}
	return withItalic
}

// wellNested reports whether every <strong> and <em> in s is closed inside s,
// so wrapping s in <em> cannot cross a tag boundary.
func wellNested(s string) bool {
	var open []string
	for _, tag := range inlineTag.FindAllString(s, -1) {
		if tag[1] != '/' {
			open = append(open, tag[1:len(tag)-1])
			continue
		}
		if len(open) == 0 || open[len(open)-1] != tag[2:len(tag)-1] {
			return false
		}
		open = open[:len(open)-1]
	}
	return len(open) == 0
}
