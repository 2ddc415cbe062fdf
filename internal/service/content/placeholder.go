package content

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"forum/internal/domain/models/forum"
)

// Placeholder is a media reference stored as plain text inside post HTML.
// The three grammars are a storage format and must stay parseable.
type Placeholder interface {
	Format() forum.PlaceholderFormat
	media(newID func() string) forum.Media
}

// ImagePlaceholder is ![alt](src).
type ImagePlaceholder struct {
	Alt string
	Src string
}

// LegacyVideoPlaceholder is [Vídeo: name](src), written by older editors.
type LegacyVideoPlaceholder struct {
	Name string
	Src  string
}

// VideoPlaceholder is [VIDEO:id:url:filename] with url and filename
// percent-encoded.
type VideoPlaceholder struct {
	ID       string
	URL      string
	Filename string
}

func (ImagePlaceholder) Format() forum.PlaceholderFormat       { return forum.FormatImage }
func (LegacyVideoPlaceholder) Format() forum.PlaceholderFormat { return forum.FormatLegacyVideo }
func (VideoPlaceholder) Format() forum.PlaceholderFormat       { return forum.FormatVideo }

func (p ImagePlaceholder) media(newID func() string) forum.Media {
	return forum.Media{ID: "img_" + newID(), Kind: forum.MediaImage, Src: p.Src, Name: p.Alt, Placeholder: p.Format()}
}

func (p LegacyVideoPlaceholder) media(newID func() string) forum.Media {
	return forum.Media{ID: "video_" + newID(), Kind: forum.MediaVideo, Src: p.Src, Name: p.Name, Placeholder: p.Format()}
}

// The stored id keeps the thumbnail id stable across renders.
func (p VideoPlaceholder) media(func() string) forum.Media {
	return forum.Media{ID: "video_" + p.ID, Kind: forum.MediaVideo, Src: p.URL, Name: p.Filename, Placeholder: p.Format()}
}

// Fields never cross markup: a '<' in serialized HTML always opens a tag.
var (
	imagePattern       = regexp.MustCompile(`^!\[([^<\n]*?)\]\(([^<\n]*?)\)`)
	legacyVideoPattern = regexp.MustCompile(`^\[Vídeo: ([^<\n]*?)\]\(([^<\n]*?)\)`)
	videoPattern       = regexp.MustCompile(`^\[VIDEO:([^:<\n]+):([^:<\n]+):([^\]<\n]+)\]`)
)

// ParsePlaceholder decodes the placeholder at the start of s, trying the
// image, legacy video and video grammars in that order. It returns the
// placeholder and the number of bytes it spans, or nil when s does not start
// with a well-formed placeholder.
func ParsePlaceholder(s string) (Placeholder, int) {
	if m := imagePattern.FindStringSubmatch(s); m != nil {
		return ImagePlaceholder{Alt: html.UnescapeString(m[1]), Src: html.UnescapeString(m[2])}, len(m[0])
	}
	if m := legacyVideoPattern.FindStringSubmatch(s); m != nil {
		return LegacyVideoPlaceholder{Name: html.UnescapeString(m[1]), Src: html.UnescapeString(m[2])}, len(m[0])
	}
	if m := videoPattern.FindStringSubmatch(s); m != nil {
		rawURL, okURL := decodeComponent(html.UnescapeString(m[2]))
		filename, okName := decodeComponent(html.UnescapeString(m[3]))
		if !okURL || !okName {
			return nil, 0
		}
		return VideoPlaceholder{ID: html.UnescapeString(m[1]), URL: rawURL, Filename: filename}, len(m[0])
	}
	return nil, 0
}

// decodeComponent mirrors decodeURIComponent, which rejects malformed escapes
// and escapes that do not form valid UTF-8.
func decodeComponent(s string) (string, bool) {
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return "", false
	}
	return decoded, true
}

// replacePlaceholders copies fragment, calling replace for every placeholder
// found in text. Tags and comments are copied as they are, so attribute
// values are never rewritten.
func replacePlaceholders(fragment string, replace func(Placeholder) string) string {
	var b strings.Builder
	b.Grow(len(fragment))

	for i := 0; i < len(fragment); {
		switch fragment[i] {
		case '<':
			end := markupEnd(fragment, i)
			b.WriteString(fragment[i:end])
			i = end
			continue
		case '!', '[':
			if p, n := ParsePlaceholder(fragment[i:]); p != nil {
				b.WriteString(replace(p))
				i += n
				continue
			}
		}
		b.WriteByte(fragment[i])
		i++
	}
	return b.String()
}

// markupEnd returns the index just past the tag or comment starting at i.
func markupEnd(s string, i int) int {
	if strings.HasPrefix(s[i:], "<!--") {
		if end := strings.Index(s[i+4:], "-->"); end >= 0 {
			return i + 4 + end + 3
		}
		return len(s)
	}

	var quote byte
	for j := i + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case (c == '"' || c == '\'') && s[j-1] == '=':
			quote = c
		case c == '>':
			return j + 1
		}
	}
	return len(s)
}
