package forum

// MediaKind tells the lightbox how to present an expanded placeholder.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// PlaceholderFormat names the stored grammar a media element was expanded from.
type PlaceholderFormat string

const (
	FormatImage       PlaceholderFormat = "image"        // ![alt](src)
	FormatLegacyVideo PlaceholderFormat = "legacy_video" // [Vídeo: name](src)
	FormatVideo       PlaceholderFormat = "video"        // [VIDEO:id:url:filename]
)

// Media is one expanded placeholder inside a rendered fragment.
type Media struct {
	ID          string            `json:"id"`
	Kind        MediaKind         `json:"kind"`
	Src         string            `json:"src"`
	Name        string            `json:"name"`
	Placeholder PlaceholderFormat `json:"placeholder"`
}

// Fragment is display-ready HTML plus the registry of media elements in it,
// keyed by their DOM id.
type Fragment struct {
	HTML  string  `json:"html"`
	Media []Media `json:"media"`
}

// Lightbox shows a single image or video full size.
type Lightbox interface {
	Open(src, alt string, isVideo bool)
}

// LightboxFunc adapts a function to the Lightbox interface.
type LightboxFunc func(src, alt string, isVideo bool)

func (f LightboxFunc) Open(src, alt string, isVideo bool) { f(src, alt, isVideo) }

// Lookup finds the media element with the given DOM id.
func (f *Fragment) Lookup(id string) (Media, bool) {
	if f == nil {
		return Media{}, false
	}
	for _, m := range f.Media {
		if m.ID == id {
			return m, true
		}
	}
	return Media{}, false
}

// Open handles a click on the element with the given id. It opens the
// lightbox and returns true when the id belongs to an expanded placeholder;
// clicks anywhere else do nothing.
func (f *Fragment) Open(id string, lb Lightbox) bool {
	m, ok := f.Lookup(id)
	if !ok || lb == nil {
		return false
	}
	lb.Open(m.Src, m.Name, m.Kind == MediaVideo)
	return true
}
