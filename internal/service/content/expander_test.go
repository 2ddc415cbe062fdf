package content

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"forum/internal/domain/models/forum"
)

func fixedIDs() *Expander {
	return &Expander{newID: func() string { return "abc" }}
}

type lightboxCall struct {
	src, alt string
	isVideo  bool
}

func recorder(calls *[]lightboxCall) forum.Lightbox {
	return forum.LightboxFunc(func(src, alt string, isVideo bool) {
		*calls = append(*calls, lightboxCall{src, alt, isVideo})
	})
}

// findElement parses fragment and returns the first element with the id.
func findElement(t *testing.T, fragment, id string) *html.Node {
	t.Helper()
	root, err := parseFragment(fragment)
	if err != nil {
		t.Fatalf("parse rendered fragment: %v", err)
	}
	var found *html.Node
	eachElement(root, func(n *html.Node) {
		if v, _ := getAttr(n, "id"); v == id && found == nil {
			found = n
		}
	})
	if found == nil {
		t.Fatalf("no element with id %q in %q", id, fragment)
	}
	return found
}

func TestExpand_Image(t *testing.T) {
	frag := fixedIDs().Expand("![cat](http://x/cat.png)")

	img := findElement(t, frag.HTML, "img_abc")
	if img.Data != "img" {
		t.Fatalf("expanded element is <%s>, want <img>", img.Data)
	}
	if src, _ := getAttr(img, "src"); src != "http://x/cat.png" {
		t.Errorf("src = %q", src)
	}
	if alt, _ := getAttr(img, "alt"); alt != "cat" {
		t.Errorf("alt = %q", alt)
	}

	var calls []lightboxCall
	if !frag.Open("img_abc", recorder(&calls)) {
		t.Fatal("Open() returned false for the expanded image")
	}
	if want := (lightboxCall{"http://x/cat.png", "cat", false}); len(calls) != 1 || calls[0] != want {
		t.Errorf("lightbox calls = %+v, want %+v", calls, want)
	}
}

func TestExpand_VideoFormats(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		id     string
		want   lightboxCall
	}{
		{
			name:   "legacy",
			stored: "[Vídeo: clip](http://x/c.mp4)",
			id:     "video_abc",
			want:   lightboxCall{"http://x/c.mp4", "clip", true},
		},
		{
			name:   "current",
			stored: "[VIDEO:42:http%3A%2F%2Fx%2Fc.mp4:clip.mp4]",
			id:     "video_42",
			want:   lightboxCall{"http://x/c.mp4", "clip.mp4", true},
		},
		{
			name:   "current with encoded spaces",
			stored: "<p>[VIDEO:7:https%3A%2F%2Fcdn%2Fmeu%20video.mp4:meu%20video.mp4]</p>",
			id:     "video_7",
			want:   lightboxCall{"https://cdn/meu video.mp4", "meu video.mp4", true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := fixedIDs().Expand(tt.stored)

			box := findElement(t, frag.HTML, tt.id)
			if !hasClass(box, "video-thumbnail-container") {
				t.Errorf("preview box missing class: %q", frag.HTML)
			}
			if !hasDescendant(box, "video") {
				t.Errorf("preview box has no <video>: %q", frag.HTML)
			}

			var calls []lightboxCall
			if !frag.Open(tt.id, recorder(&calls)) {
				t.Fatal("Open() returned false")
			}
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("lightbox calls = %+v, want %+v", calls, tt.want)
			}
		})
	}
}

func TestExpand_UnknownIDIsInert(t *testing.T) {
	frag := fixedIDs().Expand("![cat](cat.png)")

	var calls []lightboxCall
	if frag.Open("img_missing", recorder(&calls)) {
		t.Error("Open() returned true for an unknown id")
	}
	if len(calls) != 0 {
		t.Errorf("lightbox called for unknown id: %+v", calls)
	}
}

func TestExpand_MalformedPlaceholdersStayLiteral(t *testing.T) {
	tests := []string{
		"[VIDEO:1:%E0%A4%A:x.mp4]",
		"[VIDEO:1:only-two]",
		"![alt](unclosed",
		"[Vídeo: sem link]",
		"[video:1:a:b]",
	}

	for _, in := range tests {
		frag := fixedIDs().Expand(in)
		if len(frag.Media) != 0 {
			t.Errorf("Expand(%q) expanded %+v", in, frag.Media)
		}
		if frag.HTML != ForDisplay(in) {
			t.Errorf("Expand(%q).HTML = %q, want input unchanged", in, frag.HTML)
		}
	}
}

func TestExpand_DuplicateIDsGetSuffix(t *testing.T) {
	frag := fixedIDs().Expand("[VIDEO:7:a.mp4:a.mp4] [VIDEO:7:a.mp4:a.mp4] ![x](x.png) ![y](y.png)")

	var ids []string
	for _, m := range frag.Media {
		ids = append(ids, m.ID)
	}
	want := []string{"video_7", "video_7_2", "img_abc", "img_abc_2"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestExpand_Precedence(t *testing.T) {
	frag := fixedIDs().Expand("![a [Vídeo: b](c.mp4)](d.png)")

	if len(frag.Media) != 1 || frag.Media[0].Placeholder != forum.FormatImage {
		t.Fatalf("media = %+v, want a single image", frag.Media)
	}
	if frag.Media[0].Src != "c.mp4" || frag.Media[0].Name != "a [Vídeo: b" {
		t.Errorf("image = %+v", frag.Media[0])
	}
}

func TestExpand_LineBreaks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a<div><br></div>b", "a<br>b"},
		{"a<div><br/></div>b", "a<br>b"},
		{"a<div></div>b", "a<br>b"},
		{"a<div>   </div>b", "a<br>b"},
	}

	for _, tt := range tests {
		if got := fixedIDs().Expand(tt.in).HTML; got != tt.want {
			t.Errorf("Expand(%q).HTML = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpand_AttributesAreNotRewritten(t *testing.T) {
	in := `<a title="![x](y.png)" href="/t">![x](y.png)</a>`

	frag := fixedIDs().Expand(in)

	if !strings.HasPrefix(frag.HTML, `<a title="![x](y.png)" href="/t"><img id="img_abc"`) {
		t.Errorf("HTML = %q", frag.HTML)
	}
	if len(frag.Media) != 1 {
		t.Errorf("media = %+v, want one image from the text", frag.Media)
	}
}

func TestExpand_EscapesAttributeValues(t *testing.T) {
	frag := fixedIDs().Expand(`![x" onerror="alert(1)](a.png?a=1&amp;b=2)`)

	if strings.Contains(frag.HTML, `onerror="`) {
		t.Errorf("alt text broke out of the attribute: %q", frag.HTML)
	}
	img := findElement(t, frag.HTML, "img_abc")
	if alt, _ := getAttr(img, "alt"); alt != `x" onerror="alert(1)` {
		t.Errorf("alt = %q", alt)
	}
	if src, _ := getAttr(img, "src"); src != "a.png?a=1&b=2" {
		t.Errorf("src = %q", src)
	}
	if frag.Media[0].Src != "a.png?a=1&b=2" {
		t.Errorf("registry src = %q", frag.Media[0].Src)
	}
}

func TestExpand_StripsEditorStateFirst(t *testing.T) {
	stored := `<div style="position: relative" data-edit-mode="true"><img src="a.png"><button title="Excluir imagem">🗑️</button></div>`

	frag := fixedIDs().Expand(stored)

	if frag.HTML != `<img src="a.png">` {
		t.Errorf("HTML = %q", frag.HTML)
	}
}

func TestParsePlaceholder(t *testing.T) {
	p, n := ParsePlaceholder("[VIDEO:9:u%2F1:f%20g.mp4] rest")
	v, ok := p.(VideoPlaceholder)
	if !ok {
		t.Fatalf("ParsePlaceholder() = %T, want VideoPlaceholder", p)
	}
	if v != (VideoPlaceholder{ID: "9", URL: "u/1", Filename: "f g.mp4"}) {
		t.Errorf("got %+v", v)
	}
	if n != len("[VIDEO:9:u%2F1:f%20g.mp4]") {
		t.Errorf("consumed %d bytes", n)
	}

	if p, _ := ParsePlaceholder("plain"); p != nil {
		t.Errorf("ParsePlaceholder(plain) = %+v", p)
	}
}
