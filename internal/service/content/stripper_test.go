package content

import (
	"strings"
	"testing"
)

func TestForSaving(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unwraps image delete container",
			in:   `<div style="position:relative"><img src="a.png"><button title="Excluir imagem">🗑️</button></div>`,
			want: `<img src="a.png">`,
		},
		{
			name: "unwraps editor image wrapper with state attributes",
			in: `<div class="image-container" style="display: inline-block; position: relative; margin: 0 8px 8px 0;" data-edit-mode="true">` +
				`<img src="a.png" data-has-delete="true" data-click-handled="true">` +
				`<button title="Excluir imagem" style="position: absolute">🗑️</button></div>`,
			want: `<img src="a.png">`,
		},
		{
			name: "removes edit mode attribute in either quote style",
			in:   `<p data-edit-mode='false'>Hi</p><p data-edit-mode="true">There</p>`,
			want: `<p>Hi</p><p>There</p>`,
		},
		{
			name: "collapses whitespace",
			in:   "<p>a \n\n  b</p>\n<p>c</p>",
			want: "<p>a b</p> <p>c</p>",
		},
		{
			name: "keeps unrelated buttons",
			in:   `<button title="Enviar">Enviar</button>`,
			want: `<button title="Enviar">Enviar</button>`,
		},
		{
			name: "english delete button removed",
			in:   `x<button title="Delete image">🗑️</button>`,
			want: `x`,
		},
		{
			name: "relative wrapper with two images kept",
			in:   `<div style="position: relative"><img src="a.png"><img src="b.png"></div>`,
			want: `<div style="position: relative"><img src="a.png"><img src="b.png"></div>`,
		},
		{
			name: "static wrapper kept",
			in:   `<div style="display: block"><img src="a.png"></div>`,
			want: `<div style="display: block"><img src="a.png"></div>`,
		},
		{
			name: "nested relative wrappers unwrap fully",
			in:   `<div style="position:relative"><div style="position: relative"><img src="x.png"></div></div>`,
			want: `<img src="x.png">`,
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForSaving(tt.in); got != tt.want {
				t.Errorf("ForSaving() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForSaving_VideoPreviewKeepsSiblings(t *testing.T) {
	in := `<div class="video-preview"><video src="v.mp4" muted=""></video>` +
		`<div class="play-overlay">▶</div>` +
		`<button title="Clique para excluir">🗑️</button></div>` +
		`<button title="Clique para excluir">fora</button>`

	got := ForSaving(in)

	want := `<div class="video-preview"><video src="v.mp4" muted=""></video><div class="play-overlay">▶</div></div>` +
		`<button title="Clique para excluir">fora</button>`
	if got != want {
		t.Errorf("ForSaving() = %q, want %q", got, want)
	}
}

func TestForSaving_Idempotent(t *testing.T) {
	for _, in := range editorSamples {
		once := ForSaving(in)
		if twice := ForSaving(once); twice != once {
			t.Errorf("ForSaving not idempotent for %q:\n once:  %q\n twice: %q", in, once, twice)
		}
	}
}

func TestForDisplay_MatchesForSaving(t *testing.T) {
	for _, in := range editorSamples {
		if ForDisplay(in) != ForSaving(in) {
			t.Errorf("ForDisplay and ForSaving differ for %q", in)
		}
	}
}

func TestForSaving_MalformedInputPassesThrough(t *testing.T) {
	in := `<p>unclosed <b>bold <i>italic</p> after </div></span>`

	got := ForSaving(in)

	for _, text := range []string{"unclosed", "bold", "italic", "after"} {
		if !strings.Contains(got, text) {
			t.Errorf("ForSaving(%q) = %q, lost %q", in, got, text)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := collapseWhitespace("<p  class=\"a\"\n>x \u00a0 \t y</p >")
	want := `<p class="a">x y</p>`
	if got != want {
		t.Errorf("collapseWhitespace() = %q, want %q", got, want)
	}
}

func TestFallbackAttributePattern(t *testing.T) {
	in := `<img data-edit-mode="true" src="a.png" data-click-handled='1' data-has-delete=true>`
	got := collapseWhitespace(editorAttrPattern.ReplaceAllString(in, ""))
	if got != `<img src="a.png">` {
		t.Errorf("got %q", got)
	}
}
