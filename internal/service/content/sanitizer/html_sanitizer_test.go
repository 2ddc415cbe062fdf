package sanitizer

import (
	"strings"
	"testing"
)

func TestHTMLSanitizer_Sanitize(t *testing.T) {
	s := NewHTMLSanitizer()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "removes script",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			contains: []string{"<p>Hello</p>"},
			excludes: []string{"<script", "alert"},
		},
		{
			name:     "removes event handlers",
			input:    `<img src="a.png" onerror="alert(1)">`,
			contains: []string{`src="a.png"`},
			excludes: []string{"onerror"},
		},
		{
			name:     "removes javascript urls",
			input:    `<a href="javascript:alert(1)">x</a>`,
			excludes: []string{"javascript:"},
		},
		{
			name:     "keeps font tags from the editor",
			input:    `<font color="#ff0000" face="Arial">red</font>`,
			contains: []string{"<font", `color="#ff0000"`, "red"},
		},
		{
			name:     "keeps video previews",
			input:    `<div class="video-preview"><video muted preload="metadata"><source src="https://x/v.mp4" type="video/mp4"></video></div>`,
			contains: []string{`class="video-preview"`, "<video", "<source", `type="video/mp4"`},
		},
		{
			name:     "keeps data uri images",
			input:    `<img src="data:image/png;base64,iVBORw0KGgo=">`,
			contains: []string{"data:image/png;base64"},
		},
		{
			name:     "keeps editor text styles",
			input:    `<span style="color: red">x</span>`,
			contains: []string{"color: red"},
		},
		{
			name:     "drops classes with odd characters",
			input:    `<div class="a&quot;b">x</div>`,
			excludes: []string{"class="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize() = %q, want it to contain %q", got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("Sanitize() = %q, want no %q", got, bad)
				}
			}
		})
	}
}
