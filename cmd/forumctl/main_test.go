package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forum/internal/domain/models/forum"
)

type stubContent struct{}

func (stubContent) Prepare(raw string) string { return "prepared:" + raw }

func (stubContent) Render(stored string) *forum.Fragment {
	return &forum.Fragment{HTML: "<p>" + stored + "</p>", Media: []forum.Media{}}
}

func (stubContent) Excerpt(stored string, maxRunes int) string {
	if len(stored) > maxRunes {
		return stored[:maxRunes]
	}
	return stored
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := newRootCmd(stubContent{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("forumctl %v: %v", args, err)
	}
	return out.String()
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"prepare from stdin", "<b>x</b>\n", []string{"prepare"}, "prepared:<b>x</b>\n"},
		{"prepare dash reads stdin", "a", []string{"prepare", "-"}, "prepared:a\n"},
		{"render html", "x", []string{"render"}, "<p>x</p>\n"},
		{"excerpt length", "abcdef", []string{"excerpt", "-n", "3"}, "abc\n"},
		{"format", "", []string{"format", "**oi**"}, "<strong>oi</strong>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(t, tt.stdin, tt.args...); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_JSON(t *testing.T) {
	out := run(t, "x", "render", "--json")

	var frag forum.Fragment
	if err := json.Unmarshal([]byte(out), &frag); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if frag.HTML != "<p>x</p>" {
		t.Errorf("html = %q, want %q", frag.HTML, "<p>x</p>")
	}
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.html")
	if err := os.WriteFile(path, []byte("<p>file</p>\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := run(t, "ignored", "prepare", path); got != "prepared:<p>file</p>\n" {
		t.Errorf("output = %q", got)
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	cmd := newRootCmd(stubContent{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"prepare", filepath.Join(t.TempDir(), "nope.html")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
