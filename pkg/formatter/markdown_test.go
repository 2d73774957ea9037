package formatter

import (
	"strings"
	"testing"
)

const sampleGuide = "# Style Guide for https://example.com\n\n" +
	"Generated on: 2025-01-02 03:04:05\n\n" +
	"## Color Scheme\n\n" +
	"### Primary Colors\n- `#ff0000`\n- `rgb(0, 0, 0)`\n\n" +
	"### Background Colors\n- No background colors detected\n\n" +
	"## Typography\n\n" +
	"### Font Families\n- `Inter, sans-serif`\n\n" +
	"### Font Sizes\n- `16px`\n- `1.25rem`\n- `2em`\n\n" +
	"## Component Styles\n\n" +
	"### button-1\n- **class**: `btn primary`\n- **color**: `#fff`\n\n"

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleGuide)

	if sum.Title != "Style Guide for https://example.com" {
		t.Errorf("Title = %q", sum.Title)
	}

	want := []struct {
		name   string
		groups []Group
		total  int
	}{
		{"Color Scheme", []Group{{"Primary Colors", 2}, {"Background Colors", 0}}, 2},
		{"Typography", []Group{{"Font Families", 1}, {"Font Sizes", 3}}, 4},
		{"Component Styles", []Group{{"button-1", 2}}, 2},
	}

	if len(sum.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d: %+v", len(sum.Sections), len(want), sum.Sections)
	}

	for i, w := range want {
		got := sum.Sections[i]
		if got.Name != w.name {
			t.Errorf("section %d name = %q, want %q", i, got.Name, w.name)
		}
		if got.Total() != w.total {
			t.Errorf("section %q Total() = %d, want %d", got.Name, got.Total(), w.total)
		}
		if len(got.Groups) != len(w.groups) {
			t.Errorf("section %q has %d groups, want %d", got.Name, len(got.Groups), len(w.groups))
			continue
		}
		for j := range w.groups {
			if got.Groups[j] != w.groups[j] {
				t.Errorf("section %q group %d = %+v, want %+v", got.Name, j, got.Groups[j], w.groups[j])
			}
		}
	}
}

func TestSummarizeFreeText(t *testing.T) {
	sum := Summarize("just some text\n- a loose item\n")
	if sum.Title != "" || len(sum.Sections) != 0 {
		t.Errorf("Summarize() = %+v, want empty", sum)
	}
}

func TestRenderNoTTY(t *testing.T) {
	r := NewRenderer("notty")

	out, err := r.Render(sampleGuide, 80)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Primary Colors") {
		t.Errorf("Render() output misses heading text:\n%s", out)
	}

	// A second call at the same width reuses the renderer.
	first := r.tr
	if _, err := r.Render("# again", 80); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if r.tr != first {
		t.Error("renderer was rebuilt for an unchanged width")
	}
}
