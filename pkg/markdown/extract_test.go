package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractImageURLs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "single image",
			content: "intro\n\n![cover](https://x/img1.png)\n\noutro",
			want:    []string{"https://x/img1.png"},
		},
		{
			name:    "multiple images keep first-seen order",
			content: "![b](https://x/b.png) text ![a](https://x/a.png)",
			want:    []string{"https://x/b.png", "https://x/a.png"},
		},
		{
			name:    "duplicates removed",
			content: "![a](https://x/a.png)\n![again](https://x/a.png)",
			want:    []string{"https://x/a.png"},
		},
		{
			name:    "linked image",
			content: "[![thumb](https://x/t.png)](https://example.com/full)",
			want:    []string{"https://x/t.png"},
		},
		{
			name:    "empty alt text",
			content: "![](https://x/no-alt.png)",
			want:    []string{"https://x/no-alt.png"},
		},
		{
			name:    "plain link is not an image",
			content: "[doc](https://x/doc.pdf)",
			want:    nil,
		},
		{
			name:    "empty url skipped",
			content: "![broken]()",
			want:    nil,
		},
		{
			name:    "no markdown at all",
			content: "그냥 텍스트입니다. just text.",
			want:    nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "unclosed syntax yields nothing",
			content: "![dangling](https://x/a.png",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractImageURLs(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractImageURLs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractImageURLs_LargeContent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		b.WriteString("paragraph text without images\n\n")
	}
	b.WriteString("![last](https://x/last.png)\n")

	got := ExtractImageURLs(b.String())
	if len(got) != 1 || got[0] != "https://x/last.png" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestRender(t *testing.T) {
	out, err := Render("# Title\n\n**bold** and ![img](https://x/a.png)")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<h1", "<strong>bold</strong>", `<img src="https://x/a.png"`} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, out)
		}
	}
}
