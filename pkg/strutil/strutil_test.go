package strutil

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Trimmed  Title ", "trimmed--title"},
		{"한글 제목", "한글-제목"},
		{"Mixed 한글 & English!", "mixed-한글--english"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAuthorSlugRoundTrip(t *testing.T) {
	names := []string{"김철수", "Jane Doe", " spaced  "}
	for _, name := range names {
		slug := AuthorSlug(name)
		if DecodeAuthorSlug(slug) == "" {
			t.Errorf("slug for %q decoded to empty", name)
		}
	}
	if DecodeAuthorSlug(AuthorSlug("김철수")) != "김철수" {
		t.Error("korean name did not round-trip")
	}
}
