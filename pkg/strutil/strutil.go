package strutil

import (
	"net/url"
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9가-힣\-]+`)

// AuthorSlug converts a display name to a URL-safe slug. Korean names are
// kept as-is and percent-encoded by the router when rendered.
func AuthorSlug(displayName string) string {
	return url.PathEscape(strings.TrimSpace(displayName))
}

func DecodeAuthorSlug(slug string) string {
	decoded, err := url.PathUnescape(slug)
	if err != nil {
		return slug
	}
	return decoded
}

// Slugify normalizes a free-form title into a post slug. Spaces become
// hyphens; everything outside [a-z0-9], hangul and hyphen is dropped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.Trim(s, "-")
	return s
}
