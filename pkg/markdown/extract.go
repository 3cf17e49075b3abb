package markdown

import "regexp"

// Matches the image embed syntax ![alt](url), including images wrapped in
// links like [![alt](url)](target).
var imageURLPattern = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// ExtractImageURLs returns every image URL referenced in the given markdown
// text, deduplicated, in first-seen order. Malformed or absent syntax simply
// yields no matches. URLs are returned verbatim; no check is made that they
// point at our own storage.
func ExtractImageURLs(content string) []string {
	matches := imageURLPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		url := m[1]
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}
	return urls
}
