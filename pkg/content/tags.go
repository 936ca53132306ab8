// Package content holds the pure memo-text transforms: tag handling, title
// derivation, timestamp formatting and preview assembly. No I/O happens here.
package content

import (
	"regexp"
	"strings"
)

// A tag is "#" followed by word characters or CJK ideographs.
var tagRe = regexp.MustCompile(`#[\w\x{4e00}-\x{9fa5}]+`)

var spaceRe = regexp.MustCompile(`\s+`)

// ExtractTags returns the tags found in content without the leading "#",
// deduplicated in first-seen order.
func ExtractTags(text string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, m := range tagRe.FindAllString(text, -1) {
		tag := strings.TrimPrefix(m, "#")
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// RemoveTags strips all tag occurrences, collapses whitespace runs to a single
// space and trims the ends.
func RemoveTags(text string) string {
	stripped := tagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
}

const (
	titleMaxRunes  = 20
	titleKeepRunes = 17
)

// Title derives a display title: tag-stripped content, truncated to 17 runes
// plus an ellipsis when longer than 20 runes.
func Title(text string) string {
	title := RemoveTags(text)
	runes := []rune(title)
	if len(runes) > titleMaxRunes {
		return string(runes[:titleKeepRunes]) + "..."
	}
	return title
}
