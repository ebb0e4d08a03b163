package core

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
)

const (
	excerptLength  = 160
	wordsPerMinute = 200
)

var (
	htmlTagRegex   = regexp.MustCompile(`<[^>]*>`)
	codeFenceRegex = regexp.MustCompile("(?s)```.*?```")
	headingRegex   = regexp.MustCompile(`^#+\s*`)
)

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// truncate cuts text to at most n runes. No ellipsis is added.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// deriveExcerpt returns the first paragraph of content, without leading
// heading markers, cut at [excerptLength] runes.
func deriveExcerpt(content string) string {
	text := strings.TrimLeftFunc(normalizeNewlines(content), unicode.IsSpace)
	if i := strings.Index(text, "\n\n"); i != -1 {
		text = text[:i]
	}

	text = headingRegex.ReplaceAllString(text, "")
	return truncate(strings.TrimSpace(text), excerptLength)
}

// readTime estimates the reading time of content, ignoring HTML-like tags and
// fenced code blocks.
func readTime(content string) string {
	text := htmlTagRegex.ReplaceAllString(content, "")
	text = codeFenceRegex.ReplaceAllString(text, "")

	minutes := int(math.Ceil(float64(len(strings.Fields(text))) / wordsPerMinute))
	return fmt.Sprintf("%d min read", max(minutes, 1))
}

// wordCount counts the whitespace separated tokens of the raw content,
// markup and code included.
func wordCount(content string) int {
	return len(strings.Fields(content))
}
