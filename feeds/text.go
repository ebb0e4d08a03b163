package feeds

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const summaryLength = 300

var (
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)

	codeFenceRegex  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRegex = regexp.MustCompile("`[^`]*`")
	linkRegex       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisRegex   = regexp.MustCompile(`[#*_~]`)
)

// Escape escapes the five XML special characters. Invalid UTF-8 is replaced
// with U+FFFD and characters XML 1.0 does not allow are dropped. Every piece
// of text placed in a generated document goes through it.
func Escape(s string) string {
	s = strings.ToValidUTF8(s, string(utf8.RuneError))
	s = strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
	return xmlEscaper.Replace(s)
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= utf8.MaxRune)
}

// Strip removes Markdown syntax from content: code blocks and inline code are
// dropped, links are replaced by their text and heading, emphasis and
// strike-through markers are deleted.
func Strip(content string) string {
	content = codeFenceRegex.ReplaceAllString(content, "")
	content = inlineCodeRegex.ReplaceAllString(content, "")
	content = linkRegex.ReplaceAllString(content, "${1}")
	content = emphasisRegex.ReplaceAllString(content, "")
	return strings.TrimSpace(content)
}

// Summary is the first 300 characters of the stripped content, followed by
// an ellipsis.
func Summary(content string) string {
	runes := []rune(Strip(content))
	if len(runes) > summaryLength {
		runes = runes[:summaryLength]
	}
	return string(runes) + "..."
}
