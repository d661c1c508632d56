package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	// Dimension expressions like `4" x 4"`, `2’x6` or `3 × 3` all collapse
	// into the canonical `<digits>x<digits>` token so they compare equal.
	dimensionRegex = regexp.MustCompile(`(\d+)\s*["’]?\s*[xX×]\s*(\d+)`)
	htmlTagRegex   = regexp.MustCompile(`<[^>]*>`)

	quoteReplacer = strings.NewReplacer(
		`"`, "",
		"'", "",
		"’", "",
		"“", "",
		"”", "",
		"×", "x",
	)
)

// Normalize canonicalizes free text for matching. It is deterministic and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = whitespaceRegex.ReplaceAllString(text, " ")
	text = dimensionRegex.ReplaceAllString(text, "${1}x${2}")
	text = strings.ToLower(text)
	text = quoteReplacer.Replace(text)
	return strings.TrimSpace(text)
}

// Keywords splits a message into normalized query keywords.
func Keywords(text string) []string {
	return strings.Fields(Normalize(text))
}

// SplitTags splits a Shopify comma-separated tag string into trimmed,
// lower-cased tags. Empty entries are dropped.
func SplitTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.ToLower(strings.TrimSpace(p))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// StripHTML removes markup tags and collapses the remaining whitespace so
// body_html fields can be matched and summarized as plain text.
func StripHTML(html string) string {
	text := htmlTagRegex.ReplaceAllString(html, " ")
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}

// Truncate caps text at maxBytes without splitting a UTF-8 sequence; the cut
// backs up to the nearest rune boundary.
func Truncate(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
