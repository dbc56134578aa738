package markdown

import (
	"regexp"
	"strings"
)

var (
	// boldRe must run before italicRe so the double-asterisk pair is not
	// reinterpreted as two italic markers.
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	linkRe   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// CleanInline strips inline Markdown emphasis and link syntax without
// losing the underlying text: **bold** and *italic* lose their markers,
// [label](url) keeps only the label. The result is whitespace-trimmed.
func CleanInline(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
