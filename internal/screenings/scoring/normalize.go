package scoring

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces every character outside [a-z0-9\s]
// with a space and collapses whitespace runs to single spaces. Empty input
// yields empty output.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	cleaned := nonAlnumRe.ReplaceAllString(lowered, " ")
	collapsed := whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(collapsed)
}
