// Package normalize recovers intended source text from a raw completion by
// stripping conversational markdown wrapping. Normalization is a pure,
// total function: it never fails and may return an empty string, which
// callers must check for explicitly.
package normalize

import "strings"

// Kind is the expected artifact kind of a completion.
type Kind string

const (
	Markup     Kind = "markup"
	Script     Kind = "script"
	Stylesheet Kind = "stylesheet"
)

// fenceTags lists known fence language tags per kind, tried in order. The
// bare fence is always tried last.
var fenceTags = map[Kind][]string{
	Markup:     {"tsx", "typescript", "jsx", "javascript", "html", "ts", "js"},
	Script:     {"typescript", "javascript", "ts", "js"},
	Stylesheet: {"css", "scss"},
}

// Normalize strips a leading fence marker (trying each known language tag
// for the kind, then a bare fence) and a trailing fence, then trims
// surrounding whitespace. Idempotent: already-clean text is returned
// unchanged.
func Normalize(text string, kind Kind) string {
	text = strings.TrimSpace(text)

	for _, tag := range fenceTags[kind] {
		marker := "```" + tag
		if strings.HasPrefix(text, marker) {
			text = strings.TrimPrefix(text, marker)
			text = strings.TrimSuffix(strings.TrimSpace(text), "```")
			return strings.TrimSpace(text)
		}
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		return strings.TrimSpace(text)
	}
	return text
}
