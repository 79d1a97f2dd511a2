// Package nlp turns free-text guest messages into typed reservation fields.
// Every extractor is a pure function: deterministic for a given input, no
// shared state, no I/O.
package nlp

import "strings"

// Normalize trims and case-folds raw input. It fails only for empty or
// whitespace-only text.
func Normalize(text string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return "", false
	}
	return s, true
}

// tokenPunct is stripped from the edges of tokens before matching.
const tokenPunct = `.,!?;:"()[]{}`

func cleanToken(tok string) string {
	return strings.Trim(tok, tokenPunct)
}
