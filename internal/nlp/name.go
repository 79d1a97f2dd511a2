package nlp

import (
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// nameStoplist holds capitalized words that must not be mistaken for names
// by the title-case fallback.
var nameStoplist = map[string]struct{}{
	"I": {}, "My": {}, "Me": {}, "Hi": {}, "Hello": {}, "Hey": {},
	"Sir": {}, "Madam": {}, "Mr": {}, "Mrs": {}, "Ms": {},
}

// ExtractName pulls a person name out of free text. Named-entity
// recognition runs first; if it finds no PERSON entity, a title-case token
// scan is used as fallback. Returns false when neither strategy yields a
// candidate.
func ExtractName(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	if doc, err := prose.NewDocument(trimmed); err == nil {
		for _, ent := range doc.Entities() {
			if ent.Label == "PERSON" {
				if name := strings.TrimSpace(ent.Text); name != "" {
					return name, true
				}
			}
		}
	}

	// Fallback: first title-cased alphabetic token that is longer than one
	// character and not a greeting or honorific.
	for _, word := range strings.Fields(trimmed) {
		clean := cleanToken(word)
		if len(clean) < 2 {
			continue
		}
		if _, skip := nameStoplist[clean]; skip {
			continue
		}
		if isTitleCasedWord(clean) {
			return clean, true
		}
	}

	return "", false
}

func isTitleCasedWord(s string) bool {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
		} else if !unicode.IsLower(r) {
			return false
		}
	}
	return s != ""
}
