package nlp

import "strings"

const (
	// yesNoInputFuzzyThreshold applies to the whole trimmed input.
	yesNoInputFuzzyThreshold = 80
	// yesNoTokenFuzzyThreshold applies per token when counting leanings.
	yesNoTokenFuzzyThreshold = 70
)

var (
	yesWords = []string{
		"yes", "y", "yeah", "yep", "yup", "sure", "ok", "okay", "alright",
		"definitely", "absolutely", "certainly", "of course", "please",
		"correct", "right", "true", "confirm", "agreed",
	}
	noWords = []string{
		"no", "n", "nope", "nah", "not", "never", "none", "negative",
		"false", "incorrect", "wrong", "disagree", "refuse", "decline",
	}
)

// ExtractYesNo interprets text as an affirmative or negative answer.
// Exact list matches win over approximate ones; when neither the whole
// input nor the token tally is decisive, the answer is reported as absent.
func ExtractYesNo(text string) (value bool, ok bool) {
	clean, normOK := Normalize(text)
	if !normOK {
		return false, false
	}

	for _, w := range yesWords {
		if clean == w {
			return true, true
		}
	}
	for _, w := range noWords {
		if clean == w {
			return false, true
		}
	}

	for _, w := range yesWords {
		if Ratio(clean, w) >= yesNoInputFuzzyThreshold {
			return true, true
		}
	}
	for _, w := range noWords {
		if Ratio(clean, w) >= yesNoInputFuzzyThreshold {
			return false, true
		}
	}

	// Count per-token leanings; a tie stays ambiguous.
	var yesCount, noCount int
	for _, tok := range strings.Fields(clean) {
		if tokenMatchesAny(tok, yesWords) {
			yesCount++
		}
		if tokenMatchesAny(tok, noWords) {
			noCount++
		}
	}
	switch {
	case yesCount > noCount:
		return true, true
	case noCount > yesCount:
		return false, true
	default:
		return false, false
	}
}

func tokenMatchesAny(tok string, words []string) bool {
	for _, w := range words {
		if Ratio(tok, w) >= yesNoTokenFuzzyThreshold {
			return true
		}
	}
	return false
}
