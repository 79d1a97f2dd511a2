package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// guestFuzzyThreshold is the minimum similarity for an approximate
	// number-word match.
	guestFuzzyThreshold = 80

	minGuests = 1
	maxGuests = 10
)

var (
	soloPhrases = []string{"just me", "one person"}
	soloWords   = map[string]struct{}{"me": {}, "myself": {}, "solo": {}, "alone": {}}

	digitRun = regexp.MustCompile(`\d+`)

	// numberWords is scanned in a fixed order so fuzzy matching stays
	// deterministic.
	numberWords = []struct {
		word  string
		value int
	}{
		{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
		{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
		{"a", 1}, {"an", 1}, {"single", 1}, {"couple", 2}, {"pair", 2},
	}

	// countedNouns legitimize a bare article: "a room" means one guest,
	// "a dozen" does not.
	countedNouns = map[string]struct{}{
		"person": {}, "guest": {}, "guests": {}, "people": {},
		"room": {}, "rooms": {}, "night": {}, "nights": {},
	}
)

var numberWordValues = func() map[string]int {
	m := make(map[string]int, len(numberWords))
	for _, nw := range numberWords {
		m[nw.word] = nw.value
	}
	return m
}()

// ExtractGuestCount finds a guest count between 1 and 10 in free text.
// Strategies in order: solo-indicator phrases, digit runs, exact
// number-word tokens, approximate number-word tokens. Digits outside the
// valid range are silently skipped rather than reported as errors.
func ExtractGuestCount(text string) (int, bool) {
	clean, ok := Normalize(text)
	if !ok {
		return 0, false
	}

	for _, phrase := range soloPhrases {
		if strings.Contains(clean, phrase) {
			return 1, true
		}
	}
	tokens := strings.Fields(clean)
	for _, tok := range tokens {
		if _, solo := soloWords[cleanToken(tok)]; solo {
			return 1, true
		}
	}

	for _, digits := range digitRun.FindAllString(clean, -1) {
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		if n >= minGuests && n <= maxGuests {
			return n, true
		}
	}

	for i, tok := range tokens {
		word := cleanToken(tok)
		value, known := numberWordValues[word]
		if !known {
			continue
		}
		if (word == "a" || word == "an") && !articleCountsAsOne(tokens, i) {
			continue
		}
		return value, true
	}

	for _, tok := range tokens {
		word := cleanToken(tok)
		for _, nw := range numberWords {
			// Articles are too short to fuzzy-match meaningfully.
			if len(nw.word) < 3 {
				continue
			}
			if Ratio(word, nw.word) >= guestFuzzyThreshold {
				return nw.value, true
			}
		}
	}

	return 0, false
}

// articleCountsAsOne decides whether a bare "a"/"an" stands for one guest.
// The article only counts before a counted noun ("a room") or on its own;
// "a couple" defers to the number word and "a dozen" stays unresolved so
// the input falls through to the absent case.
func articleCountsAsOne(tokens []string, idx int) bool {
	if idx+1 >= len(tokens) {
		return true
	}
	next := cleanToken(tokens[idx+1])
	_, counted := countedNouns[next]
	return counted
}
