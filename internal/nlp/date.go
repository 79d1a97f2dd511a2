package nlp

import (
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const isoDate = "2006-01-02"

// datePatterns are tried in order before natural-language parsing, so a
// partial natural-language match can never swallow an explicit date. Day
// comes before month for the ambiguous numeric forms.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`), "2006-1-2"},
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`), "2/1/2006"},
	{regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`), "2-1-2006"},
}

// explicitYear guards the future roll: a date the user spelled out with a
// four-digit year is taken verbatim, past or not.
var explicitYear = regexp.MustCompile(`\b\d{4}\b`)

// DateParser resolves natural-language and structured date expressions to
// calendar dates. PreferFuture controls how ambiguous expressions without
// an explicit year resolve: true pushes them to the next occurrence, false
// keeps the current period as parsed.
type DateParser struct {
	PreferFuture bool

	w *when.Parser
}

// NewDateParser returns a parser with the future-preference policy enabled.
func NewDateParser() *DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{PreferFuture: true, w: w}
}

// Extract parses text relative to the current wall clock.
func (p *DateParser) Extract(text string) (string, bool) {
	return p.ExtractAt(text, time.Now())
}

// ExtractAt parses text relative to base and returns the date in ISO form.
// Explicit numeric patterns run first and are returned verbatim; natural
// language parsing handles the rest, with the future-preference policy
// applied only to expressions without an explicit year. Returns false when
// every strategy fails.
func (p *DateParser) ExtractAt(text string, base time.Time) (string, bool) {
	clean, ok := Normalize(text)
	if !ok {
		return "", false
	}

	for _, pat := range datePatterns {
		match := pat.re.FindString(clean)
		if match == "" {
			continue
		}
		if d, err := time.Parse(pat.layout, match); err == nil {
			return d.Format(isoDate), true
		}
	}

	if r, err := p.w.Parse(clean, base); err == nil && r != nil {
		d := truncateToDay(r.Time)
		if p.PreferFuture && d.Before(truncateToDay(base)) && !explicitYear.MatchString(r.Text) {
			// Expressions like "january 15" resolve within the base year;
			// roll past dates forward to the next occurrence.
			d = d.AddDate(1, 0, 0)
		}
		return d.Format(isoDate), true
	}

	return "", false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateDateOrder reports whether checkout falls strictly after checkin.
// Both must be ISO dates; any parse error counts as invalid ordering.
func ValidateDateOrder(checkin, checkout string) bool {
	in, err := time.Parse(isoDate, checkin)
	if err != nil {
		return false
	}
	out, err := time.Parse(isoDate, checkout)
	if err != nil {
		return false
	}
	return out.After(in)
}
