package nlp

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var levenshtein = metrics.NewLevenshtein()

// Ratio scores the similarity of two strings on a 0-100 scale using a
// normalized Levenshtein ratio. 100 means identical.
func Ratio(a, b string) float64 {
	return strutil.Similarity(a, b, levenshtein) * 100
}
