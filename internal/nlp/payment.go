package nlp

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// paymentMatchThreshold is the minimum similarity for snapping input to a
// canonical payment method. Kept low so typos still resolve.
const paymentMatchThreshold = 60

var (
	paymentSkipTokens = map[string]struct{}{"skip": {}, "later": {}, "none": {}}

	canonicalPaymentMethods = []string{"credit card", "debit card", "cash", "paypal"}

	titleCaser = cases.Title(language.English)
)

// PaymentSkipped is returned when the guest declines to name a payment
// method.
const PaymentSkipped = "Not specified"

// ExtractPaymentMethod maps input to a payment method. Skip tokens yield
// the skip sentinel; otherwise the best canonical match above the
// threshold wins, and anything else is echoed back title-cased. The only
// absent case is empty input.
func ExtractPaymentMethod(text string) (string, bool) {
	clean, ok := Normalize(text)
	if !ok {
		return "", false
	}

	if _, skip := paymentSkipTokens[clean]; skip {
		return PaymentSkipped, true
	}

	bestScore := 0.0
	bestMethod := ""
	for _, method := range canonicalPaymentMethods {
		score := Ratio(clean, method)
		if score > bestScore && score > paymentMatchThreshold {
			bestScore = score
			bestMethod = method
		}
	}
	if bestMethod != "" {
		return titleCaser.String(bestMethod), true
	}

	return titleCaser.String(clean), true
}
