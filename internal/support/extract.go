package support

import "regexp"

// Order ids are exactly 5 decimal digits, optionally prefixed with '#'.
// A 4- or 6-digit run never matches.
var orderIDPattern = regexp.MustCompile(`\b\d{5}\b`)

// ExtractOrderID returns the first 5-digit order id in the utterance.
// The number is not validated against the orders table here; that check
// happens in the router.
func ExtractOrderID(text string) (string, bool) {
	id := orderIDPattern.FindString(text)
	if id == "" {
		return "", false
	}
	return id, true
}
