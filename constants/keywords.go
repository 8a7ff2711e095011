package constants

import "strings"

// DefaultDepositKeywords classify a transaction as a deposit when any of
// them appears (case-insensitive substring) in the service, type, or
// product label. Order is preserved so configs can override it verbatim.
var DefaultDepositKeywords = []string{"DEPOSIT", "FUNDING", "LOAD", "CREDIT"}

// MatchesAnyKeyword reports whether any keyword occurs as a
// case-insensitive substring of any of the given labels.
func MatchesAnyKeyword(keywords []string, labels ...string) bool {
	for _, label := range labels {
		if label == "" {
			continue
		}
		upper := strings.ToUpper(label)
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(upper, strings.ToUpper(kw)) {
				return true
			}
		}
	}
	return false
}
