package constants

import "strings"

// Entity type vocabulary for the onboarding roster.
const (
	EntityAgent       = "AGENT"
	EntityAgentTeller = "AGENT TELLER"
)

// IsAgent matches the AGENT type exactly (after normalization).
func IsAgent(entityType string) bool {
	return entityType == EntityAgent
}

// IsTeller matches any type containing TELLER, so "AGENT TELLER",
// "SUB-TELLER" and "SENIOR AGENT TELLER" all count.
func IsTeller(entityType string) bool {
	return strings.Contains(strings.ToUpper(entityType), "TELLER")
}
