package entity

import "time"

// EntityRecord is one row of the onboarding roster after normalization.
// AccountID is assumed unique but never enforced; duplicates flow into the
// aggregates as-is.
type EntityRecord struct {
	AccountID    string     `json:"account_id"`
	EntityType   string     `json:"entity_type"`
	Status       string     `json:"status"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
}
