package entity

import "time"

// TransactionRecord is one row of the transaction log after normalization.
// Amount and CreatedAt are nil when the source value did not parse; such
// rows stay in raw counts but drop out of sums and date buckets.
type TransactionRecord struct {
	UserID          string     `json:"user_id"`
	ParentUserID    string     `json:"parent_user_id,omitempty"`
	ServiceName     string     `json:"service_name,omitempty"`
	TransactionType string     `json:"transaction_type,omitempty"`
	ProductName     string     `json:"product_name,omitempty"`
	Status          string     `json:"status,omitempty"`
	Amount          *float64   `json:"amount,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// InYear reports whether the transaction has a parseable timestamp in the
// given calendar year.
func (t *TransactionRecord) InYear(year int) bool {
	return t.CreatedAt != nil && t.CreatedAt.Year() == year
}

// Month returns the 1-based calendar month, or 0 when the timestamp is
// missing.
func (t *TransactionRecord) Month() int {
	if t.CreatedAt == nil {
		return 0
	}
	return int(t.CreatedAt.Month())
}

// Hour returns the hour of day 0-23, or -1 when the timestamp is missing.
func (t *TransactionRecord) Hour() int {
	if t.CreatedAt == nil {
		return -1
	}
	return t.CreatedAt.Hour()
}
