package entity

// TopAgent is one entry of the top-performers ranking: deposits grouped by
// user, summed and counted over parseable amounts.
type TopAgent struct {
	UserID           string  `json:"user_id"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// ServiceBreakdown is the per-service aggregate over the year-filtered
// transaction table.
type ServiceBreakdown struct {
	ServiceName      string  `json:"service_name"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// MetricsRecord is the flat result of one analysis run. Monthly arrays are
// indexed 0..11 for January..December; HourlyActivity 0..23. The record is
// immutable once produced and replaced wholesale on the next run.
type MetricsRecord struct {
	Year int `json:"year"`

	TotalActiveAgents  int `json:"total_active_agents"`
	TotalActiveTellers int `json:"total_active_tellers"`

	AgentsWithTellers    int `json:"agents_with_tellers"`
	AgentsWithoutTellers int `json:"agents_without_tellers"`

	OnboardedTotal   int `json:"onboarded_total"`
	OnboardedAgents  int `json:"onboarded_agents"`
	OnboardedTellers int `json:"onboarded_tellers"`

	ActiveUsersOverall   int `json:"active_users_overall"`
	InactiveUsersOverall int `json:"inactive_users_overall"`

	MonthlyActiveUsers   [12]int     `json:"monthly_active_users"`
	MonthlyDeposits      [12]int     `json:"monthly_deposits"`
	MonthlyVolume        [12]float64 `json:"monthly_volume"`
	MonthlyDistinctUsers [12]int     `json:"monthly_distinct_users"`

	TotalTransactions      int     `json:"total_transactions"`
	TransactionVolume      float64 `json:"transaction_volume"`
	SuccessfulTransactions int     `json:"successful_transactions"`
	FailedTransactions     int     `json:"failed_transactions"`

	TopPerformingAgents []TopAgent         `json:"top_performing_agents"`
	ServiceBreakdown    []ServiceBreakdown `json:"service_breakdown,omitempty"`

	HourlyActivity [24]int `json:"hourly_activity"`

	StatusBreakdown map[string]int `json:"status_breakdown,omitempty"`
	EntityBreakdown map[string]int `json:"entity_breakdown,omitempty"`
}

// MonthlyPoint is one row of the monthly report table built from a
// MetricsRecord.
type MonthlyPoint struct {
	Month             string  `json:"month"`
	MonthNumber       int     `json:"month_number"`
	ActiveUsers       int     `json:"active_users"`
	DepositCount      int     `json:"deposit_count"`
	DistinctUsers     int     `json:"distinct_users"`
	TransactionVolume float64 `json:"transaction_volume"`
}
