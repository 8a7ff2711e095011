package export

import (
	"fmt"
	"time"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// BuildSummaryRows flattens a MetricsRecord into (metric, value) pairs in
// the order the dashboard cards showed them.
func BuildSummaryRows(rec *entity.MetricsRecord) [][]string {
	return [][]string{
		{"Year", fmt.Sprintf("%d", rec.Year)},
		{"Total Active Agents", fmt.Sprintf("%d", rec.TotalActiveAgents)},
		{"Total Active Tellers", fmt.Sprintf("%d", rec.TotalActiveTellers)},
		{"Agents with Tellers", fmt.Sprintf("%d", rec.AgentsWithTellers)},
		{"Agents without Tellers", fmt.Sprintf("%d", rec.AgentsWithoutTellers)},
		{"Total Onboarded", fmt.Sprintf("%d", rec.OnboardedTotal)},
		{"Agents Onboarded", fmt.Sprintf("%d", rec.OnboardedAgents)},
		{"Tellers Onboarded", fmt.Sprintf("%d", rec.OnboardedTellers)},
		{"Active Users", fmt.Sprintf("%d", rec.ActiveUsersOverall)},
		{"Inactive Users", fmt.Sprintf("%d", rec.InactiveUsersOverall)},
		{"Total Transactions", fmt.Sprintf("%d", rec.TotalTransactions)},
		{"Transaction Volume", fmt.Sprintf("%.2f", rec.TransactionVolume)},
		{"Successful Transactions", fmt.Sprintf("%d", rec.SuccessfulTransactions)},
		{"Failed Transactions", fmt.Sprintf("%d", rec.FailedTransactions)},
	}
}

// BuildMonthlyTable expands the fixed 12-month series into report rows.
func BuildMonthlyTable(rec *entity.MetricsRecord) []entity.MonthlyPoint {
	points := make([]entity.MonthlyPoint, 0, 12)
	for m := 1; m <= 12; m++ {
		points = append(points, entity.MonthlyPoint{
			Month:             time.Month(m).String(),
			MonthNumber:       m,
			ActiveUsers:       rec.MonthlyActiveUsers[m-1],
			DepositCount:      rec.MonthlyDeposits[m-1],
			DistinctUsers:     rec.MonthlyDistinctUsers[m-1],
			TransactionVolume: rec.MonthlyVolume[m-1],
		})
	}
	return points
}
