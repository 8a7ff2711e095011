package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// CSV writers: ordinary delimited text, one header row then one row per
// metric or per ranked entity. The byte format is not a compatibility
// surface.

// WriteSummaryCSV writes the (metric, value) summary table.
func (s *Service) WriteSummaryCSV(w io.Writer, rec *entity.MetricsRecord) error {
	return writeCSV(w, []string{"Metric", "Value"}, BuildSummaryRows(rec))
}

// WriteMonthlyCSV writes the 12-row monthly report.
func (s *Service) WriteMonthlyCSV(w io.Writer, rec *entity.MetricsRecord) error {
	rows := make([][]string, 0, 12)
	for _, p := range BuildMonthlyTable(rec) {
		rows = append(rows, []string{
			p.Month,
			fmt.Sprintf("%d", p.MonthNumber),
			fmt.Sprintf("%d", p.ActiveUsers),
			fmt.Sprintf("%d", p.DepositCount),
			fmt.Sprintf("%d", p.DistinctUsers),
			fmt.Sprintf("%.2f", p.TransactionVolume),
		})
	}
	return writeCSV(w, []string{"Month", "Month Number", "Active Users", "Deposit Count", "Distinct Users", "Transaction Volume"}, rows)
}

// WriteTopAgentsCSV writes the ranked top-performers table.
func (s *Service) WriteTopAgentsCSV(w io.Writer, rec *entity.MetricsRecord) error {
	rows := make([][]string, 0, len(rec.TopPerformingAgents))
	for _, a := range rec.TopPerformingAgents {
		rows = append(rows, []string{a.UserID, fmt.Sprintf("%.2f", a.TotalAmount), fmt.Sprintf("%d", a.TransactionCount)})
	}
	return writeCSV(w, []string{"User Identifier", "Total Amount", "Transaction Count"}, rows)
}

// WriteServiceBreakdownCSV writes the per-service aggregate table.
func (s *Service) WriteServiceBreakdownCSV(w io.Writer, rec *entity.MetricsRecord) error {
	rows := make([][]string, 0, len(rec.ServiceBreakdown))
	for _, sb := range rec.ServiceBreakdown {
		rows = append(rows, []string{sb.ServiceName, fmt.Sprintf("%.2f", sb.TotalAmount), fmt.Sprintf("%d", sb.TransactionCount)})
	}
	return writeCSV(w, []string{"Service Name", "Total Amount", "Transaction Count"}, rows)
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
