package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
)

// Service produces report bytes (XLSX workbooks, CSV tables) from a
// MetricsRecord. Callers decide where the bytes go.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const (
	sheetSummary  = "Summary"
	sheetMonthly  = "Monthly Trends"
	sheetTop      = "Top Agents"
	sheetServices = "Service Breakdown"
)

// WriteXLSX returns a multi-sheet workbook (as bytes) for the record.
func (s *Service) WriteXLSX(rec *entity.MetricsRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	// The default "Sheet1" becomes the summary sheet.
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetMonthly, sheetTop, sheetServices} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}
	if index, err := f.GetSheetIndex(sheetSummary); err == nil {
		f.SetActiveSheet(index)
	}

	writeSheet(f, sheetSummary, []string{"Metric", "Value"}, BuildSummaryRows(rec))

	monthlyRows := make([][]string, 0, 12)
	for _, p := range BuildMonthlyTable(rec) {
		monthlyRows = append(monthlyRows, []string{
			p.Month,
			fmt.Sprintf("%d", p.MonthNumber),
			fmt.Sprintf("%d", p.ActiveUsers),
			fmt.Sprintf("%d", p.DepositCount),
			fmt.Sprintf("%d", p.DistinctUsers),
			fmt.Sprintf("%.2f", p.TransactionVolume),
		})
	}
	writeSheet(f, sheetMonthly,
		[]string{"Month", "Month Number", "Active Users", "Deposit Count", "Distinct Users", "Transaction Volume"},
		monthlyRows)

	topRows := make([][]string, 0, len(rec.TopPerformingAgents))
	for _, a := range rec.TopPerformingAgents {
		topRows = append(topRows, []string{a.UserID, fmt.Sprintf("%.2f", a.TotalAmount), fmt.Sprintf("%d", a.TransactionCount)})
	}
	writeSheet(f, sheetTop, []string{"User Identifier", "Total Amount", "Transaction Count"}, topRows)

	serviceRows := make([][]string, 0, len(rec.ServiceBreakdown))
	for _, sb := range rec.ServiceBreakdown {
		serviceRows = append(serviceRows, []string{sb.ServiceName, fmt.Sprintf("%.2f", sb.TotalAmount), fmt.Sprintf("%d", sb.TransactionCount)})
	}
	writeSheet(f, sheetServices, []string{"Service Name", "Total Amount", "Transaction Count"}, serviceRows)

	// Widen the label columns a little
	_ = f.SetColWidth(sheetSummary, "A", "A", 26)
	_ = f.SetColWidth(sheetMonthly, "A", "A", 14)
	_ = f.SetColWidth(sheetTop, "A", "A", 24)
	_ = f.SetColWidth(sheetServices, "A", "A", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"year", rec.Year,
		"top_agents", len(rec.TopPerformingAgents),
		"services", len(rec.ServiceBreakdown),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]string) {
	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for i, h := range headers {
		write(i+1, 1, h)
	}
	for r, row := range rows {
		for c, v := range row {
			write(c+1, r+2, v)
		}
	}
}
