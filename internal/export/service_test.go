package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/agent-insights/internal/entity"
	"github.com/joseph-ayodele/agent-insights/internal/export"
)

func sampleRecord() *entity.MetricsRecord {
	rec := &entity.MetricsRecord{
		Year:                   2025,
		TotalActiveAgents:      40,
		TotalActiveTellers:     12,
		AgentsWithTellers:      8,
		AgentsWithoutTellers:   32,
		OnboardedTotal:         15,
		OnboardedAgents:        10,
		OnboardedTellers:       5,
		ActiveUsersOverall:     6,
		InactiveUsersOverall:   3,
		TotalTransactions:      1200,
		TransactionVolume:      56789.5,
		SuccessfulTransactions: 1100,
		FailedTransactions:     80,
		TopPerformingAgents: []entity.TopAgent{
			{UserID: "U-9", TotalAmount: 5000, TransactionCount: 40},
			{UserID: "U-3", TotalAmount: 2500.25, TransactionCount: 31},
		},
		ServiceBreakdown: []entity.ServiceBreakdown{
			{ServiceName: "DEPOSIT", TotalAmount: 40000, TransactionCount: 800},
			{ServiceName: "WITHDRAWAL", TotalAmount: 16789.5, TransactionCount: 400},
		},
	}
	rec.MonthlyActiveUsers[0] = 4
	rec.MonthlyDeposits[0] = 90
	rec.MonthlyDistinctUsers[0] = 25
	rec.MonthlyVolume[0] = 1234.56
	return rec
}

func TestWriteXLSX(t *testing.T) {
	svc := export.NewService(nil)
	rec := sampleRecord()

	data, err := svc.WriteXLSX(rec)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t,
		[]string{"Summary", "Monthly Trends", "Top Agents", "Service Breakdown"},
		f.GetSheetList())

	metric, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Year", metric)
	year, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025", year)

	// January row on the monthly sheet
	month, err := f.GetCellValue("Monthly Trends", "A2")
	require.NoError(t, err)
	assert.Equal(t, "January", month)
	depositCount, err := f.GetCellValue("Monthly Trends", "D2")
	require.NoError(t, err)
	assert.Equal(t, "90", depositCount)

	topUser, err := f.GetCellValue("Top Agents", "A2")
	require.NoError(t, err)
	assert.Equal(t, "U-9", topUser)
	topAmount, err := f.GetCellValue("Top Agents", "B2")
	require.NoError(t, err)
	assert.Equal(t, "5000.00", topAmount)

	service, err := f.GetCellValue("Service Breakdown", "A3")
	require.NoError(t, err)
	assert.Equal(t, "WITHDRAWAL", service)
}

func TestWriteXLSX_EmptyRecord(t *testing.T) {
	svc := export.NewService(nil)
	rec := &entity.MetricsRecord{Year: 2025}

	data, err := svc.WriteXLSX(rec)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Headers are still present, data rows are not.
	header, err := f.GetCellValue("Top Agents", "A1")
	require.NoError(t, err)
	assert.Equal(t, "User Identifier", header)
	cell, err := f.GetCellValue("Top Agents", "A2")
	require.NoError(t, err)
	assert.Empty(t, cell)
}

func TestWriteSummaryCSV(t *testing.T) {
	svc := export.NewService(nil)
	var buf bytes.Buffer

	require.NoError(t, svc.WriteSummaryCSV(&buf, sampleRecord()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 15) // header + 14 metrics
	assert.Equal(t, "Metric,Value", lines[0])
	assert.Equal(t, "Year,2025", lines[1])
	assert.Contains(t, lines, "Transaction Volume,56789.50")
	assert.Contains(t, lines, "Agents without Tellers,32")
}

func TestWriteMonthlyCSV(t *testing.T) {
	svc := export.NewService(nil)
	var buf bytes.Buffer

	require.NoError(t, svc.WriteMonthlyCSV(&buf, sampleRecord()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 13) // header + 12 months
	assert.Equal(t, "January,1,4,90,25,1234.56", lines[1])
	assert.Equal(t, "December,12,0,0,0,0.00", lines[12])
}

func TestWriteTopAgentsCSV(t *testing.T) {
	svc := export.NewService(nil)
	var buf bytes.Buffer

	require.NoError(t, svc.WriteTopAgentsCSV(&buf, sampleRecord()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "User Identifier,Total Amount,Transaction Count", lines[0])
	assert.Equal(t, "U-9,5000.00,40", lines[1])
	assert.Equal(t, "U-3,2500.25,31", lines[2])
}

func TestWriteServiceBreakdownCSV(t *testing.T) {
	svc := export.NewService(nil)
	var buf bytes.Buffer

	require.NoError(t, svc.WriteServiceBreakdownCSV(&buf, sampleRecord()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "DEPOSIT,40000.00,800", lines[1])
}

func TestBuildMonthlyTable(t *testing.T) {
	points := export.BuildMonthlyTable(sampleRecord())

	require.Len(t, points, 12)
	assert.Equal(t, "January", points[0].Month)
	assert.Equal(t, 1, points[0].MonthNumber)
	assert.Equal(t, 90, points[0].DepositCount)
	assert.Equal(t, "December", points[11].Month)
	assert.Equal(t, 12, points[11].MonthNumber)
}
