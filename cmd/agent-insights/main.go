package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/agent-insights/internal/analyzer"
	"github.com/joseph-ayodele/agent-insights/internal/common"
	"github.com/joseph-ayodele/agent-insights/internal/entity"
	"github.com/joseph-ayodele/agent-insights/internal/export"
	"github.com/joseph-ayodele/agent-insights/internal/ingest"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		onboarding   = flag.String("onboarding", "", "onboarding roster CSV (required)")
		transactions = flag.String("transactions", "", "transaction log CSV (required)")
		out          = flag.String("out", "", "output directory (defaults to OUTPUT_DIR)")
		configPath   = flag.String("config", "", "analysis config JSON (optional)")
		year         = flag.Int("year", 0, "target year (overrides TARGET_YEAR)")
		format       = flag.String("format", "both", "report format: csv, xlsx, or both")
	)
	flag.Parse()

	if *onboarding == "" || *transactions == "" {
		printError("Error: --onboarding and --transactions are required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if *configPath != "" {
		if err := cfg.LoadAnalysisConfigFile(*configPath); err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *year != 0 {
		cfg.Analysis.TargetYear = *year
	}
	if *out != "" {
		cfg.Export.OutputDir = *out
	}
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)

	runID := uuid.New()
	logger = logger.With("run_id", runID.String())
	start := time.Now()

	loader := ingest.NewLoader(logger, cfg.Ingest.ChunkSize)
	rosterRes, txRes, err := loader.LoadPair(*onboarding, *transactions)
	if err != nil {
		logger.Error("run.load_failed", "error", err)
		os.Exit(1)
	}

	warnings := inputWarnings(rosterRes, txRes)
	for _, w := range warnings {
		logger.Warn("run.input_warning", "warning", w)
	}

	roster := analyzer.NormalizeRoster(rosterRes.Table)
	txs := analyzer.NormalizeTransactions(txRes.Table)

	a := analyzer.New(logger)
	rec := a.Analyze(analyzer.Input{
		Roster:       roster,
		Transactions: txs,
		RosterDigest: rosterRes.Checksum,
		TxDigest:     txRes.Checksum,
	}, cfg.Analysis)

	if err := writeReports(logger, cfg, rec, *format); err != nil {
		logger.Error("run.export_failed", "error", err)
		os.Exit(1)
	}

	stats := entity.RunStats{
		RunID:               runID,
		OnboardingRows:      rosterRes.Table.Len(),
		TransactionRows:     txRes.Table.Len(),
		ChunksProcessed:     rosterRes.Chunks + txRes.Chunks,
		OnboardingChecksum:  rosterRes.Checksum,
		TransactionChecksum: txRes.Checksum,
		Elapsed:             time.Since(start),
		Warnings:            warnings,
	}
	logger.Info("run.ok",
		"year", rec.Year,
		"onboarding_rows", stats.OnboardingRows,
		"transaction_rows", stats.TransactionRows,
		"chunks", stats.ChunksProcessed,
		"elapsed_ms", stats.Elapsed.Milliseconds(),
	)
}

// inputWarnings reports empty-input and missing-column conditions. They
// never stop a run; the record just carries zeros for affected metrics.
func inputWarnings(roster, tx *ingest.LoadResult) []string {
	var warnings []string
	if roster.Table.Len() == 0 {
		warnings = append(warnings, "onboarding table has no data rows")
	}
	if tx.Table.Len() == 0 {
		warnings = append(warnings, "transaction table has no data rows")
	}
	for _, col := range []string{"Account ID", "Entity", "Status", "Registration Date"} {
		if roster.Table.Len() > 0 && !roster.Table.HasColumn(col) {
			warnings = append(warnings, "onboarding table is missing column: "+col)
		}
	}
	for _, col := range []string{"User Identifier", "Created At", "Transaction Amount", "Transaction Status"} {
		if tx.Table.Len() > 0 && !tx.Table.HasColumn(col) {
			warnings = append(warnings, "transaction table is missing column: "+col)
		}
	}
	return warnings
}

func writeReports(logger *slog.Logger, cfg *common.Config, rec *entity.MetricsRecord, format string) error {
	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		return common.WrapError(err, "creating output directory")
	}

	svc := export.NewService(logger)

	if format == "xlsx" || format == "both" {
		data, err := svc.WriteXLSX(rec)
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.Export.OutputDir, "agent_insights.xlsx")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return common.WrapError(err, "writing "+path)
		}
	}

	if format == "csv" || format == "both" {
		writers := []struct {
			name  string
			write func(rec *entity.MetricsRecord, f *os.File) error
		}{
			{"agent_summary.csv", func(rec *entity.MetricsRecord, f *os.File) error { return svc.WriteSummaryCSV(f, rec) }},
			{"monthly_summary.csv", func(rec *entity.MetricsRecord, f *os.File) error { return svc.WriteMonthlyCSV(f, rec) }},
			{"top_agents.csv", func(rec *entity.MetricsRecord, f *os.File) error { return svc.WriteTopAgentsCSV(f, rec) }},
			{"service_breakdown.csv", func(rec *entity.MetricsRecord, f *os.File) error { return svc.WriteServiceBreakdownCSV(f, rec) }},
		}
		for _, w := range writers {
			path := filepath.Join(cfg.Export.OutputDir, w.name)
			f, err := os.Create(path)
			if err != nil {
				return common.WrapError(err, "creating "+path)
			}
			if err := w.write(rec, f); err != nil {
				_ = f.Close()
				return common.WrapError(err, "writing "+path)
			}
			if err := f.Close(); err != nil {
				return common.WrapError(err, "closing "+path)
			}
		}
	}
	return nil
}
