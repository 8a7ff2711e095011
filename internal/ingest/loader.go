package ingest

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/agent-insights/internal/common"
	"github.com/joseph-ayodele/agent-insights/internal/tabular"
)

// Loader reads the two input files into Tables. Reads are synchronous and
// sequential; the optional chunk size only bounds how many rows are
// buffered per append while assembling large transaction logs.
type Loader struct {
	logger    *slog.Logger
	chunkSize int
}

// LoadResult is one loaded file: the parsed table, its content checksum,
// and any per-row warnings collected on the way.
type LoadResult struct {
	Path     string
	Table    *tabular.Table
	Checksum string
	Chunks   int
	Warnings []tabular.ParseWarning
}

func NewLoader(logger *slog.Logger, chunkSize int) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, chunkSize: chunkSize}
}

// LoadFile reads and parses one delimited file.
func (l *Loader) LoadFile(path string) (*LoadResult, error) {
	if !AllowedExt(filepath.Ext(path)) {
		return nil, common.NewAppError("INGEST_ERROR", "unsupported file type: "+path, common.ErrInvalidInput)
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAppError("INGEST_ERROR", "reading "+path, common.ErrUnreadableInput)
	}

	table, chunks, warnings, err := tabular.ParseChunks(data, l.chunkSize)
	if err != nil {
		return nil, common.WrapError(err, "parsing "+path)
	}

	res := &LoadResult{
		Path:     path,
		Table:    table,
		Checksum: Checksum(data),
		Chunks:   chunks,
		Warnings: warnings,
	}

	l.logger.Info("ingest.file.ok",
		"path", path,
		"rows", table.Len(),
		"chunks", chunks,
		"warnings", len(warnings),
		"checksum", res.Checksum,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// LoadPair loads the onboarding roster and the transaction log for one
// analysis run.
func (l *Loader) LoadPair(onboardingPath, transactionPath string) (*LoadResult, *LoadResult, error) {
	roster, err := l.LoadFile(onboardingPath)
	if err != nil {
		return nil, nil, err
	}
	transactions, err := l.LoadFile(transactionPath)
	if err != nil {
		return nil, nil, err
	}
	return roster, transactions, nil
}
