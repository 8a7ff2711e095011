package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joseph-ayodele/agent-insights/internal/common"
)

// ParseWarning represents a non-fatal issue encountered during CSV parsing.
type ParseWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Parse parses CSV bytes into a Table. It handles mismatched column counts
// (pad/truncate), lazy quotes, and non-UTF-8 encodings. A file without a
// header row is a structural error; a header-only file yields an empty
// table, which downstream aggregation turns into a zero-valued record.
func Parse(data []byte) (*Table, []ParseWarning, error) {
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, nil, common.WrapError(err, "encoding detection failed")
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Variable field counts are handled ourselves via pad/truncate.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, common.NewAppError("PARSE_ERROR", "empty file", common.ErrMissingHeader)
		}
		return nil, nil, common.WrapError(err, "failed to read header row")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	headerCount := len(headers)
	var rows [][]string
	var warnings []ParseWarning
	rowNum := 1 // 1-indexed, header is row 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			warnings = append(warnings, ParseWarning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}

		if len(row) != headerCount {
			if len(row) < headerCount {
				warnings = append(warnings, ParseWarning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), headerCount),
				})
				padded := make([]string, headerCount)
				copy(padded, row)
				row = padded
			} else {
				warnings = append(warnings, ParseWarning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), headerCount),
				})
				row = row[:headerCount]
			}
		}

		rows = append(rows, row)
	}

	return NewTable(headers, rows), warnings, nil
}

// ParseChunks parses CSV bytes the same way as Parse but accumulates data
// rows in fixed-size chunks that are appended sequentially. This is a
// memory-management device for very large transaction logs, not
// parallelism; input order is preserved because later aggregation (ranking
// ties in particular) depends on stable iteration order. It returns the
// assembled table and the number of chunks processed.
func ParseChunks(data []byte, chunkSize int) (*Table, int, []ParseWarning, error) {
	if chunkSize <= 0 {
		t, warns, err := Parse(data)
		return t, 1, warns, err
	}

	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, 0, nil, common.WrapError(err, "encoding detection failed")
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil, common.NewAppError("PARSE_ERROR", "empty file", common.ErrMissingHeader)
		}
		return nil, 0, nil, common.WrapError(err, "failed to read header row")
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	headerCount := len(headers)
	result := NewTable(headers, nil)
	var warnings []ParseWarning
	chunk := make([][]string, 0, chunkSize)
	chunks := 0
	rowNum := 1

	flush := func() {
		if len(chunk) == 0 {
			return
		}
		result.Append(NewTable(headers, chunk))
		chunk = make([][]string, 0, chunkSize)
		chunks++
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			warnings = append(warnings, ParseWarning{Row: rowNum, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}

		if len(row) < headerCount {
			padded := make([]string, headerCount)
			copy(padded, row)
			row = padded
		} else if len(row) > headerCount {
			row = row[:headerCount]
		}

		chunk = append(chunk, row)
		if len(chunk) >= chunkSize {
			flush()
		}
	}
	flush()
	if chunks == 0 {
		chunks = 1
	}

	return result, chunks, warnings, nil
}
