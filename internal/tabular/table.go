package tabular

import "strings"

// Table is an in-memory tabular dataset: one header row plus string cells.
// Column lookup is case- and whitespace-insensitive so "Account ID",
// " account id " and "ACCOUNT ID" all resolve to the same column. Extra
// columns the caller never asks for are simply ignored.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table from a header row and data rows.
func NewTable(headers []string, rows [][]string) *Table {
	t := &Table{Headers: headers, Rows: rows}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		key := NormalizeHeader(h)
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column resolves a column name to its index. The second return is false
// when the column is absent; callers downgrade that to zero-valued metrics.
func (t *Table) Column(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[NormalizeHeader(name)]
	return i, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// Cell returns the raw cell at (row, column index). Out-of-range access
// returns the empty string rather than panicking; short rows are padded at
// parse time but this keeps manual construction safe too.
func (t *Table) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Append adds another table's rows in order. Headers are assumed
// compatible; chunked loading builds tables from the same header row.
func (t *Table) Append(other *Table) {
	if other == nil {
		return
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// NormalizeHeader upper-cases a header and collapses surrounding
// whitespace for matching.
func NormalizeHeader(h string) string {
	return strings.ToUpper(strings.TrimSpace(h))
}

// NormalizeCell trims and upper-cases a categorical cell value so
// downstream matching is case/whitespace-insensitive.
func NormalizeCell(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
