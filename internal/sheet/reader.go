// Package sheet reads spreadsheet workbooks (.xlsx/.xlsm) into ordered
// header→value rows. It performs no type coercion and no header mapping;
// that belongs to the normalize package.
package sheet

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"basesync/internal/domain"
)

// Cell is one header/value pair. Rows keep cells in original column order.
type Cell struct {
	Header string
	Value  string
}

// Row is one data row below the header, in sheet order.
type Row []Cell

// Read opens the workbook at path and returns every data row below the
// header. headerRow is 1-based; the header row itself and everything above
// it are excluded. sheetName is matched exactly when given, otherwise the
// first sheet is used. Blank header cells become positional col_{i}
// placeholders so every row has a stable key at that position. Rows whose
// cells are all empty are dropped.
func Read(path string, headerRow int, sheetName string) ([]Row, error) {
	if headerRow < 1 {
		return nil, fmt.Errorf("header row must be >= 1, got %d", headerRow)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	name := sheetName
	if name == "" {
		name = f.GetSheetName(0)
	} else if idx, _ := f.GetSheetIndex(name); idx < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrSheetNotFound, name)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", name, err)
	}
	if len(rows) < headerRow {
		return nil, nil
	}

	headers := headerNames(rows[headerRow-1])

	var out []Row
	for _, raw := range rows[headerRow:] {
		row := make(Row, len(headers))
		empty := true
		for i, h := range headers {
			v := cellVal(raw, i)
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			row[i] = Cell{Header: h, Value: v}
		}
		if empty {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// headerNames fills blank header cells with positional placeholders.
func headerNames(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("col_%d", i+1)
		}
		headers[i] = h
	}
	return headers
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
