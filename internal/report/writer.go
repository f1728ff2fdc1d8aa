// Package report renders sync run outcomes as CSV for delivery. Layout
// styling is out of scope; recipients open the payload in a spreadsheet.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"basesync/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Código",
	"Classificação",
	"Detalhe",
}

// Writer wraps csv.Writer for exporting sync outcomes as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteOutcome writes one row per classified code, then one per error.
func (w *Writer) WriteOutcome(outcome *domain.SyncOutcome) error {
	groups := []struct {
		class domain.SyncClassification
		codes []string
	}{
		{domain.SyncCreated, outcome.Created},
		{domain.SyncUpdated, outcome.Updated},
		{domain.SyncUnchanged, outcome.Unchanged},
		{domain.SyncDeactivated, outcome.Deactivated},
	}
	for _, g := range groups {
		for _, code := range g.codes {
			if err := w.csv.Write([]string{code, string(g.class), ""}); err != nil {
				return err
			}
		}
	}
	for _, e := range outcome.Errors {
		if err := w.csv.Write([]string{e.Code, "erro", e.Message}); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// BuildSyncReport renders a full report payload: BOM, a summary line, the
// header row, and the per-code rows.
func BuildSyncReport(d domain.Domain, outcome *domain.SyncOutcome) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)

	counts := outcome.Counts()
	fmt.Fprintf(&buf, "Sincronização %s: %d criados, %d atualizados, %d inalterados, %d desativados, %d erros\n",
		d,
		counts[domain.SyncCreated], counts[domain.SyncUpdated],
		counts[domain.SyncUnchanged], counts[domain.SyncDeactivated],
		len(outcome.Errors))

	w := NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, err
	}
	if err := w.WriteOutcome(outcome); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
