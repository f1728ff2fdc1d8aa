// Package search answers free-text lookups across the three domain sheets.
// Every call parses the target sheet fresh; the backing file may have been
// re-fetched between calls, so nothing is cached here.
package search

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"basesync/internal/config"
	"basesync/internal/domain"
	"basesync/internal/normalize"
	"basesync/internal/port"
	"basesync/internal/sheet"
	"basesync/internal/slug"
)

// markers are the header substrings that identify candidate match fields
// per search mode. Rows with no marker field fall back to matching every
// field when the fallback is enabled.
var markers = map[domain.SearchMode][]string{
	domain.SearchGroups:  {"grupo", "group"},
	domain.SearchClients: {"nome", "cliente", "empresa", "fantasia"},
}

// Engine runs single-domain and aggregate searches over the source sheets.
// It holds no mutable state; concurrency guards belong to the caller.
type Engine struct {
	retriever        port.FileRetriever
	sheets           *config.SheetsConfig
	anyFieldFallback bool
}

// NewEngine creates a search engine over the configured sheets.
func NewEngine(retriever port.FileRetriever, sheets *config.SheetsConfig, search *config.SearchConfig) *Engine {
	return &Engine{
		retriever:        retriever,
		sheets:           sheets,
		anyFieldFallback: search.AnyFieldFallback,
	}
}

// SearchDomain retrieves the backing file for d, scans its rows for term,
// and normalizes every match. Retrieval and parse failures are returned as
// a failed result, never propagated as a panic; the caller decides how to
// react. Success requires at least one match.
func (e *Engine) SearchDomain(ctx context.Context, d domain.Domain, term string, mode domain.SearchMode) domain.SearchResult {
	cfg := e.sheets.ForDomain(d)

	path, err := e.retriever.FetchFile(ctx, cfg.SourcePrefix)
	if err != nil {
		return domain.SearchResult{Error: err.Error()}
	}

	rows, err := sheet.Read(path, cfg.HeaderRow, cfg.SheetName)
	if err != nil {
		return domain.SearchResult{Error: err.Error()}
	}

	var matched []domain.Record
	for _, row := range rows {
		if e.rowMatches(row, term, mode) {
			matched = append(matched, normalize.Record(d, row))
		}
	}

	return domain.SearchResult{
		Success: len(matched) > 0,
		Count:   len(matched),
		Rows:    matched,
	}
}

// SearchAll runs the same term against all three domains. The domain
// searches hit independent files, so they run concurrently; completion
// order does not affect the aggregate. A term must match in every domain
// to succeed. Partial presence is reported as not-found with Missing
// naming the empty domains; a report cannot be produced from partial data.
func (e *Engine) SearchAll(ctx context.Context, term string, mode domain.SearchMode) domain.AggregateResult {
	results := make([]domain.SearchResult, len(domain.AllDomains))

	var wg sync.WaitGroup
	for i, d := range domain.AllDomains {
		wg.Add(1)
		go func(i int, d domain.Domain) {
			defer wg.Done()
			results[i] = e.SearchDomain(ctx, d, term, mode)
		}(i, d)
	}
	wg.Wait()

	agg := domain.AggregateResult{}
	var errs []string
	for i, d := range domain.AllDomains {
		r := results[i]
		if r.Error != "" {
			errs = append(errs, fmt.Sprintf("%s: %s", d, r.Error))
		}
		if r.Count == 0 {
			agg.Missing = append(agg.Missing, d)
			continue
		}
		agg.Rows = append(agg.Rows, r.Rows...)
		agg.Count += r.Count
	}

	agg.Error = strings.Join(errs, "; ")
	agg.Success = len(agg.Missing) == 0 && agg.Error == ""
	if !agg.Success {
		agg.Rows = nil
		agg.Count = 0
	}
	return agg
}

// rowMatches applies the per-row match rule: when the row has any marker
// field for the mode, only marker fields are compared; otherwise, if the
// fallback is enabled, every field is compared. Comparison is substring
// containment after case and accent folding.
func (e *Engine) rowMatches(row sheet.Row, term string, mode domain.SearchMode) bool {
	folded := slug.Fold(strings.TrimSpace(term))
	if folded == "" {
		return false
	}

	hasMarker := false
	for _, c := range row {
		if !headerHasMarker(c.Header, mode) {
			continue
		}
		hasMarker = true
		if strings.Contains(slug.Fold(c.Value), folded) {
			return true
		}
	}
	if hasMarker || !e.anyFieldFallback {
		return false
	}

	for _, c := range row {
		if strings.Contains(slug.Fold(c.Value), folded) {
			return true
		}
	}
	return false
}

func headerHasMarker(header string, mode domain.SearchMode) bool {
	s := slug.Make(header)
	for _, m := range markers[mode] {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
