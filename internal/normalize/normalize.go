// Package normalize maps raw sheet rows onto the canonical field set of a
// domain. One table-driven engine serves all three domains; each domain
// contributes a static slug dictionary, an ordered list of substring
// heuristics, and the list of fields post-processed to digits only.
package normalize

import (
	"strings"

	"basesync/internal/domain"
	"basesync/internal/sheet"
	"basesync/internal/slug"
)

// Heuristic maps a header slug to a canonical name when the slug contains
// every substring in Contains. Rules are evaluated top to bottom; the first
// match wins, so order within a table is significant.
type Heuristic struct {
	Contains  []string
	Canonical string
}

// Table holds the normalization rules for one domain.
type Table struct {
	Domain domain.Domain

	// Static maps an exact header slug to its canonical name.
	Static map[string]string

	// Heuristics handle headers unseen in Static, in order.
	Heuristics []Heuristic

	// DigitFields lists canonical names (tax IDs, registration numbers)
	// whose values keep digits only; an empty result becomes null.
	DigitFields []string
}

var tables = map[domain.Domain]*Table{
	domain.DomainCadastro: cadastroTable,
	domain.DomainProdutos: produtosTable,
	domain.DomainSaida:    saidaTable,
}

// TableFor returns the rule table for d, or nil for an unknown domain.
func TableFor(d domain.Domain) *Table {
	return tables[d]
}

// Record maps every cell of row onto d's canonical fields. Cells with no
// static or heuristic match keep their original header inside Extra, so no
// input column is ever dropped. Malformed input never fails; worst case a
// value lands in Extra.
func Record(d domain.Domain, row sheet.Row) domain.Record {
	rec := domain.Record{
		Domain: d,
		Fields: make(map[string]any, len(row)),
	}
	t := tables[d]
	if t == nil {
		rec.Extra = make(map[string]any, len(row))
		for _, c := range row {
			rec.Extra[c.Header] = c.Value
		}
		return rec
	}

	for _, c := range row {
		name, ok := t.canonical(slug.Make(c.Header))
		if !ok {
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[c.Header] = c.Value
			continue
		}
		rec.Fields[name] = t.value(name, c.Value)
	}
	return rec
}

// Records normalizes a whole parse pass.
func Records(d domain.Domain, rows []sheet.Row) []domain.Record {
	out := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Record(d, row))
	}
	return out
}

func (t *Table) canonical(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if name, ok := t.Static[s]; ok {
		return name, true
	}
	for _, h := range t.Heuristics {
		if h.matches(s) {
			return h.Canonical, true
		}
	}
	return "", false
}

func (h *Heuristic) matches(s string) bool {
	for _, sub := range h.Contains {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// value applies per-field post-processing. Digit fields are reduced to
// digits; empty after stripping means null, never "", so downstream
// equality and lookups stay unambiguous.
func (t *Table) value(name, raw string) any {
	for _, df := range t.DigitFields {
		if df == name {
			digits := digitsOnly(raw)
			if digits == "" {
				return nil
			}
			return digits
		}
	}
	return raw
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
