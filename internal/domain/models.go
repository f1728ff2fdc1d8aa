package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record is a normalized spreadsheet row: canonical field names mapped to
// values, plus the extra bag holding every input column that had no
// canonical home. No column is ever dropped during normalization.
type Record struct {
	Domain Domain         `json:"domain"`
	Fields map[string]any `json:"fields"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// Field returns a canonical field value as a string, or "" when absent
// or null.
func (r *Record) Field(name string) string {
	v, ok := r.Fields[name]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// SearchResult is the outcome of a single-domain search.
type SearchResult struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Rows    []Record `json:"rows"`
	Error   string   `json:"error,omitempty"`
}

// AggregateResult is the outcome of an all-domain search. Success requires
// at least one match in every domain; Missing lists the domains that
// yielded nothing.
type AggregateResult struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Rows    []Record `json:"rows"`
	Missing []Domain `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// SyncError attributes a reconciliation failure to one client code.
type SyncError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SyncOutcome summarizes one reconciliation run: the codes behind each
// classification plus per-code errors. It is computed per run and never
// persisted; only the record mutations it describes persist.
type SyncOutcome struct {
	Created     []string    `json:"created"`
	Updated     []string    `json:"updated"`
	Unchanged   []string    `json:"unchanged"`
	Deactivated []string    `json:"deactivated"`
	Errors      []SyncError `json:"errors"`
}

// Counts returns the per-classification totals keyed by classification name.
func (o *SyncOutcome) Counts() map[SyncClassification]int {
	return map[SyncClassification]int{
		SyncCreated:     len(o.Created),
		SyncUpdated:     len(o.Updated),
		SyncUnchanged:   len(o.Unchanged),
		SyncDeactivated: len(o.Deactivated),
	}
}

// Client is the persisted registry record reconciled from the cadastro
// sheet. Deactivation is soft: Active flips to false, the row stays.
type Client struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Code         string          `db:"code" json:"code"`
	Grupo        string          `db:"grupo" json:"grupo"`
	RazaoSocial  string          `db:"razao_social" json:"razao_social"`
	NomeFantasia string          `db:"nome_fantasia" json:"nome_fantasia"`
	CNPJ         *string         `db:"cnpj" json:"cnpj"`
	ContatoEmail string          `db:"contato_email" json:"contato_email"`
	Servicos     string          `db:"servicos" json:"servicos"`
	Extra        json.RawMessage `db:"extra" json:"extra,omitempty"`
	Active       bool            `db:"active" json:"active"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// TrackedEquals reports whether the fields the reconciler diffs are equal.
// Extra is deliberately not compared so cosmetic column additions in the
// sheet do not churn the updated count.
func (c *Client) TrackedEquals(other *Client) bool {
	cnpjEq := (c.CNPJ == nil) == (other.CNPJ == nil) &&
		(c.CNPJ == nil || *c.CNPJ == *other.CNPJ)
	return c.Grupo == other.Grupo &&
		c.RazaoSocial == other.RazaoSocial &&
		c.NomeFantasia == other.NomeFantasia &&
		cnpjEq &&
		c.ContatoEmail == other.ContatoEmail &&
		c.Servicos == other.Servicos
}
