package domain

import "fmt"

// Domain identifies one of the three source spreadsheets.
type Domain string

const (
	DomainCadastro Domain = "cadastro"
	DomainProdutos Domain = "produtos"
	DomainSaida    Domain = "saida"
)

// AllDomains lists the domains in aggregation order.
var AllDomains = []Domain{DomainCadastro, DomainProdutos, DomainSaida}

// ParseDomain converts a string into a Domain.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainCadastro, DomainProdutos, DomainSaida:
		return Domain(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

// SyncClassification is the outcome assigned to a single client code
// during reconciliation.
type SyncClassification string

const (
	SyncCreated     SyncClassification = "created"
	SyncUpdated     SyncClassification = "updated"
	SyncUnchanged   SyncClassification = "unchanged"
	SyncDeactivated SyncClassification = "deactivated"
)

// SearchMode selects which marker fields a row match inspects first.
type SearchMode string

const (
	SearchGroups  SearchMode = "groups"
	SearchClients SearchMode = "clients"
)
