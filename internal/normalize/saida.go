package normalize

import "basesync/internal/domain"

// saidaTable covers the churn/exit log export (sheet "Base de Dados",
// header at row 2).
var saidaTable = &Table{
	Domain: domain.DomainSaida,

	Static: map[string]string{
		"codigo":             "codigo",
		"cod_cliente":        "codigo",
		"grupo":              "grupo",
		"cliente":            "cliente",
		"razao_social":       "cliente",
		"cnpj":               "cnpj",
		"motivo_saida":       "motivo_saida",
		"motivo":             "motivo_saida",
		"data_saida":         "data_saida",
		"ultima_competencia": "ultima_competencia",
		"aviso_previo":       "aviso_previo",
		"responsavel":        "responsavel",
		"observacoes":        "observacoes",
	},

	// Ordered: the compound rules must run before the bare "competencia"
	// and "saida" fallbacks.
	Heuristics: []Heuristic{
		{Contains: []string{"ultima", "competencia"}, Canonical: "ultima_competencia"},
		{Contains: []string{"data", "saida"}, Canonical: "data_saida"},
		{Contains: []string{"motivo"}, Canonical: "motivo_saida"},
		{Contains: []string{"aviso"}, Canonical: "aviso_previo"},
		{Contains: []string{"competencia"}, Canonical: "ultima_competencia"},
		{Contains: []string{"saida"}, Canonical: "data_saida"},
		{Contains: []string{"grupo"}, Canonical: "grupo"},
		{Contains: []string{"cliente"}, Canonical: "cliente"},
		{Contains: []string{"razao"}, Canonical: "cliente"},
		{Contains: []string{"cnpj"}, Canonical: "cnpj"},
		{Contains: []string{"responsavel"}, Canonical: "responsavel"},
		{Contains: []string{"observa"}, Canonical: "observacoes"},
		{Contains: []string{"codigo"}, Canonical: "codigo"},
	},

	DigitFields: []string{"cnpj"},
}
