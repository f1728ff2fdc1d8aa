package normalize

import "basesync/internal/domain"

// produtosTable covers the per-client product/service line-item export
// (first sheet, header at row 4).
var produtosTable = &Table{
	Domain: domain.DomainProdutos,

	Static: map[string]string{
		"codigo":         "codigo",
		"cod_cliente":    "codigo",
		"grupo":          "grupo",
		"cliente":        "cliente",
		"razao_social":   "cliente",
		"produto":        "produto",
		"servico":        "produto",
		"produto_servico": "produto",
		"descricao":      "descricao",
		"quantidade":     "quantidade",
		"qtd":            "quantidade",
		"valor_unitario": "valor_unitario",
		"valor_total":    "valor_total",
		"competencia":    "competencia",
		"recorrencia":    "recorrencia",
		"status":         "status",
	},

	Heuristics: []Heuristic{
		{Contains: []string{"grupo"}, Canonical: "grupo"},
		{Contains: []string{"valor", "unit"}, Canonical: "valor_unitario"},
		{Contains: []string{"vlr", "unit"}, Canonical: "valor_unitario"},
		{Contains: []string{"valor", "total"}, Canonical: "valor_total"},
		{Contains: []string{"vlr", "total"}, Canonical: "valor_total"},
		{Contains: []string{"produto"}, Canonical: "produto"},
		{Contains: []string{"servico"}, Canonical: "produto"},
		{Contains: []string{"cliente"}, Canonical: "cliente"},
		{Contains: []string{"razao"}, Canonical: "cliente"},
		{Contains: []string{"quantidade"}, Canonical: "quantidade"},
		{Contains: []string{"qtd"}, Canonical: "quantidade"},
		{Contains: []string{"competencia"}, Canonical: "competencia"},
		{Contains: []string{"recorren"}, Canonical: "recorrencia"},
		{Contains: []string{"descri"}, Canonical: "descricao"},
		{Contains: []string{"codigo"}, Canonical: "codigo"},
	},
}
