package normalize

import "basesync/internal/domain"

// cadastroTable covers the client registry export (sheet "Clientes",
// header at row 5). The static dictionary lists every header seen in the
// exports to date; the heuristics absorb the renames each sheet revision
// brings.
var cadastroTable = &Table{
	Domain: domain.DomainCadastro,

	Static: map[string]string{
		"codigo":                  "codigo",
		"cod_cliente":             "codigo",
		"grupo":                   "grupo",
		"grupo_economico":         "grupo",
		"razao_social":            "razao_social",
		"nome_fantasia":           "nome_fantasia",
		"fantasia":                "nome_fantasia",
		"cnpj":                    "cnpj",
		"cnpj_cpf":                "cnpj",
		"inscricao_estadual":      "inscricao_estadual",
		"data_inicio":             "data_inicio",
		"inicio_contrato":         "data_inicio",
		"data_termino":            "data_termino",
		"servicos_contratados":    "servicos_contratados",
		"servicos":                "servicos_contratados",
		"contato_principal":       "contato_principal",
		"contato_principal_email": "contato_principal_email",
		"contato_principal_telefone": "contato_principal_telefone",
		"valor_hora":              "valor_hora",
		"valor_mensalidade":       "valor_mensalidade",
		"mensalidade":             "valor_mensalidade",
		"dia_faturamento":         "dia_faturamento",
		"forma_pagamento":         "forma_pagamento",
		"cidade":                  "cidade",
		"uf":                      "uf",
		"estado":                  "uf",
		"responsavel":             "responsavel",
		"observacoes":             "observacoes",
		"obs":                     "observacoes",
	},

	// Ordered: contact sub-fields must win before the bare "contato" rule,
	// and valor_hora before the generic valor rules.
	Heuristics: []Heuristic{
		{Contains: []string{"contato", "email"}, Canonical: "contato_principal_email"},
		{Contains: []string{"contato", "telefone"}, Canonical: "contato_principal_telefone"},
		{Contains: []string{"contato", "fone"}, Canonical: "contato_principal_telefone"},
		{Contains: []string{"contato"}, Canonical: "contato_principal"},
		{Contains: []string{"valor", "hora"}, Canonical: "valor_hora"},
		{Contains: []string{"vlr", "hora"}, Canonical: "valor_hora"},
		{Contains: []string{"valor", "mensal"}, Canonical: "valor_mensalidade"},
		{Contains: []string{"vlr", "mensal"}, Canonical: "valor_mensalidade"},
		{Contains: []string{"mensalidade"}, Canonical: "valor_mensalidade"},
		{Contains: []string{"razao"}, Canonical: "razao_social"},
		{Contains: []string{"fantasia"}, Canonical: "nome_fantasia"},
		{Contains: []string{"grupo"}, Canonical: "grupo"},
		{Contains: []string{"cnpj"}, Canonical: "cnpj"},
		{Contains: []string{"inicio"}, Canonical: "data_inicio"},
		{Contains: []string{"termino"}, Canonical: "data_termino"},
		{Contains: []string{"encerramento"}, Canonical: "data_termino"},
		{Contains: []string{"servico"}, Canonical: "servicos_contratados"},
		{Contains: []string{"dia", "faturamento"}, Canonical: "dia_faturamento"},
		{Contains: []string{"pagamento"}, Canonical: "forma_pagamento"},
		{Contains: []string{"responsavel"}, Canonical: "responsavel"},
		{Contains: []string{"observa"}, Canonical: "observacoes"},
		{Contains: []string{"codigo"}, Canonical: "codigo"},
	},

	DigitFields: []string{"cnpj"},
}
