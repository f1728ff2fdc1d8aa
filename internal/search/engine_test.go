package search_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"basesync/internal/config"
	"basesync/internal/domain"
	"basesync/internal/search"
	"basesync/mocks"
)

// sheetFixture describes one workbook: sheet name, 1-based header row, the
// header labels, and data rows.
type sheetFixture struct {
	sheetName string
	headerRow int
	headers   []string
	rows      [][]string
}

func writeWorkbook(t *testing.T, dir, file string, fx sheetFixture) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := fx.sheetName
	if name == "" {
		name = "Sheet1"
	} else if name != "Sheet1" {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}

	write := func(rowIdx int, cells []string) {
		for col, v := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}
	write(fx.headerRow, fx.headers)
	for i, row := range fx.rows {
		write(fx.headerRow+1+i, row)
	}

	path := filepath.Join(dir, file)
	require.NoError(t, f.SaveAs(path))
	return path
}

// newEngine builds an engine whose retriever resolves each domain's source
// prefix to a local fixture workbook.
func newEngine(t *testing.T, paths map[domain.Domain]string, fallback bool) *search.Engine {
	t.Helper()
	sheets := &config.SheetsConfig{
		Cadastro: config.SheetConfig{SourcePrefix: "exports/cadastro/", SheetName: "Clientes", HeaderRow: 2},
		Produtos: config.SheetConfig{SourcePrefix: "exports/produtos/", HeaderRow: 1},
		Saida:    config.SheetConfig{SourcePrefix: "exports/saida/", SheetName: "Base de Dados", HeaderRow: 1},
	}
	retriever := new(mocks.MockFileRetriever)
	for d, p := range paths {
		retriever.On("FetchFile", mock.Anything, sheets.ForDomain(d).SourcePrefix).Return(p, nil)
	}
	return search.NewEngine(retriever, sheets, &config.SearchConfig{AnyFieldFallback: fallback})
}

func fixtures(t *testing.T, cadastroRows, produtosRows, saidaRows [][]string) map[domain.Domain]string {
	t.Helper()
	dir := t.TempDir()
	return map[domain.Domain]string{
		domain.DomainCadastro: writeWorkbook(t, dir, "cadastro.xlsx", sheetFixture{
			sheetName: "Clientes",
			headerRow: 2,
			headers:   []string{"Código", "Grupo", "Razão Social", "CNPJ"},
			rows:      cadastroRows,
		}),
		domain.DomainProdutos: writeWorkbook(t, dir, "produtos.xlsx", sheetFixture{
			headerRow: 1,
			headers:   []string{"Grupo", "Produto/Serviço", "Valor Total"},
			rows:      produtosRows,
		}),
		domain.DomainSaida: writeWorkbook(t, dir, "saida.xlsx", sheetFixture{
			sheetName: "Base de Dados",
			headerRow: 1,
			headers:   []string{"Grupo", "Motivo Saída", "Última Competência"},
			rows:      saidaRows,
		}),
	}
}

func TestSearchAll_TermInAllDomains(t *testing.T) {
	paths := fixtures(t,
		[][]string{{"C001", "ACX", "ACX Serviços LTDA", "02.617.552/0001-30"}},
		[][]string{{"ACX", "BPO Fiscal", "1500"}},
		[][]string{{"ACX", "Encerramento", "2025-07"}},
	)
	e := newEngine(t, paths, true)

	res := e.SearchAll(context.Background(), "acx", domain.SearchGroups)

	assert.True(t, res.Success)
	assert.Empty(t, res.Missing)
	assert.Equal(t, 3, res.Count)
	require.Len(t, res.Rows, 3)
	// Rows come back normalized; the cadastro CNPJ is digits only.
	assert.Equal(t, "02617552000130", res.Rows[0].Fields["cnpj"])
}

func TestSearchAll_MissingInOneDomain(t *testing.T) {
	paths := fixtures(t,
		[][]string{{"C001", "Outra", "Outra LTDA", ""}},
		[][]string{
			{"ACX", "BPO Fiscal", "1500"},
			{"ACX", "Folha", "900"},
			{"ACX", "Contábil", "700"},
		},
		[][]string{
			{"ACX", "Preço", "2025-01"},
			{"ACX", "Mudança", "2025-02"},
			{"ACX", "Fusão", "2025-03"},
		},
	)
	e := newEngine(t, paths, true)

	res := e.SearchAll(context.Background(), "ACX", domain.SearchGroups)

	assert.False(t, res.Success)
	assert.Equal(t, []domain.Domain{domain.DomainCadastro}, res.Missing)
	assert.Empty(t, res.Rows)
	assert.Zero(t, res.Count)
}

func TestSearchDomain_AccentAndCaseInsensitive(t *testing.T) {
	paths := fixtures(t,
		[][]string{{"C001", "Açúcar União", "Açúcar União SA", ""}},
		nil, nil,
	)
	e := newEngine(t, paths, true)

	res := e.SearchDomain(context.Background(), domain.DomainCadastro, "acucar", domain.SearchGroups)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Count)
}

func TestSearchDomain_ClientMarkers(t *testing.T) {
	paths := fixtures(t,
		[][]string{
			{"C001", "G1", "ACX Serviços LTDA", ""},
			{"C002", "G2", "Beta Corp", ""},
		},
		nil, nil,
	)
	e := newEngine(t, paths, true)

	res := e.SearchDomain(context.Background(), domain.DomainCadastro, "beta", domain.SearchClients)

	assert.True(t, res.Success)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Beta Corp", res.Rows[0].Field("razao_social"))
}

func TestSearchDomain_AnyFieldFallback(t *testing.T) {
	dir := t.TempDir()
	// No group-marker column at all: the fallback scans every field.
	path := writeWorkbook(t, dir, "legacy.xlsx", sheetFixture{
		sheetName: "Clientes",
		headerRow: 2,
		headers:   []string{"Código", "Razão Social"},
		rows:      [][]string{{"C001", "ACX Serviços"}},
	})
	paths := map[domain.Domain]string{domain.DomainCadastro: path}

	withFallback := newEngine(t, paths, true)
	res := withFallback.SearchDomain(context.Background(), domain.DomainCadastro, "acx", domain.SearchGroups)
	assert.True(t, res.Success)

	withoutFallback := newEngine(t, paths, false)
	res = withoutFallback.SearchDomain(context.Background(), domain.DomainCadastro, "acx", domain.SearchGroups)
	assert.False(t, res.Success)
	assert.Zero(t, res.Count)
}

func TestSearchDomain_MarkerPresentSuppressesFallback(t *testing.T) {
	paths := fixtures(t,
		// Term appears in a non-marker column; the row has a marker column,
		// so only that column is consulted.
		[][]string{{"ACX", "Outro", "ACX Serviços LTDA", ""}},
		nil, nil,
	)
	e := newEngine(t, paths, true)

	res := e.SearchDomain(context.Background(), domain.DomainCadastro, "acx", domain.SearchGroups)

	assert.False(t, res.Success)
	assert.Zero(t, res.Count)
}

func TestSearchDomain_RetrievalFailure(t *testing.T) {
	sheets := &config.SheetsConfig{
		Cadastro: config.SheetConfig{SourcePrefix: "exports/cadastro/", HeaderRow: 1},
	}
	retriever := new(mocks.MockFileRetriever)
	retriever.On("FetchFile", mock.Anything, "exports/cadastro/").
		Return("", domain.ErrRetrievalFailed)
	e := search.NewEngine(retriever, sheets, &config.SearchConfig{AnyFieldFallback: true})

	res := e.SearchDomain(context.Background(), domain.DomainCadastro, "acx", domain.SearchGroups)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "retrieval")
}

func TestSearchAll_RetrievalFailureIsAggregateFailure(t *testing.T) {
	paths := fixtures(t,
		[][]string{{"C001", "ACX", "ACX Serviços LTDA", ""}},
		[][]string{{"ACX", "BPO", "1"}},
		nil,
	)
	sheets := &config.SheetsConfig{
		Cadastro: config.SheetConfig{SourcePrefix: "exports/cadastro/", SheetName: "Clientes", HeaderRow: 2},
		Produtos: config.SheetConfig{SourcePrefix: "exports/produtos/", HeaderRow: 1},
		Saida:    config.SheetConfig{SourcePrefix: "exports/saida/", HeaderRow: 1},
	}
	retriever := new(mocks.MockFileRetriever)
	retriever.On("FetchFile", mock.Anything, "exports/cadastro/").Return(paths[domain.DomainCadastro], nil)
	retriever.On("FetchFile", mock.Anything, "exports/produtos/").Return(paths[domain.DomainProdutos], nil)
	retriever.On("FetchFile", mock.Anything, "exports/saida/").Return("", domain.ErrRetrievalFailed)
	e := search.NewEngine(retriever, sheets, &config.SearchConfig{AnyFieldFallback: true})

	res := e.SearchAll(context.Background(), "acx", domain.SearchGroups)

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "saida")
	assert.Contains(t, res.Missing, domain.DomainSaida)
}
