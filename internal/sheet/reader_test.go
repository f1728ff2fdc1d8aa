package sheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"basesync/internal/domain"
)

// writeFixture builds a workbook whose header sits at row 2, with a blank
// header in column C and an entirely empty row between two data rows.
func writeFixture(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	set := func(cell, val string) {
		require.NoError(t, f.SetCellValue("Sheet1", cell, val))
	}
	set("A1", "Relatório de Clientes")
	set("A2", "Código")
	set("B2", "Grupo")
	// C2 left blank on purpose
	set("D2", "CNPJ")
	set("A3", "C001")
	set("B3", "ACME")
	set("C3", "stray")
	set("D3", "02.617.552/0001-30")
	// row 4 entirely empty
	set("A5", "C002")
	set("B5", "Beta")

	path := filepath.Join(t.TempDir(), "clientes.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRead_HeaderRowAndPlaceholders(t *testing.T) {
	path := writeFixture(t)

	rows, err := Read(path, 2, "Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	require.Len(t, first, 4)
	assert.Equal(t, "Código", first[0].Header)
	assert.Equal(t, "C001", first[0].Value)
	assert.Equal(t, "col_3", first[2].Header)
	assert.Equal(t, "stray", first[2].Value)
	assert.Equal(t, "02.617.552/0001-30", first[3].Value)

	// The all-empty row 4 is dropped; row 5 survives with short cells padded.
	second := rows[1]
	assert.Equal(t, "C002", second[0].Value)
	assert.Equal(t, "", second[3].Value)
}

func TestRead_FirstSheetWhenUnnamed(t *testing.T) {
	path := writeFixture(t)

	rows, err := Read(path, 2, "")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRead_SheetNotFound(t *testing.T) {
	path := writeFixture(t)

	_, err := Read(path, 2, "Base de Dados")
	assert.True(t, errors.Is(err, domain.ErrSheetNotFound))
}

func TestRead_FileNotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.xlsx"), 1, "")
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))
}

func TestRead_HeaderRowBeyondData(t *testing.T) {
	path := writeFixture(t)

	rows, err := Read(path, 50, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
