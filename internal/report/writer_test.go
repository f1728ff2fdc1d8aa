package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basesync/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Código", "Classificação", "Detalhe"}, row)
}

func TestBuildSyncReport(t *testing.T) {
	outcome := &domain.SyncOutcome{
		Created:     []string{"C001"},
		Updated:     []string{"C002"},
		Unchanged:   []string{"C003", "C004"},
		Deactivated: []string{"C009"},
		Errors:      []domain.SyncError{{Code: "C010", Message: "write failed"}},
	}

	payload, err := BuildSyncReport(domain.DomainCadastro, outcome)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(payload, BOM))

	body := string(bytes.TrimPrefix(payload, BOM))
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Contains(t, lines[0], "1 criados, 1 atualizados, 2 inalterados, 1 desativados, 1 erros")

	r := csv.NewReader(strings.NewReader(strings.Join(lines[1:], "\n")))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	// header + 5 classified codes + 1 error row
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"C001", "created", ""}, rows[1])
	assert.Equal(t, []string{"C010", "erro", "write failed"}, rows[6])
}
