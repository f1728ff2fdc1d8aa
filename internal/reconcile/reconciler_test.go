package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"basesync/internal/domain"
	"basesync/internal/reconcile"
	"basesync/mocks"
)

func record(fields map[string]any) domain.Record {
	return domain.Record{Domain: domain.DomainCadastro, Fields: fields}
}

func storedClient(code, grupo, razao string) *domain.Client {
	return &domain.Client{
		Code:        code,
		Grupo:       grupo,
		RazaoSocial: razao,
		Active:      true,
	}
}

func TestRun_Classifications(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	repo.On("ListActiveCodes", mock.Anything).
		Return([]string{"C002", "C003", "C009"}, nil)

	// C001 is new.
	repo.On("FindByCode", mock.Anything, "C001").Return(nil, domain.ErrNotFound)
	// C002 exists with a different grupo.
	repo.On("FindByCode", mock.Anything, "C002").Return(storedClient("C002", "Velho", "Beta LTDA"), nil)
	// C003 is identical.
	repo.On("FindByCode", mock.Anything, "C003").Return(storedClient("C003", "Gama", "Gama SA"), nil)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool { return c.Code == "C001" })).Return(nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool { return c.Code == "C002" })).Return(nil)
	// C009 is active in storage but absent from the batch.
	repo.On("Deactivate", mock.Anything, "C009").Return(true, nil)

	outcome, err := r.Run(context.Background(), []domain.Record{
		record(map[string]any{"codigo": "C001", "grupo": "Alfa", "razao_social": "Alfa LTDA"}),
		record(map[string]any{"codigo": "C002", "grupo": "Novo", "razao_social": "Beta LTDA"}),
		record(map[string]any{"codigo": "C003", "grupo": "Gama", "razao_social": "Gama SA"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"C001"}, outcome.Created)
	assert.Equal(t, []string{"C002"}, outcome.Updated)
	assert.Equal(t, []string{"C003"}, outcome.Unchanged)
	assert.Equal(t, []string{"C009"}, outcome.Deactivated)
	assert.Empty(t, outcome.Errors)
	repo.AssertExpectations(t)
}

func TestRun_IdempotentOnUnchangedBatch(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	repo.On("ListActiveCodes", mock.Anything).Return([]string{"C001"}, nil)
	repo.On("FindByCode", mock.Anything, "C001").Return(storedClient("C001", "Alfa", "Alfa LTDA"), nil)

	outcome, err := r.Run(context.Background(), []domain.Record{
		record(map[string]any{"codigo": "C001", "grupo": "Alfa", "razao_social": "Alfa LTDA"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"C001"}, outcome.Unchanged)
	assert.Empty(t, outcome.Created)
	assert.Empty(t, outcome.Updated)
	assert.Empty(t, outcome.Deactivated)
	// No writes at all.
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestRun_ReactivatesReturningClient(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	inactive := storedClient("C001", "Alfa", "Alfa LTDA")
	inactive.Active = false

	repo.On("ListActiveCodes", mock.Anything).Return([]string{}, nil)
	repo.On("FindByCode", mock.Anything, "C001").Return(inactive, nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Code == "C001" && c.Active
	})).Return(nil)

	outcome, err := r.Run(context.Background(), []domain.Record{
		record(map[string]any{"codigo": "C001", "grupo": "Alfa", "razao_social": "Alfa LTDA"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"C001"}, outcome.Updated)
	repo.AssertExpectations(t)
}

func TestRun_PerCodeErrorsDoNotAbortBatch(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	repo.On("ListActiveCodes", mock.Anything).Return([]string{}, nil)
	repo.On("FindByCode", mock.Anything, "C001").Return(nil, domain.ErrNotFound)
	repo.On("FindByCode", mock.Anything, "C002").Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool { return c.Code == "C001" })).
		Return(errors.New("write failed"))
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool { return c.Code == "C002" })).
		Return(nil)

	outcome, err := r.Run(context.Background(), []domain.Record{
		record(map[string]any{"codigo": "C001"}),
		record(map[string]any{"codigo": "C002"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"C002"}, outcome.Created)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "C001", outcome.Errors[0].Code)
	assert.Contains(t, outcome.Errors[0].Message, "write failed")
}

func TestRun_RowWithoutCodeIsRecorded(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	repo.On("ListActiveCodes", mock.Anything).Return([]string{}, nil)
	repo.On("FindByCode", mock.Anything, "C002").Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	outcome, err := r.Run(context.Background(), []domain.Record{
		record(map[string]any{"grupo": "SemCodigo"}),
		record(map[string]any{"codigo": "C002"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"C002"}, outcome.Created)
	require.Len(t, outcome.Errors, 1)
	assert.Contains(t, outcome.Errors[0].Message, "no codigo")
}

func TestRun_CNPJAndExtraCarriedToClient(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	var got *domain.Client
	repo.On("ListActiveCodes", mock.Anything).Return([]string{}, nil)
	repo.On("FindByCode", mock.Anything, "C001").Return(nil, domain.ErrNotFound)
	repo.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*domain.Client) }).
		Return(nil)

	rec := domain.Record{
		Domain: domain.DomainCadastro,
		Fields: map[string]any{"codigo": "C001", "cnpj": "02617552000130"},
		Extra:  map[string]any{"Coluna Misteriosa": "42"},
	}
	_, err := r.Run(context.Background(), []domain.Record{rec})

	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.CNPJ)
	assert.Equal(t, "02617552000130", *got.CNPJ)
	assert.JSONEq(t, `{"Coluna Misteriosa":"42"}`, string(got.Extra))
}

func TestRun_ListActiveCodesFailureIsFatal(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	r := reconcile.New(repo)

	repo.On("ListActiveCodes", mock.Anything).Return(nil, errors.New("db down"))

	_, err := r.Run(context.Background(), []domain.Record{
		record(map[string]any{"codigo": "C001"}),
	})
	assert.Error(t, err)
}
