package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeLedgerRepo_Init(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeLedgerRepo(mock)

	mock.ExpectExec("INSERT INTO fee_ledger").
		WithArgs("inj", 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO fee_ledger").
		WithArgs("usdt", 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Init(context.Background(), []string{"inj", "usdt"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLedgerRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeLedgerRepo(mock)

	mock.ExpectQuery("SELECT collected FROM fee_ledger WHERE denom").
		WithArgs("usdt").
		WillReturnRows(pgxmock.NewRows([]string{"collected"}).AddRow("1000000"))

	collected, err := repo.Get(context.Background(), "usdt")
	require.NoError(t, err)
	assert.True(t, collected.Equal(decimal.RequireFromString("1000000")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLedgerRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT collected FROM fee_ledger WHERE denom .+ FOR UPDATE").
		WithArgs("usdt").
		WillReturnRows(pgxmock.NewRows([]string{"collected"}).AddRow("1000000"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	collected, err := repo.GetForUpdate(context.Background(), tx, "usdt")
	require.NoError(t, err)
	assert.True(t, collected.Equal(decimal.RequireFromString("1000000")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLedgerRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE fee_ledger SET collected").
		WithArgs("3000000", "usdt").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, "usdt", decimal.RequireFromString("3000000"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLedgerRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeLedgerRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE fee_ledger SET collected").
		WithArgs("5", "atom").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, "atom", decimal.RequireFromString("5"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLedgerRepo_All(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeLedgerRepo(mock)

	mock.ExpectQuery("SELECT denom, collected FROM fee_ledger ORDER BY position").
		WillReturnRows(pgxmock.NewRows([]string{"denom", "collected"}).
			AddRow("inj", "500").
			AddRow("usdt", "1000000"))

	counters, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, counters, 2)
	assert.Equal(t, "inj", counters[0].Denom)
	assert.True(t, counters[0].Collected.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, "usdt", counters[1].Denom)
	assert.True(t, counters[1].Collected.Equal(decimal.RequireFromString("1000000")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
