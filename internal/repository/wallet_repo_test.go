package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltrent/internal/db"
)

func TestWalletRepository_Balance(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := NewWalletRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE customer_id = $1 AND status = $2`)).
		WithArgs(7, TxStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(150000))

	balance, err := repo.Balance(7)
	require.NoError(t, err)
	assert.Equal(t, 150000, balance)
}

func TestWalletRepository_CreateTransaction(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := NewWalletRepository(database)
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	tx := &db.WalletTransaction{
		CustomerID: 7,
		Amount:     -20000,
		Kind:       TxKindDebit,
		Status:     TxStatusConfirmed,
		Reference:  "AB12CD34EF",
		CreatedAt:  now,
	}

	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs(tx.CustomerID, tx.Amount, tx.Kind, tx.Status, tx.Reference, tx.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))

	require.NoError(t, repo.CreateTransaction(tx))
	assert.Equal(t, 11, tx.ID)
}

func TestWalletRepository_ResolveDeposit(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := NewWalletRepository(database)
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Confirmed", func(t *testing.T) {
		mock.ExpectQuery("UPDATE wallet_transactions SET status = \\$1").
			WithArgs(TxStatusConfirmed, "ref-1", TxKindDeposit, TxStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "customer_id", "amount", "kind", "status", "reference", "created_at",
			}).AddRow(11, 7, 50000, TxKindDeposit, TxStatusConfirmed, "ref-1", now))

		tx, err := repo.ResolveDeposit("ref-1", TxStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, TxStatusConfirmed, tx.Status)
		assert.Equal(t, 50000, tx.Amount)
	})

	t.Run("UnknownReference", func(t *testing.T) {
		mock.ExpectQuery("UPDATE wallet_transactions SET status = \\$1").
			WithArgs(TxStatusConfirmed, "nope", TxKindDeposit, TxStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.ResolveDeposit("nope", TxStatusConfirmed)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}
