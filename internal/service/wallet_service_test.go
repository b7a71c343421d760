package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltrent/internal/repository"
)

func walletServiceWithMock(t *testing.T) (*WalletService, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewWalletService(repository.NewWalletRepository(database)), mock
}

var balanceQuery = regexp.QuoteMeta(
	`SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE customer_id = $1 AND status = $2`)

func TestChargeInsufficientBalance(t *testing.T) {
	svc, mock := walletServiceWithMock(t)

	mock.ExpectQuery(balanceQuery).
		WithArgs(7, repository.TxStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(5000))

	err := svc.Charge(7, 20000, "AB12CD34EF")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestChargeDebitsNegativeConfirmedAmount(t *testing.T) {
	svc, mock := walletServiceWithMock(t)

	mock.ExpectQuery(balanceQuery).
		WithArgs(7, repository.TxStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(50000))
	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs(7, -20000, repository.TxKindDebit, repository.TxStatusConfirmed, "AB12CD34EF", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))

	assert.NoError(t, svc.Charge(7, 20000, "AB12CD34EF"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepositStartsPending(t *testing.T) {
	svc, mock := walletServiceWithMock(t)

	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs(7, 50000, repository.TxKindDeposit, repository.TxStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(12, time.Now()))

	resp, err := svc.Deposit(7, 50000)
	require.NoError(t, err)
	assert.Equal(t, repository.TxStatusPending, resp.Status)
	assert.NotEmpty(t, resp.Reference)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	svc, _ := walletServiceWithMock(t)

	_, err := svc.Deposit(7, 0)
	assert.Error(t, err)
	_, err = svc.Deposit(7, -100)
	assert.Error(t, err)
}
