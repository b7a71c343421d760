package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"voltrent/internal/db"
	"voltrent/internal/entities"
)

var ErrTransactionNotFound = errors.New("wallet transaction not found")

// Transaction kinds and statuses. Deposits start pending and are confirmed by
// the payment simulator callback; debits and refunds post as confirmed.
const (
	TxKindDeposit = "deposit"
	TxKindDebit   = "debit"
	TxKindRefund  = "refund"

	TxStatusPending   = "pending"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
)

type WalletRepository struct {
	DB *sql.DB
}

func NewWalletRepository(database *sql.DB) *WalletRepository {
	return &WalletRepository{DB: database}
}

// Balance sums confirmed transactions; debits are stored as negative amounts.
func (r *WalletRepository) Balance(customerID int) (int, error) {
	var balance int
	err := r.DB.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM wallet_transactions WHERE customer_id = $1 AND status = $2`,
		customerID, TxStatusConfirmed,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("error computing wallet balance: %w", err)
	}
	return balance, nil
}

func (r *WalletRepository) CreateTransaction(tx *db.WalletTransaction) error {
	query := `
	INSERT INTO wallet_transactions (customer_id, amount, kind, status, reference, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`
	return r.DB.QueryRow(query,
		tx.CustomerID, tx.Amount, tx.Kind, tx.Status, tx.Reference, tx.CreatedAt,
	).Scan(&tx.ID, &tx.CreatedAt)
}

// ResolveDeposit settles a pending deposit from the simulator callback.
func (r *WalletRepository) ResolveDeposit(reference, status string) (*db.WalletTransaction, error) {
	var tx db.WalletTransaction
	query := `
	UPDATE wallet_transactions SET status = $1
	WHERE reference = $2 AND kind = $3 AND status = $4
	RETURNING id, customer_id, amount, kind, status, reference, created_at`
	err := r.DB.QueryRow(query, status, reference, TxKindDeposit, TxStatusPending).Scan(
		&tx.ID, &tx.CustomerID, &tx.Amount, &tx.Kind, &tx.Status, &tx.Reference, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *WalletRepository) ListTransactions(customerID int) ([]entities.WalletTransactionResponse, error) {
	rows, err := r.DB.Query(
		`SELECT reference, amount, kind, status, created_at
		 FROM wallet_transactions WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []entities.WalletTransactionResponse
	for rows.Next() {
		var t entities.WalletTransactionResponse
		if err := rows.Scan(&t.Reference, &t.Amount, &t.Kind, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
