package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voltrent/internal/db"
	"voltrent/internal/entities"
	"voltrent/internal/repository"
)

var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// WalletService is the payment simulation: customers deposit credit, the
// simulator confirms the deposit via callback, and bookings debit the balance.
// Every operation is a single best-effort write; there is no gateway behind it.
type WalletService struct {
	Repo *repository.WalletRepository
}

func NewWalletService(repo *repository.WalletRepository) *WalletService {
	return &WalletService{Repo: repo}
}

func (s *WalletService) Deposit(customerID, amount int) (*entities.DepositResponse, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive")
	}
	tx := &db.WalletTransaction{
		CustomerID: customerID,
		Amount:     amount,
		Kind:       repository.TxKindDeposit,
		Status:     repository.TxStatusPending,
		Reference:  uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	return &entities.DepositResponse{
		Reference: tx.Reference,
		Amount:    tx.Amount,
		Status:    tx.Status,
	}, nil
}

// ConfirmDeposit settles a pending deposit from the simulator callback. A
// failed confirmation marks the transaction failed and leaves the balance
// untouched; the customer can simply start a new deposit.
func (s *WalletService) ConfirmDeposit(reference string, succeeded bool) (*db.WalletTransaction, error) {
	status := repository.TxStatusConfirmed
	if !succeeded {
		status = repository.TxStatusFailed
	}
	return s.Repo.ResolveDeposit(reference, status)
}

// Charge debits the customer's wallet for a booking. Debits are stored as
// negative confirmed amounts so the balance stays a plain sum.
func (s *WalletService) Charge(customerID, amount int, reference string) error {
	balance, err := s.Repo.Balance(customerID)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientBalance
	}
	tx := &db.WalletTransaction{
		CustomerID: customerID,
		Amount:     -amount,
		Kind:       repository.TxKindDebit,
		Status:     repository.TxStatusConfirmed,
		Reference:  reference,
		CreatedAt:  time.Now().UTC(),
	}
	return s.Repo.CreateTransaction(tx)
}

func (s *WalletService) Refund(customerID, amount int, reference string) error {
	tx := &db.WalletTransaction{
		CustomerID: customerID,
		Amount:     amount,
		Kind:       repository.TxKindRefund,
		Status:     repository.TxStatusConfirmed,
		Reference:  reference,
		CreatedAt:  time.Now().UTC(),
	}
	return s.Repo.CreateTransaction(tx)
}

func (s *WalletService) Wallet(customerID int) (*entities.WalletResponse, error) {
	balance, err := s.Repo.Balance(customerID)
	if err != nil {
		return nil, err
	}
	txs, err := s.Repo.ListTransactions(customerID)
	if err != nil {
		return nil, err
	}
	return &entities.WalletResponse{Balance: balance, Transactions: txs}, nil
}
