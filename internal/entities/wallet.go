package entities

import "time"

type DepositRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type DepositResponse struct {
	Reference string `json:"reference"`
	Amount    int    `json:"amount"`
	Status    string `json:"status"`
}

// ConfirmPaymentRequest is the callback the payment simulator posts once a
// deposit has gone through.
type ConfirmPaymentRequest struct {
	Reference string `json:"reference" validate:"required"`
	Succeeded bool   `json:"succeeded"`
}

type WalletResponse struct {
	Balance      int                         `json:"balance"`
	Transactions []WalletTransactionResponse `json:"transactions"`
}

type WalletTransactionResponse struct {
	Reference string    `json:"reference"`
	Amount    int       `json:"amount"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
