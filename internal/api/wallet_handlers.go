package api

import (
	"net/http"

	"voltrent/internal/auth"
	"voltrent/internal/entities"
	"voltrent/internal/service"
)

type WalletHandler struct {
	Service *service.WalletService
}

func NewWalletHandler(s *service.WalletService) *WalletHandler {
	return &WalletHandler{Service: s}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Service.Wallet(auth.AccountID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req entities.DepositRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := h.Service.Deposit(auth.AccountID(r), req.Amount)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// ConfirmDeposit is the unauthenticated callback the payment simulator posts
// once it has processed a deposit.
func (h *WalletHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	var req entities.ConfirmPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tx, err := h.Service.ConfirmDeposit(req.Reference, req.Succeeded)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"reference": tx.Reference,
		"status":    tx.Status,
	})
}
