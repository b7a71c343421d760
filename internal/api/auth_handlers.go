package api

import (
	"errors"
	"net/http"

	"voltrent/internal/auth"
	"voltrent/internal/entities"
	"voltrent/internal/service"
)

type AuthHandler struct {
	Service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Service.Register(req); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeMessage(w, http.StatusCreated, "Account created")
}

func (h *AuthHandler) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, service.RoleCustomer)
}

func (h *AuthHandler) StaffLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, service.RoleStaff)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, role string) {
	var req entities.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, err := h.Service.Login(req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entities.LoginResponse{Token: token})
}

func (h *AuthHandler) UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req entities.UpdatePersonalInfoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdatePersonalInfo(auth.AccountID(r), req); err != nil {
		serviceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Personal info updated")
}
