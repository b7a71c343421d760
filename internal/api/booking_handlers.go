package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"voltrent/internal/auth"
	"voltrent/internal/entities"
	"voltrent/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(s *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

// GetPickupSlots lists the selectable 30-minute pickup slots for ?date=.
func (h *BookingHandler) GetPickupSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}
	slots, err := h.Service.PickupSlots(date, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"slots": slots})
}

// GetReturnOptions lists the return times reachable from ?slot_start=.
func (h *BookingHandler) GetReturnOptions(w http.ResponseWriter, r *http.Request) {
	slotStart := r.URL.Query().Get("slot_start")
	if slotStart == "" {
		http.Error(w, "slot_start query parameter is required", http.StatusBadRequest)
		return
	}
	options, err := h.Service.ReturnOptions(slotStart)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"options": options})
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quote, err := h.Service.Quote(req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateBookingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := h.Service.CreateBooking(auth.AccountID(r), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	resp, err := h.Service.ConfirmPayment(auth.AccountID(r), code)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.Service.CancelBooking(auth.AccountID(r), code); err != nil {
		serviceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Booking cancelled")
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	resp, err := h.Service.GetBooking(auth.AccountID(r), code)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.ListBookings(auth.AccountID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
