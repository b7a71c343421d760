package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"voltrent/internal/auth"
	"voltrent/internal/entities"
	"voltrent/internal/service"
)

// StaffHandler serves the station desk: the day's booking list, pickup
// verification and return intake.
type StaffHandler struct {
	Bookings *service.BookingService
}

func NewStaffHandler(bookings *service.BookingService) *StaffHandler {
	return &StaffHandler{Bookings: bookings}
}

func (h *StaffHandler) ListBookingsForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}
	status := r.URL.Query().Get("status")

	list, err := h.Bookings.ListBookingsForDate(date, status)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *StaffHandler) ConfirmPickup(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	resp, err := h.Bookings.ConfirmPickup(code)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *StaffHandler) CompleteReturn(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req entities.CompleteReturnRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp, err := h.Bookings.CompleteReturn(auth.AccountID(r), code, req.BatteryLevel, req.Notes)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
