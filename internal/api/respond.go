package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"voltrent/internal/booking"
	apperrors "voltrent/internal/errors"
	"voltrent/internal/repository"
	"voltrent/internal/service"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// decodeAndValidate decodes a JSON body and runs struct validation. The
// validation errors are surfaced verbatim; they are field-presence messages.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return validate.Struct(dst)
}

// serviceError maps domain errors onto HTTP statuses. Everything unexpected is
// a 500 with a generic message.
func serviceError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	switch {
	case errors.Is(err, repository.ErrVehicleNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrTransactionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, booking.ErrMissingCustomerInfo),
		errors.Is(err, booking.ErrHourlySameDay),
		errors.Is(err, booking.ErrMinHourlyDuration),
		errors.Is(err, booking.ErrMinDailyDuration),
		errors.Is(err, booking.ErrUnknownMode):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrPaymentExpired),
		errors.Is(err, service.ErrNotCancelable),
		errors.Is(err, service.ErrDocumentRequired),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, repository.ErrStaleStatus):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
