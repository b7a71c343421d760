package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"voltrent/internal/auth"
	"voltrent/internal/service"
)

type NotificationHandler struct {
	Service *service.NotificationService
}

func NewNotificationHandler(s *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

func (h *NotificationHandler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.Service.ListIncidents(auth.AccountID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"incidents": incidents})
}

// UnreadCount backs the badge counter the client polls.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.UnreadCount(auth.AccountID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, count)
}

func (h *NotificationHandler) MarkIncidentRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid incident id", http.StatusBadRequest)
		return
	}
	if err := h.Service.MarkIncidentRead(id, auth.AccountID(r)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "incident not found", http.StatusNotFound)
			return
		}
		serviceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Incident marked read")
}

func (h *NotificationHandler) ListHandovers(w http.ResponseWriter, r *http.Request) {
	handovers, err := h.Service.ListHandovers(auth.AccountID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"handovers": handovers})
}
