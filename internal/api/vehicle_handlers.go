package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"voltrent/internal/service"
)

type VehicleHandler struct {
	Service *service.VehicleService
}

func NewVehicleHandler(s *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: s}
}

// ListVehicles supports optional ?station_id=, ?model_id= and ?status= filters.
func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	stationID, _ := strconv.Atoi(r.URL.Query().Get("station_id"))
	modelID, _ := strconv.Atoi(r.URL.Query().Get("model_id"))
	status := r.URL.Query().Get("status")

	vehicles, err := h.Service.ListVehicles(stationID, modelID, status)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"vehicles": vehicles})
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}
	vehicle, err := h.Service.GetVehicle(id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.Service.ListModels()
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": models})
}

func (h *VehicleHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Service.ListStations()
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stations": stations})
}
