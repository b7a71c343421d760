package service

import (
	"voltrent/internal/entities"
	"voltrent/internal/repository"
)

type VehicleService struct {
	Repo *repository.VehicleRepository
}

func NewVehicleService(repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{Repo: repo}
}

func (s *VehicleService) ListVehicles(stationID, modelID int, status string) ([]entities.VehicleResponse, error) {
	return s.Repo.ListVehicles(stationID, modelID, status)
}

func (s *VehicleService) GetVehicle(id int) (*entities.VehicleResponse, error) {
	return s.Repo.GetVehicle(id)
}

func (s *VehicleService) ListModels() ([]entities.ModelResponse, error) {
	return s.Repo.ListModels()
}

func (s *VehicleService) ListStations() ([]entities.StationResponse, error) {
	return s.Repo.ListStations()
}
