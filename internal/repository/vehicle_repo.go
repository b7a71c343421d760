package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"voltrent/internal/booking"
	"voltrent/internal/entities"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

func (r *VehicleRepository) ListVehicles(stationID, modelID int, status string) ([]entities.VehicleResponse, error) {
	query := `
	SELECT v.id, v.model_id, vm.name, vm.brand, v.station_id, s.name,
	       v.plate, v.color, v.battery_level, v.price_per_hour, v.price_per_day, v.status
	FROM vehicles v
	JOIN vehicle_models vm ON v.model_id = vm.id
	JOIN stations s ON v.station_id = s.id
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if stationID != 0 {
		query += fmt.Sprintf(" AND v.station_id = $%d", idx)
		args = append(args, stationID)
		idx++
	}
	if modelID != 0 {
		query += fmt.Sprintf(" AND v.model_id = $%d", idx)
		args = append(args, modelID)
		idx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND v.status = $%d", idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY v.id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []entities.VehicleResponse
	for rows.Next() {
		var v entities.VehicleResponse
		err := rows.Scan(
			&v.ID, &v.ModelID, &v.ModelName, &v.Brand, &v.StationID, &v.StationName,
			&v.Plate, &v.Color, &v.BatteryLevel, &v.PricePerHour, &v.PricePerDay, &v.Status,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *VehicleRepository) GetVehicle(id int) (*entities.VehicleResponse, error) {
	var v entities.VehicleResponse
	query := `
	SELECT v.id, v.model_id, vm.name, vm.brand, v.station_id, s.name,
	       v.plate, v.color, v.battery_level, v.price_per_hour, v.price_per_day, v.status
	FROM vehicles v
	JOIN vehicle_models vm ON v.model_id = vm.id
	JOIN stations s ON v.station_id = s.id
	WHERE v.id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&v.ID, &v.ModelID, &v.ModelName, &v.Brand, &v.StationID, &v.StationName,
		&v.Plate, &v.Color, &v.BatteryLevel, &v.PricePerHour, &v.PricePerDay, &v.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("error querying vehicle %d: %w", id, err)
	}
	return &v, nil
}

// GetRateCard returns the pricing for a vehicle.
func (r *VehicleRepository) GetRateCard(id int) (booking.RateCard, error) {
	var rates booking.RateCard
	err := r.DB.QueryRow(`SELECT price_per_hour, price_per_day FROM vehicles WHERE id = $1`, id).
		Scan(&rates.PricePerHour, &rates.PricePerDay)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.RateCard{}, ErrVehicleNotFound
		}
		return booking.RateCard{}, err
	}
	return rates, nil
}

func (r *VehicleRepository) SetVehicleStatus(id int, status string) error {
	_, err := r.DB.Exec(`UPDATE vehicles SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

func (r *VehicleRepository) ListModels() ([]entities.ModelResponse, error) {
	rows, err := r.DB.Query(`SELECT id, name, brand, range_km, seat_count FROM vehicle_models ORDER BY brand, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []entities.ModelResponse
	for rows.Next() {
		var m entities.ModelResponse
		if err := rows.Scan(&m.ID, &m.Name, &m.Brand, &m.RangeKM, &m.SeatCount); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *VehicleRepository) ListStations() ([]entities.StationResponse, error) {
	rows, err := r.DB.Query(`SELECT id, name, address, latitude, longitude FROM stations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []entities.StationResponse
	for rows.Next() {
		var s entities.StationResponse
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}
