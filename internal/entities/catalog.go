package entities

type VehicleResponse struct {
	ID           int    `json:"id"`
	ModelID      int    `json:"model_id"`
	ModelName    string `json:"model_name"`
	Brand        string `json:"brand"`
	StationID    int    `json:"station_id"`
	StationName  string `json:"station_name"`
	Plate        string `json:"plate"`
	Color        string `json:"color"`
	BatteryLevel int    `json:"battery_level"`
	PricePerHour int    `json:"price_per_hour"`
	PricePerDay  int    `json:"price_per_day"`
	Status       string `json:"status"`
}

type ModelResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	RangeKM   int    `json:"range_km"`
	SeatCount int    `json:"seat_count"`
}

type StationResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
