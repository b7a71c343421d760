package entities

import "time"

type IncidentResponse struct {
	ID        int       `json:"id"`
	BookingID int       `json:"booking_id,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Incidents int `json:"incidents"`
}

type HandoverResponse struct {
	ID           int       `json:"id"`
	BookingCode  string    `json:"booking_code"`
	BatteryLevel int       `json:"battery_level"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
