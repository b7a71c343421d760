package db

import "time"

type VehicleModel struct {
	ID        int
	Name      string
	Brand     string
	RangeKM   int
	SeatCount int
}

type Station struct {
	ID        int
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type Vehicle struct {
	ID           int
	ModelID      int
	StationID    int
	Plate        string
	Color        string
	BatteryLevel int
	PricePerHour int
	PricePerDay  int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Customer struct {
	ID            int
	FullName      string
	Email         string
	Phone         string
	LicenseNumber string
	PasswordHash  string
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Booking struct {
	ID            int
	Code          string
	CustomerID    int
	VehicleID     int
	Mode          string
	StartTime     time.Time
	EndTime       time.Time
	SlotStart     string
	SlotEnd       string
	ReturnTime    string
	BilledUnits   int
	TotalCost     int
	Status        string
	PaymentStatus string
	PaymentMethod string
	ExpiresAt     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type WalletTransaction struct {
	ID         int
	CustomerID int
	Amount     int
	Kind       string
	Status     string
	Reference  string
	CreatedAt  time.Time
}

type Incident struct {
	ID         int
	CustomerID int
	BookingID  int
	Title      string
	Body       string
	Read       bool
	CreatedAt  time.Time
}

type Handover struct {
	ID           int
	BookingID    int
	StaffID      int
	BatteryLevel int
	Notes        string
	CreatedAt    time.Time
}

type Document struct {
	ID         string
	CustomerID int
	Kind       string
	FileName   string
	Path       string
	Status     string
	CreatedAt  time.Time
}
