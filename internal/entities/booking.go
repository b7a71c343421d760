package entities

import "time"

// CreateBookingRequest is the details step of the booking flow. Every customer
// field is required before the flow may advance to payment.
type CreateBookingRequest struct {
	VehicleID     int    `json:"vehicle_id" validate:"required"`
	Mode          string `json:"mode" validate:"required,oneof=hourly daily"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	SlotStart     string `json:"slot_start" validate:"required"`
	ReturnTime    string `json:"return_time" validate:"required"`
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=wallet onsite"`
}

type QuoteRequest struct {
	VehicleID  int    `json:"vehicle_id" validate:"required"`
	Mode       string `json:"mode" validate:"required,oneof=hourly daily"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	SlotStart  string `json:"slot_start" validate:"required"`
	ReturnTime string `json:"return_time" validate:"required"`
}

type QuoteResponse struct {
	Mode        string `json:"mode"`
	BilledUnits int    `json:"billed_units"`
	BaseCost    int    `json:"base_cost"`
	TotalCost   int    `json:"total_cost"`
}

type BookingResponse struct {
	Code          string    `json:"code"`
	VehicleID     int       `json:"vehicle_id"`
	VehiclePlate  string    `json:"vehicle_plate,omitempty"`
	Mode          string    `json:"mode"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	SlotStart     string    `json:"slot_start"`
	SlotEnd       string    `json:"slot_end"`
	ReturnTime    string    `json:"return_time,omitempty"`
	BilledUnits   int       `json:"billed_units"`
	TotalCost     int       `json:"total_cost"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingList struct {
	Total    int               `json:"total"`
	Bookings []BookingResponse `json:"bookings"`
}

// CompleteReturnRequest is the staff return-intake form.
type CompleteReturnRequest struct {
	BatteryLevel int    `json:"battery_level" validate:"gte=0,lte=100"`
	Notes        string `json:"notes"`
}

// BookingEmailData feeds the confirmation email template.
type BookingEmailData struct {
	UserName           string
	BookingCode        string
	VehiclePlate       string
	StartTimeFormatted string
	EndTimeFormatted   string
	TotalCost          int
	Status             string
	CurrentYear        int
}
