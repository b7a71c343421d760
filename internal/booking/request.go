package booking

import (
	"errors"
	"time"
)

// RentalMode is the billing basis selected by the customer.
type RentalMode string

const (
	ModeHourly RentalMode = "hourly"
	ModeDaily  RentalMode = "daily"
)

var (
	ErrUnknownMode         = errors.New("unknown rental mode")
	ErrHourlySameDay       = errors.New("hourly rentals must start and end on the same day")
	ErrMinHourlyDuration   = errors.New("hourly rentals must last at least one hour")
	ErrMinDailyDuration    = errors.New("daily rentals must last at least one day")
	ErrMissingCustomerInfo = errors.New("customer details are incomplete")
)

// RentalRequest is a customer's desired rental window. For hourly rentals the
// billing origin is the pickup slot's end; ReturnTime of EndOfDay means 24:00.
type RentalRequest struct {
	Mode       RentalMode `json:"mode"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Slot       PickupSlot `json:"slot"`
	ReturnTime TimeOfDay  `json:"return_time"`
}

// PickupAt is the full pickup timestamp, anchored at the slot's start.
func (r RentalRequest) PickupAt() time.Time { return r.Slot.Start.On(r.StartDate) }

// ReturnAt is the full return timestamp.
func (r RentalRequest) ReturnAt() time.Time { return r.ReturnTime.On(r.EndDate) }

// Validate enforces the mode-specific minimum duration rules.
func (r RentalRequest) Validate() error {
	switch r.Mode {
	case ModeHourly:
		if !sameDate(r.StartDate, r.EndDate) {
			return ErrHourlySameDay
		}
		if !ValidHourlyDuration(r.Slot.End, r.ReturnTime) {
			return ErrMinHourlyDuration
		}
	case ModeDaily:
		if !ValidDailyDuration(r.StartDate, r.EndDate) {
			return ErrMinDailyDuration
		}
	default:
		return ErrUnknownMode
	}
	return nil
}

// CustomerDetails are the fields the customer must fill in before payment.
type CustomerDetails struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

// Complete reports whether every customer field is filled in.
func (c CustomerDetails) Complete() bool {
	return c.FullName != "" && c.Email != "" && c.Phone != "" && c.LicenseNumber != ""
}
