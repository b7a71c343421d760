package booking

import (
	"fmt"
	"time"
)

// RateCard is a vehicle's pricing, in the smallest currency unit.
type RateCard struct {
	PricePerHour int `json:"price_per_hour"`
	PricePerDay  int `json:"price_per_day"`
}

// PriceQuote is the deterministic price derived from a rental request and a
// rate card. BilledUnits is the rounded-up hour or day count.
type PriceQuote struct {
	Mode        RentalMode `json:"mode"`
	BilledUnits int        `json:"billed_units"`
	BaseCost    int        `json:"base_cost"`
	TotalCost   int        `json:"total_cost"`
}

// HourlyQuote prices an hourly rental. The billing window starts at the end of
// the pickup slot, not its start, and runs to the chosen return time. Partial
// hours are rounded up, with a floor of one billed hour.
func HourlyQuote(slot PickupSlot, returnAt TimeOfDay, rates RateCard) (PriceQuote, error) {
	if !returnAt.Valid() || returnAt < slot.End {
		return PriceQuote{}, fmt.Errorf("return time %s is before pickup slot end %s", returnAt, slot.End)
	}
	minutes := int(returnAt - slot.End)
	hours := (minutes + 59) / 60
	if hours < 1 {
		hours = 1
	}
	base := hours * rates.PricePerHour
	return PriceQuote{Mode: ModeHourly, BilledUnits: hours, BaseCost: base, TotalCost: base}, nil
}

// DailyQuote prices a daily rental spanning two full timestamps. Partial days
// are rounded up, with a floor of one billed day.
func DailyQuote(start, end time.Time, rates RateCard) (PriceQuote, error) {
	if !end.After(start) {
		return PriceQuote{}, fmt.Errorf("end time must be after start time")
	}
	d := end.Sub(start)
	days := int(d / (hoursPerDay * time.Hour))
	if d%(hoursPerDay*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	base := days * rates.PricePerDay
	return PriceQuote{Mode: ModeDaily, BilledUnits: days, BaseCost: base, TotalCost: base}, nil
}

// Quote prices a rental request against a rate card, dispatching on mode.
func Quote(req RentalRequest, rates RateCard) (PriceQuote, error) {
	switch req.Mode {
	case ModeHourly:
		return HourlyQuote(req.Slot, req.ReturnTime, rates)
	case ModeDaily:
		return DailyQuote(req.PickupAt(), req.ReturnAt(), rates)
	default:
		return PriceQuote{}, fmt.Errorf("unknown rental mode %q", req.Mode)
	}
}
