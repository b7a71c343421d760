package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"voltrent/internal/db"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrStaleStatus     = errors.New("booking status changed concurrently")
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

const bookingColumns = `id, code, customer_id, vehicle_id, mode, start_time, end_time,
	slot_start, slot_end, return_time, billed_units, total_cost, status, payment_status,
	payment_method, expires_at, created_at, updated_at`

func scanBooking(row *sql.Row) (*db.Booking, error) {
	var b db.Booking
	err := row.Scan(
		&b.ID, &b.Code, &b.CustomerID, &b.VehicleID, &b.Mode, &b.StartTime, &b.EndTime,
		&b.SlotStart, &b.SlotEnd, &b.ReturnTime, &b.BilledUnits, &b.TotalCost,
		&b.Status, &b.PaymentStatus, &b.PaymentMethod, &b.ExpiresAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error scanning booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
	INSERT INTO bookings
	(code, customer_id, vehicle_id, mode, start_time, end_time, slot_start, slot_end,
	 return_time, billed_units, total_cost, status, payment_status, payment_method,
	 expires_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		b.Code, b.CustomerID, b.VehicleID, b.Mode, b.StartTime, b.EndTime,
		b.SlotStart, b.SlotEnd, b.ReturnTime, b.BilledUnits, b.TotalCost,
		b.Status, b.PaymentStatus, b.PaymentMethod, b.ExpiresAt, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) GetBookingByCode(code string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE code = $1`
	return scanBooking(r.DB.QueryRow(query, code))
}

func (r *BookingRepository) GetBookingForCustomer(code string, customerID int) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE code = $1 AND customer_id = $2`
	return scanBooking(r.DB.QueryRow(query, code, customerID))
}

func (r *BookingRepository) ListBookingsByCustomer(customerID int) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.listBookings(query, customerID)
}

// ListBookingsForDate is the staff view: every booking whose rental window
// touches the given date, optionally filtered by status.
func (r *BookingRepository) ListBookingsForDate(date, status string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE DATE(start_time) = $1`
	args := []interface{}{date}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY start_time`
	return r.listBookings(query, args...)
}

func (r *BookingRepository) listBookings(query string, args ...interface{}) ([]db.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(
			&b.ID, &b.Code, &b.CustomerID, &b.VehicleID, &b.Mode, &b.StartTime, &b.EndTime,
			&b.SlotStart, &b.SlotEnd, &b.ReturnTime, &b.BilledUnits, &b.TotalCost,
			&b.Status, &b.PaymentStatus, &b.PaymentMethod, &b.ExpiresAt, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateStatus moves a booking between statuses with an optimistic check on
// the current value, so two staff members cannot apply conflicting updates.
func (r *BookingRepository) UpdateStatus(id int, from, to string) error {
	res, err := r.DB.Exec(
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *BookingRepository) SetPaymentStatus(id int, paymentStatus string) error {
	_, err := r.DB.Exec(
		`UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
		paymentStatus, id,
	)
	return err
}

// HasOverlappingBooking reports whether the vehicle already has a live booking
// intersecting the requested window.
func (r *BookingRepository) HasOverlappingBooking(vehicleID int, start, end time.Time) (bool, error) {
	var count int
	query := `
	SELECT COUNT(id) FROM bookings
	WHERE vehicle_id = $1
	  AND status IN ('pending', 'confirmed', 'picked_up')
	  AND start_time < $3
	  AND end_time > $2`
	if err := r.DB.QueryRow(query, vehicleID, start, end).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
