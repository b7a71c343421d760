package repository

import (
	"database/sql"

	"voltrent/internal/db"
	"voltrent/internal/entities"
)

type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(database *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: database}
}

func (r *NotificationRepository) CreateIncident(inc *db.Incident) error {
	query := `
	INSERT INTO incidents (customer_id, booking_id, title, body, read, created_at)
	VALUES ($1, $2, $3, $4, FALSE, NOW())
	RETURNING id, created_at`
	return r.DB.QueryRow(query, inc.CustomerID, inc.BookingID, inc.Title, inc.Body).
		Scan(&inc.ID, &inc.CreatedAt)
}

func (r *NotificationRepository) ListIncidents(customerID int) ([]entities.IncidentResponse, error) {
	rows, err := r.DB.Query(
		`SELECT id, booking_id, title, body, read, created_at
		 FROM incidents WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []entities.IncidentResponse
	for rows.Next() {
		var i entities.IncidentResponse
		if err := rows.Scan(&i.ID, &i.BookingID, &i.Title, &i.Body, &i.Read, &i.CreatedAt); err != nil {
			return nil, err
		}
		incidents = append(incidents, i)
	}
	return incidents, rows.Err()
}

func (r *NotificationRepository) UnreadIncidentCount(customerID int) (int, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(id) FROM incidents WHERE customer_id = $1 AND read = FALSE`,
		customerID,
	).Scan(&count)
	return count, err
}

func (r *NotificationRepository) MarkIncidentRead(id, customerID int) error {
	res, err := r.DB.Exec(
		`UPDATE incidents SET read = TRUE WHERE id = $1 AND customer_id = $2`,
		id, customerID,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// HasIncidentForBooking deduplicates job-raised incidents per booking.
func (r *NotificationRepository) HasIncidentForBooking(bookingID int, title string) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(id) FROM incidents WHERE booking_id = $1 AND title = $2`,
		bookingID, title,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *NotificationRepository) CreateHandover(h *db.Handover) error {
	query := `
	INSERT INTO handovers (booking_id, staff_id, battery_level, notes, created_at)
	VALUES ($1, $2, $3, $4, NOW())
	RETURNING id, created_at`
	return r.DB.QueryRow(query, h.BookingID, h.StaffID, h.BatteryLevel, h.Notes).
		Scan(&h.ID, &h.CreatedAt)
}

func (r *NotificationRepository) ListHandovers(customerID int) ([]entities.HandoverResponse, error) {
	rows, err := r.DB.Query(
		`SELECT h.id, b.code, h.battery_level, h.notes, h.created_at
		 FROM handovers h
		 JOIN bookings b ON h.booking_id = b.id
		 WHERE b.customer_id = $1
		 ORDER BY h.created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var handovers []entities.HandoverResponse
	for rows.Next() {
		var h entities.HandoverResponse
		if err := rows.Scan(&h.ID, &h.BookingCode, &h.BatteryLevel, &h.Notes, &h.CreatedAt); err != nil {
			return nil, err
		}
		handovers = append(handovers, h)
	}
	return handovers, rows.Err()
}
