package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetPendingBookingIDsExpiredBefore finds bookings still awaiting payment whose
// payment window closed before the given time.
func (r *JobRepository) GetPendingBookingIDsExpiredBefore(t time.Time) ([]int, error) {
	rows, err := r.DB.Query(
		`SELECT id FROM bookings WHERE status = 'pending' AND expires_at < $1`, t,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying expired pending bookings: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetConfirmedBookingIDsPastEndTime finds paid bookings whose rental window has
// elapsed without a pickup ever happening.
func (r *JobRepository) GetConfirmedBookingIDsPastEndTime() ([]int, error) {
	rows, err := r.DB.Query(
		`SELECT id FROM bookings WHERE status = 'confirmed' AND end_time < NOW()`,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed bookings past end time: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetOverdueBookings lists picked-up bookings past their end time, with the
// customer owning each, for overdue incident notifications.
func (r *JobRepository) GetOverdueBookings() (map[int]int, error) {
	rows, err := r.DB.Query(
		`SELECT id, customer_id FROM bookings WHERE status = 'picked_up' AND end_time < NOW()`,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying overdue bookings: %w", err)
	}
	defer rows.Close()

	overdue := make(map[int]int)
	for rows.Next() {
		var id, customerID int
		if err := rows.Scan(&id, &customerID); err != nil {
			return nil, err
		}
		overdue[id] = customerID
	}
	return overdue, rows.Err()
}

func (r *JobRepository) UpdateBookingStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.DB.Exec(
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`,
		newStatus, pq.Array(ids),
	)
	if err != nil {
		return fmt.Errorf("error updating booking statuses: %w", err)
	}
	return nil
}

// ReleaseVehicles frees the vehicles held by the given bookings.
func (r *JobRepository) ReleaseVehicles(bookingIDs []int) error {
	if len(bookingIDs) == 0 {
		return nil
	}
	_, err := r.DB.Exec(
		`UPDATE vehicles SET status = 'available', updated_at = NOW()
		 WHERE id IN (SELECT vehicle_id FROM bookings WHERE id = ANY($1))`,
		pq.Array(bookingIDs),
	)
	if err != nil {
		return fmt.Errorf("error releasing vehicles: %w", err)
	}
	return nil
}
