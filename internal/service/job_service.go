package service

import (
	"fmt"
	"log"
	"time"

	"voltrent/internal/booking"
	"voltrent/internal/repository"
)

type JobService struct {
	Repo          *repository.JobRepository
	Notifications *NotificationService
}

func NewJobService(repo *repository.JobRepository, notifications *NotificationService) *JobService {
	return &JobService{Repo: repo, Notifications: notifications}
}

// ExpireUnpaidBookings releases bookings whose payment window has closed. This
// is the server side of the 5-minute payment countdown.
func (s *JobService) ExpireUnpaidBookings() error {
	ids, err := s.Repo.GetPendingBookingIDsExpiredBefore(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to get expired pending bookings: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	log.Printf("Cron Job: expiring %d unpaid bookings. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateBookingStatuses(ids, booking.StatusExpired); err != nil {
		return fmt.Errorf("cron job: failed to expire bookings: %w", err)
	}
	if err := s.Repo.ReleaseVehicles(ids); err != nil {
		return fmt.Errorf("cron job: failed to release vehicles: %w", err)
	}
	return nil
}

// CompleteElapsedBookings closes paid bookings whose window elapsed without a
// pickup, freeing their vehicles.
func (s *JobService) CompleteElapsedBookings() error {
	ids, err := s.Repo.GetConfirmedBookingIDsPastEndTime()
	if err != nil {
		return fmt.Errorf("cron job: failed to get elapsed bookings: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	log.Printf("Cron Job: completing %d elapsed bookings. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateBookingStatuses(ids, booking.StatusCompleted); err != nil {
		return fmt.Errorf("cron job: failed to complete bookings: %w", err)
	}
	if err := s.Repo.ReleaseVehicles(ids); err != nil {
		return fmt.Errorf("cron job: failed to release vehicles: %w", err)
	}
	return nil
}

// NotifyOverdueReturns raises an incident for every rental still out past its
// end time. The booking stays picked_up until staff complete the return.
func (s *JobService) NotifyOverdueReturns() error {
	overdue, err := s.Repo.GetOverdueBookings()
	if err != nil {
		return fmt.Errorf("cron job: failed to get overdue bookings: %w", err)
	}
	const title = "Return overdue"
	for bookingID, customerID := range overdue {
		exists, err := s.Notifications.Repo.HasIncidentForBooking(bookingID, title)
		if err != nil || exists {
			continue
		}
		err = s.Notifications.RaiseIncident(customerID, bookingID, title,
			"Your rental has passed its scheduled return time. Please return the vehicle to its station.")
		if err != nil {
			log.Printf("Cron Job: could not raise overdue incident for booking %d: %v", bookingID, err)
		}
	}
	return nil
}
