package service

import (
	"voltrent/internal/db"
	"voltrent/internal/entities"
	"voltrent/internal/repository"
)

// NotificationService backs the client's notification widgets: the incident
// feed, the handover list, and the unread counters the UI polls for.
type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) ListIncidents(customerID int) ([]entities.IncidentResponse, error) {
	return s.Repo.ListIncidents(customerID)
}

func (s *NotificationService) UnreadCount(customerID int) (*entities.UnreadCountResponse, error) {
	incidents, err := s.Repo.UnreadIncidentCount(customerID)
	if err != nil {
		return nil, err
	}
	return &entities.UnreadCountResponse{Incidents: incidents}, nil
}

func (s *NotificationService) MarkIncidentRead(id, customerID int) error {
	return s.Repo.MarkIncidentRead(id, customerID)
}

func (s *NotificationService) ListHandovers(customerID int) ([]entities.HandoverResponse, error) {
	return s.Repo.ListHandovers(customerID)
}

func (s *NotificationService) RaiseIncident(customerID, bookingID int, title, body string) error {
	return s.Repo.CreateIncident(&db.Incident{
		CustomerID: customerID,
		BookingID:  bookingID,
		Title:      title,
		Body:       body,
	})
}
