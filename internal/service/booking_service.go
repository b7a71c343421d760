package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"voltrent/internal/booking"
	"voltrent/internal/db"
	"voltrent/internal/entities"
	apperrors "voltrent/internal/errors"
	"voltrent/internal/repository"
)

// PaymentWindow is how long a pending booking holds its vehicle before the
// expiry job releases it.
const PaymentWindow = 5 * time.Minute

const (
	vehicleAvailable = "available"
	vehicleReserved  = "reserved"
	vehicleInUse     = "in_use"

	paymentUnpaid   = "unpaid"
	paymentPaid     = "paid"
	paymentRefunded = "refunded"

	payWithWallet = "wallet"
	payOnsite     = "onsite"
)

var (
	ErrVehicleUnavailable = errors.New("vehicle is not available for the requested window")
	ErrPaymentExpired     = errors.New("payment window has expired")
	ErrNotCancelable      = errors.New("booking can no longer be cancelled")
	ErrDocumentRequired   = errors.New("customer has no approved driver document")
)

type BookingService struct {
	Repo         *repository.BookingRepository
	Vehicles     *repository.VehicleRepository
	Documents    *repository.DocumentRepository
	Notification *repository.NotificationRepository
	Customers    repository.CustomerRepository
	Wallet       *WalletService
	Sender       *SenderService
}

func NewBookingService(
	repo *repository.BookingRepository,
	vehicles *repository.VehicleRepository,
	documents *repository.DocumentRepository,
	notification *repository.NotificationRepository,
	customers repository.CustomerRepository,
	wallet *WalletService,
	sender *SenderService,
) *BookingService {
	return &BookingService{
		Repo:         repo,
		Vehicles:     vehicles,
		Documents:    documents,
		Notification: notification,
		Customers:    customers,
		Wallet:       wallet,
		Sender:       sender,
	}
}

// PickupSlots lists the selectable pickup slots for a date.
func (s *BookingService) PickupSlots(dateStr string, now time.Time) ([]booking.PickupSlot, error) {
	date, err := booking.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return booking.PickupSlots(date, now), nil
}

// ReturnOptions lists the return times for the slot starting at the given time.
func (s *BookingService) ReturnOptions(slotStart string) ([]booking.ReturnOption, error) {
	start, err := booking.ParseTimeOfDay(slotStart)
	if err != nil {
		return nil, err
	}
	if start%booking.SlotDuration != 0 {
		return nil, fmt.Errorf("slot start %s is not on a 30-minute boundary", start)
	}
	return booking.ReturnOptions(booking.SlotStartingAt(start)), nil
}

// Quote prices a rental window without creating anything.
func (s *BookingService) Quote(req entities.QuoteRequest) (*entities.QuoteResponse, error) {
	rental, err := parseRentalRequest(req.Mode, req.StartDate, req.EndDate, req.SlotStart, req.ReturnTime)
	if err != nil {
		return nil, err
	}
	if err := rental.Validate(); err != nil {
		return nil, err
	}
	rates, err := s.Vehicles.GetRateCard(req.VehicleID)
	if err != nil {
		return nil, err
	}
	quote, err := booking.Quote(rental, rates)
	if err != nil {
		return nil, err
	}
	return &entities.QuoteResponse{
		Mode:        string(quote.Mode),
		BilledUnits: quote.BilledUnits,
		BaseCost:    quote.BaseCost,
		TotalCost:   quote.TotalCost,
	}, nil
}

// CreateBooking runs the details step of the booking flow: it validates the
// request through the wizard guards, prices the rental, and stores a pending
// booking that must be paid within the payment window.
func (s *BookingService) CreateBooking(customerID int, req entities.CreateBookingRequest) (*entities.BookingResponse, error) {
	rental, err := parseRentalRequest(req.Mode, req.StartDate, req.EndDate, req.SlotStart, req.ReturnTime)
	if err != nil {
		return nil, err
	}

	wizard := booking.NewWizard()
	customer := booking.CustomerDetails{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
	}
	if err := wizard.SubmitDetails(rental, customer); err != nil {
		return nil, err
	}

	vehicle, err := s.Vehicles.GetVehicle(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != vehicleAvailable {
		return nil, ErrVehicleUnavailable
	}

	start, end := rental.PickupAt(), rental.ReturnAt()
	overlapping, err := s.Repo.HasOverlappingBooking(vehicle.ID, start, end)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, ErrVehicleUnavailable
	}

	rates := booking.RateCard{PricePerHour: vehicle.PricePerHour, PricePerDay: vehicle.PricePerDay}
	quote, err := booking.Quote(rental, rates)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &db.Booking{
		Code:          newBookingCode(),
		CustomerID:    customerID,
		VehicleID:     vehicle.ID,
		Mode:          string(rental.Mode),
		StartTime:     start,
		EndTime:       end,
		SlotStart:     rental.Slot.Start.String(),
		SlotEnd:       rental.Slot.End.String(),
		ReturnTime:    rental.ReturnTime.String(),
		BilledUnits:   quote.BilledUnits,
		TotalCost:     quote.TotalCost,
		Status:        booking.StatusPending,
		PaymentStatus: paymentUnpaid,
		PaymentMethod: req.PaymentMethod,
		ExpiresAt:     now.Add(PaymentWindow),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.CreateBooking(record); err != nil {
		log.Printf("Error creating booking: %v", err)
		return nil, err
	}

	if err := s.Vehicles.SetVehicleStatus(vehicle.ID, vehicleReserved); err != nil {
		log.Printf("Could not reserve vehicle %d for booking %s: %v", vehicle.ID, record.Code, err)
	}

	return bookingResponse(record, vehicle.Plate), nil
}

// ConfirmPayment is the payment step. Wallet bookings are debited for the
// quoted total; an insufficient balance leaves the booking pending so the
// customer can retry within the window. Onsite bookings confirm without a
// debit and settle at the pickup desk.
func (s *BookingService) ConfirmPayment(customerID int, code string) (*entities.BookingResponse, error) {
	record, err := s.Repo.GetBookingForCustomer(code, customerID)
	if err != nil {
		return nil, err
	}
	if record.Status != booking.StatusPending {
		return nil, apperrors.ErrConflict(fmt.Sprintf("booking %s is %s, not awaiting payment", code, record.Status))
	}
	if time.Now().UTC().After(record.ExpiresAt) {
		return nil, ErrPaymentExpired
	}

	if record.PaymentMethod == payWithWallet {
		if err := s.Wallet.Charge(customerID, record.TotalCost, record.Code); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.UpdateStatus(record.ID, booking.StatusPending, booking.StatusConfirmed); err != nil {
		return nil, err
	}
	record.Status = booking.StatusConfirmed
	if record.PaymentMethod == payWithWallet {
		if err := s.Repo.SetPaymentStatus(record.ID, paymentPaid); err != nil {
			log.Printf("Could not mark booking %s paid: %v", code, err)
		}
		record.PaymentStatus = paymentPaid
	}

	s.notifyCustomer(customerID, record, "confirmed")
	return bookingResponse(record, ""), nil
}

// CancelBooking cancels a pending or confirmed booking. Paid bookings are
// refunded to the wallet; a picked-up booking can no longer be cancelled.
func (s *BookingService) CancelBooking(customerID int, code string) error {
	record, err := s.Repo.GetBookingForCustomer(code, customerID)
	if err != nil {
		return err
	}
	if !booking.CanTransition(record.Status, booking.StatusCanceled) {
		return ErrNotCancelable
	}
	if err := s.Repo.UpdateStatus(record.ID, record.Status, booking.StatusCanceled); err != nil {
		return err
	}
	if record.PaymentStatus == paymentPaid {
		if err := s.Wallet.Refund(customerID, record.TotalCost, record.Code); err != nil {
			log.Printf("Refund for booking %s failed: %v", code, err)
			return err
		}
		if err := s.Repo.SetPaymentStatus(record.ID, paymentRefunded); err != nil {
			log.Printf("Could not mark booking %s refunded: %v", code, err)
		}
	}
	if err := s.Vehicles.SetVehicleStatus(record.VehicleID, vehicleAvailable); err != nil {
		log.Printf("Could not release vehicle %d: %v", record.VehicleID, err)
	}

	record.Status = booking.StatusCanceled
	s.notifyCustomer(customerID, record, "cancelled")
	return nil
}

func (s *BookingService) GetBooking(customerID int, code string) (*entities.BookingResponse, error) {
	record, err := s.Repo.GetBookingForCustomer(code, customerID)
	if err != nil {
		return nil, err
	}
	return bookingResponse(record, ""), nil
}

func (s *BookingService) ListBookings(customerID int) (*entities.BookingList, error) {
	records, err := s.Repo.ListBookingsByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return bookingList(records), nil
}

// ListBookingsForDate is the staff desk view.
func (s *BookingService) ListBookingsForDate(date, status string) (*entities.BookingList, error) {
	records, err := s.Repo.ListBookingsForDate(date, status)
	if err != nil {
		return nil, err
	}
	return bookingList(records), nil
}

// ConfirmPickup is the staff verification step. The booking must be confirmed
// (paid) and the customer must have an approved driver document on file.
func (s *BookingService) ConfirmPickup(code string) (*entities.BookingResponse, error) {
	record, err := s.Repo.GetBookingByCode(code)
	if err != nil {
		return nil, err
	}
	if record.Status != booking.StatusConfirmed {
		return nil, apperrors.ErrConflict(fmt.Sprintf("booking %s is %s, not ready for pickup", code, record.Status))
	}
	approved, err := s.Documents.HasApprovedDocument(record.CustomerID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, ErrDocumentRequired
	}
	if err := s.Repo.UpdateStatus(record.ID, booking.StatusConfirmed, booking.StatusPickedUp); err != nil {
		return nil, err
	}
	// Onsite bookings settle at the desk when the keys are handed over.
	if record.PaymentMethod == payOnsite && record.PaymentStatus != paymentPaid {
		if err := s.Repo.SetPaymentStatus(record.ID, paymentPaid); err != nil {
			log.Printf("Could not mark booking %s paid: %v", code, err)
		}
		record.PaymentStatus = paymentPaid
	}
	if err := s.Vehicles.SetVehicleStatus(record.VehicleID, vehicleInUse); err != nil {
		log.Printf("Could not mark vehicle %d in use: %v", record.VehicleID, err)
	}
	record.Status = booking.StatusPickedUp
	return bookingResponse(record, ""), nil
}

// CompleteReturn closes out a rental: the staff member records the return
// inspection, the vehicle is released, and the customer gets a handover entry.
func (s *BookingService) CompleteReturn(staffID int, code string, batteryLevel int, notes string) (*entities.BookingResponse, error) {
	record, err := s.Repo.GetBookingByCode(code)
	if err != nil {
		return nil, err
	}
	if record.Status != booking.StatusPickedUp {
		return nil, apperrors.ErrConflict(fmt.Sprintf("booking %s is %s, not out on rental", code, record.Status))
	}
	if err := s.Repo.UpdateStatus(record.ID, booking.StatusPickedUp, booking.StatusCompleted); err != nil {
		return nil, err
	}
	handover := &db.Handover{
		BookingID:    record.ID,
		StaffID:      staffID,
		BatteryLevel: batteryLevel,
		Notes:        notes,
	}
	if err := s.Notification.CreateHandover(handover); err != nil {
		log.Printf("Could not record handover for booking %s: %v", code, err)
	}
	if err := s.Vehicles.SetVehicleStatus(record.VehicleID, vehicleAvailable); err != nil {
		log.Printf("Could not release vehicle %d: %v", record.VehicleID, err)
	}
	record.Status = booking.StatusCompleted
	return bookingResponse(record, ""), nil
}

func (s *BookingService) notifyCustomer(customerID int, record *db.Booking, status string) {
	// A contact lookup failure only costs the notification, never the booking
	// operation.
	customer, err := s.Customers.GetByID(customerID)
	if err != nil || customer == nil {
		log.Printf("Could not load contact info for customer %d: %v", customerID, err)
		return
	}
	s.Sender.SendBookingEmail(customer.Email, entities.BookingEmailData{
		UserName:           customer.FullName,
		BookingCode:        record.Code,
		StartTimeFormatted: record.StartTime.Format("02 Jan 2006 15:04 MST"),
		EndTimeFormatted:   record.EndTime.Format("02 Jan 2006 15:04 MST"),
		TotalCost:          record.TotalCost,
		Status:             status,
		CurrentYear:        time.Now().Year(),
	})
	s.Sender.SendBookingSMS(customer.Phone, record.Code, status, record.StartTime)
}

func parseRentalRequest(mode, startDate, endDate, slotStart, returnTime string) (booking.RentalRequest, error) {
	var req booking.RentalRequest

	start, err := booking.ParseDate(startDate)
	if err != nil {
		return req, err
	}
	end, err := booking.ParseDate(endDate)
	if err != nil {
		return req, err
	}
	slot, err := booking.ParseTimeOfDay(slotStart)
	if err != nil {
		return req, err
	}
	if slot%booking.SlotDuration != 0 {
		return req, fmt.Errorf("slot start %s is not on a 30-minute boundary", slot)
	}
	ret, err := booking.ParseReturnTime(returnTime)
	if err != nil {
		return req, err
	}

	return booking.RentalRequest{
		Mode:       booking.RentalMode(mode),
		StartDate:  start,
		EndDate:    end,
		Slot:       booking.SlotStartingAt(slot),
		ReturnTime: ret,
	}, nil
}

func newBookingCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

func bookingResponse(b *db.Booking, plate string) *entities.BookingResponse {
	return &entities.BookingResponse{
		Code:          b.Code,
		VehicleID:     b.VehicleID,
		VehiclePlate:  plate,
		Mode:          b.Mode,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		SlotStart:     b.SlotStart,
		SlotEnd:       b.SlotEnd,
		ReturnTime:    b.ReturnTime,
		BilledUnits:   b.BilledUnits,
		TotalCost:     b.TotalCost,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		PaymentMethod: b.PaymentMethod,
		ExpiresAt:     b.ExpiresAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func bookingList(records []db.Booking) *entities.BookingList {
	list := &entities.BookingList{Total: len(records)}
	for i := range records {
		list.Bookings = append(list.Bookings, *bookingResponse(&records[i], ""))
	}
	return list
}
