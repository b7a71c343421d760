package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltrent/internal/repository"
)

func bookingServiceWithMock(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	svc := NewBookingService(
		repository.NewBookingRepository(database),
		repository.NewVehicleRepository(database),
		repository.NewDocumentRepository(database),
		repository.NewNotificationRepository(database),
		&fakeCustomerRepo{},
		NewWalletService(repository.NewWalletRepository(database)),
		NewSenderService(),
	)
	return svc, mock
}

func storedBookingRow(status, paymentStatus, paymentMethod string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "code", "customer_id", "vehicle_id", "mode", "start_time", "end_time",
		"slot_start", "slot_end", "return_time", "billed_units", "total_cost",
		"status", "payment_status", "payment_method", "expires_at", "created_at", "updated_at",
	}).AddRow(
		42, "AB12CD34EF", 7, 3, "hourly", now, now.Add(2*time.Hour),
		"09:00", "09:30", "11:30", 2, 20000,
		status, paymentStatus, paymentMethod, now.Add(PaymentWindow), now, now,
	)
}

func TestConfirmPaymentWalletDebitsAndMarksPaid(t *testing.T) {
	svc, mock := bookingServiceWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE code = \\$1 AND customer_id = \\$2").
		WithArgs("AB12CD34EF", 7).
		WillReturnRows(storedBookingRow("pending", "unpaid", payWithWallet))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM wallet_transactions").
		WithArgs(7, repository.TxStatusConfirmed).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(50000))
	mock.ExpectQuery("INSERT INTO wallet_transactions").
		WithArgs(7, -20000, repository.TxKindDebit, repository.TxStatusConfirmed, "AB12CD34EF", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))
	mock.ExpectExec("UPDATE bookings SET status = \\$1").
		WithArgs("confirmed", 42, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status = \\$1").
		WithArgs("paid", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.ConfirmPayment(7, "AB12CD34EF")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPaymentOnsiteSkipsWallet(t *testing.T) {
	svc, mock := bookingServiceWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE code = \\$1 AND customer_id = \\$2").
		WithArgs("AB12CD34EF", 7).
		WillReturnRows(storedBookingRow("pending", "unpaid", payOnsite))
	mock.ExpectExec("UPDATE bookings SET status = \\$1").
		WithArgs("confirmed", 42, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.ConfirmPayment(7, "AB12CD34EF")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "unpaid", resp.PaymentStatus, "onsite bookings settle at pickup, not here")
	assert.Equal(t, payOnsite, resp.PaymentMethod)
	assert.NoError(t, mock.ExpectationsWereMet(), "an onsite confirmation must not touch the wallet")
}

func TestConfirmPickupSettlesOnsitePayment(t *testing.T) {
	svc, mock := bookingServiceWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE code = \\$1").
		WithArgs("AB12CD34EF").
		WillReturnRows(storedBookingRow("confirmed", "unpaid", payOnsite))
	mock.ExpectQuery("SELECT COUNT\\(id\\) FROM documents").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("UPDATE bookings SET status = \\$1").
		WithArgs("picked_up", 42, "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status = \\$1").
		WithArgs("paid", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE vehicles SET status = \\$1").
		WithArgs("in_use", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.ConfirmPickup("AB12CD34EF")
	require.NoError(t, err)
	assert.Equal(t, "picked_up", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
