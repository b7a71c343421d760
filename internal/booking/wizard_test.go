package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyRequest() RentalRequest {
	return RentalRequest{
		Mode:       ModeHourly,
		StartDate:  date(2024, 3, 15, 0, 0, 0),
		EndDate:    date(2024, 3, 15, 0, 0, 0),
		Slot:       SlotStartingAt(10 * 60),
		ReturnTime: 12 * 60,
	}
}

func fullCustomer() CustomerDetails {
	return CustomerDetails{
		FullName:      "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "+390000000000",
		LicenseNumber: "B1234567",
	}
}

func TestWizardHappyPath(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepDetails, w.Step())

	require.NoError(t, w.SubmitDetails(hourlyRequest(), fullCustomer()))
	assert.Equal(t, StepPayment, w.Step())

	require.NoError(t, w.CompletePayment())
	assert.Equal(t, StepConfirmation, w.Step())
}

func TestWizardRejectsIncompleteCustomer(t *testing.T) {
	w := NewWizard()
	customer := fullCustomer()
	customer.Phone = ""

	err := w.SubmitDetails(hourlyRequest(), customer)
	assert.ErrorIs(t, err, ErrMissingCustomerInfo)
	assert.Equal(t, StepDetails, w.Step(), "guard failure must not advance the wizard")
}

func TestWizardRejectsInvalidDurations(t *testing.T) {
	t.Run("hourly under one hour", func(t *testing.T) {
		w := NewWizard()
		req := hourlyRequest()
		req.ReturnTime = req.Slot.End + 30
		assert.ErrorIs(t, w.SubmitDetails(req, fullCustomer()), ErrMinHourlyDuration)
		assert.Equal(t, StepDetails, w.Step())
	})

	t.Run("hourly across days", func(t *testing.T) {
		w := NewWizard()
		req := hourlyRequest()
		req.EndDate = date(2024, 3, 16, 0, 0, 0)
		assert.ErrorIs(t, w.SubmitDetails(req, fullCustomer()), ErrHourlySameDay)
	})

	t.Run("daily same date", func(t *testing.T) {
		w := NewWizard()
		req := RentalRequest{
			Mode:      ModeDaily,
			StartDate: date(2024, 1, 1, 0, 0, 0),
			EndDate:   date(2024, 1, 1, 0, 0, 0),
			Slot:      SlotStartingAt(9 * 60),
		}
		assert.ErrorIs(t, w.SubmitDetails(req, fullCustomer()), ErrMinDailyDuration)
	})
}

func TestWizardBack(t *testing.T) {
	w := NewWizard()
	require.NoError(t, w.SubmitDetails(hourlyRequest(), fullCustomer()))
	require.NoError(t, w.Back())
	assert.Equal(t, StepDetails, w.Step())

	// Confirmation is terminal: no back, no resubmission.
	require.NoError(t, w.SubmitDetails(hourlyRequest(), fullCustomer()))
	require.NoError(t, w.CompletePayment())
	assert.ErrorIs(t, w.Back(), ErrInvalidStep)
	assert.ErrorIs(t, w.CompletePayment(), ErrInvalidStep)
}

func TestWizardCannotSkipPayment(t *testing.T) {
	w := NewWizard()
	assert.ErrorIs(t, w.CompletePayment(), ErrInvalidStep)
}
