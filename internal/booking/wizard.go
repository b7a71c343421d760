package booking

import (
	"errors"
	"fmt"
)

// WizardStep is one of the three stages of the booking flow.
type WizardStep string

const (
	StepDetails      WizardStep = "details"
	StepPayment      WizardStep = "payment"
	StepConfirmation WizardStep = "confirmation"
)

var ErrInvalidStep = errors.New("invalid wizard step transition")

// Wizard is the booking flow state machine: Details -> Payment -> Confirmation,
// strictly forward-progressing, with a single Back edge from Payment.
// Transitions are guarded; a rejected guard leaves the wizard where it was.
type Wizard struct {
	step     WizardStep
	request  RentalRequest
	customer CustomerDetails
}

func NewWizard() *Wizard {
	return &Wizard{step: StepDetails}
}

func (w *Wizard) Step() WizardStep        { return w.step }
func (w *Wizard) Request() RentalRequest  { return w.request }
func (w *Wizard) Customer() CustomerDetails { return w.customer }

// SubmitDetails moves Details -> Payment. Guards: all customer fields present
// and the rental window passes its mode-specific duration rules.
func (w *Wizard) SubmitDetails(req RentalRequest, customer CustomerDetails) error {
	if w.step != StepDetails {
		return fmt.Errorf("%w: submit details from %s", ErrInvalidStep, w.step)
	}
	if !customer.Complete() {
		return ErrMissingCustomerInfo
	}
	if err := req.Validate(); err != nil {
		return err
	}
	w.request = req
	w.customer = customer
	w.step = StepPayment
	return nil
}

// Back returns from Payment to Details so the customer can edit the request.
func (w *Wizard) Back() error {
	if w.step != StepPayment {
		return fmt.Errorf("%w: back from %s", ErrInvalidStep, w.step)
	}
	w.step = StepDetails
	return nil
}

// CompletePayment moves Payment -> Confirmation after the payment collaborator
// reports success. A failed payment leaves the wizard at Payment for retry.
func (w *Wizard) CompletePayment() error {
	if w.step != StepPayment {
		return fmt.Errorf("%w: complete payment from %s", ErrInvalidStep, w.step)
	}
	w.step = StepConfirmation
	return nil
}
