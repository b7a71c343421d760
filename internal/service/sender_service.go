package service

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"voltrent/internal/entities"
)

// SenderService delivers booking notifications over email and SMS. Sends are
// fire-and-forget; a delivery failure never fails the booking operation.
type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingEmail(toEmail string, data entities.BookingEmailData) {
	subject := fmt.Sprintf("Your VoltRent booking is %s - Code: %s", data.Status, data.BookingCode)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour VoltRent booking is %s.\n\n"+
			"Booking Details:\n"+
			"Booking Code: %s\n"+
			"Vehicle Plate: %s\n"+
			"Pickup: %s\n"+
			"Return: %s\n"+
			"Total: %d\n\n"+
			"Thank you for choosing VoltRent.\n\n"+
			"VoltRent %d. All rights reserved.",
		data.UserName, data.Status, data.BookingCode, data.VehiclePlate,
		data.StartTimeFormatted, data.EndTimeFormatted, data.TotalCost, data.CurrentYear,
	)

	go func() {
		if err := sendEmailWithSendGrid(toEmail, data.UserName, subject, body); err != nil {
			log.Printf("ALERT: email for booking %s failed: %v", data.BookingCode, err)
		}
	}()
}

func (s *SenderService) SendBookingSMS(toPhone, code, status string, pickup time.Time) {
	msg := fmt.Sprintf("VoltRent: booking %s is %s!\nPickup: %s.\nMore details in your email.",
		code, status, pickup.Format("02/01 15:04"))

	go func() {
		if err := sendSMS(toPhone, msg); err != nil {
			log.Printf("ALERT: SMS for booking %s to %s failed: %v", code, toPhone, err)
		}
	}()
}

func sendEmailWithSendGrid(toEmail, toName, subject, plainTextContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "VoltRent"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func sendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("twilio credentials not fully configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number %q is not E.164, the SMS may fail", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
