package service

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"citabot/internal/bot"
	"citabot/internal/db"
)

// NotifyService tells the business owner about booking events by email.
// Delivery is asynchronous and best-effort: a failed notification is
// logged, never surfaced to the user whose booking already succeeded.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) AppointmentBooked(apt *db.Appointment) {
	s.notifyOwner("booked", apt)
}

func (s *NotifyService) AppointmentCancelled(apt *db.Appointment) {
	s.notifyOwner("cancelled", apt)
}

func (s *NotifyService) notifyOwner(event string, apt *db.Appointment) {
	subject := fmt.Sprintf("Appointment %s: %s on %s at %s", event, apt.Name, apt.Date, apt.Time)
	body := fmt.Sprintf(
		"An appointment has been %s.\n\n"+
			"Name: %s\n"+
			"Phone: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Status: %s\n",
		event,
		apt.Name,
		apt.PhoneNumber,
		bot.FormatDateForDisplay(apt.Date),
		bot.FormatTimeForDisplay(apt.Time),
		apt.Status,
	)

	go func() {
		if err := SendOwnerEmail(subject, body); err != nil {
			log.Printf("WARNING (async): owner notification for %s %s failed: %v", apt.Date, apt.Time, err)
		}
	}()
}

// SendOwnerEmail sends a plain-text email to the configured business
// owner through SendGrid.
func SendOwnerEmail(subject, plainTextContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("WARNING: SENDGRID_API_KEY not set. Email will not be sent.")
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	if fromEmail == "" || ownerEmail == "" {
		log.Println("WARNING: SENDGRID_FROM_EMAIL or OWNER_EMAIL not set. Email will not be sent.")
		return fmt.Errorf("SENDGRID_FROM_EMAIL or OWNER_EMAIL not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Appointment Bot"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail("", ownerEmail)
	htmlContent := "<pre>" + plainTextContent + "</pre>"
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email through SendGrid: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Owner email sent (subject: %s). Status: %d", subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
}
