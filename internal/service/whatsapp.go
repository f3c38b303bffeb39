package service

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SendWhatsAppMessage delivers an outbound message through the Twilio
// WhatsApp channel. Inbound webhook replies go back as TwiML instead;
// this path is for bot-initiated messages like reminders.
func SendWhatsAppMessage(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_WHATSAPP_NUMBER")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("WARNING: Twilio credentials (SID, token or from number) not configured. Message will not be sent.")
		return fmt.Errorf("twilio credentials not fully configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(withWhatsAppPrefix(toNumber))
	params.SetFrom(withWhatsAppPrefix(fromNumber))
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error sending WhatsApp message to %s: %v", toNumber, err)
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Printf("WhatsApp message sent to %s. Message SID: %s", toNumber, *resp.Sid)
	}
	return nil
}

// withWhatsAppPrefix ensures the channel prefix Twilio expects. Numbers
// arriving from the webhook already carry it.
func withWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
