package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/twilio/twilio-go/twiml"

	"citabot/internal/service"
)

// WebhookHandler receives inbound WhatsApp messages from Twilio and
// replies with TwiML. Twilio posts form-encoded payloads; Body carries
// the text and From the sender in "whatsapp:+NNN" form, which is used
// verbatim as the contact handle.
type WebhookHandler struct {
	Service *service.BookingService
}

func NewWebhookHandler(svc *service.BookingService) *WebhookHandler {
	return &WebhookHandler{Service: svc}
}

func (h *WebhookHandler) ReceiveMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	body := strings.TrimSpace(r.FormValue("Body"))
	from := r.FormValue("From")
	log.Printf("Received message %q from %s", body, from)

	var reply string
	result, err := h.Service.HandleMessage(body, from)
	if err != nil {
		// Storage failure: the user gets a generic apology, the detail
		// stays in the logs.
		log.Printf("Error processing message from %s: %v", from, err)
		reply = systemErrorMessage
	} else {
		reply = RenderResult(result)
	}

	writeTwiML(w, reply)
}

func writeTwiML(w http.ResponseWriter, body string) {
	message := &twiml.MessagingMessage{Body: body}
	doc, err := twiml.Messages([]twiml.Element{message})
	if err != nil {
		http.Error(w, "Error building response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	w.Write([]byte(doc))
}

// HealthCheck is a liveness probe.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"message": "WhatsApp appointment bot is running",
	})
}
