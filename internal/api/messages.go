package api

import (
	"fmt"
	"strings"

	"citabot/internal/bot"
	"citabot/internal/entities"
)

// Reply rendering. The engine returns structured results; the prose the
// user sees lives here, next to the transport.

const systemErrorMessage = "Sorry, I'm having trouble processing your request. Please try again later."

const bookingClarificationMessage = `I'd be happy to help you book an appointment! 📅

Please provide your booking details in this format:
Book [Your Name] [DD-MM-YYYY] [HH:MM]

Example: Book John Doe 15-08-2025 14:30

Business hours: 9:00 AM - 5:00 PM
Available slots: every 30 minutes (9:00, 9:30, 10:00, etc.)`

const cancelClarificationMessage = `To cancel an appointment, please use this format:
Cancel [DD-MM-YYYY] [HH:MM]

Example: Cancel 15-08-2025 14:30

To see your appointments, type "My appointments"`

const emptyListMessage = `You don't have any upcoming appointments. 📅

To book a new appointment, send:
Book [Your Name] [DD-MM-YYYY] [HH:MM]

Example: Book John Doe 15-08-2025 14:30`

const helpMessage = `Welcome to our appointment booking bot! 👋

Available commands:

📅 Book an appointment:
Book [Your Name] [DD-MM-YYYY] [HH:MM]
Example: Book John Doe 15-08-2025 14:30

📋 View your appointments:
Type "My appointments"

❌ Cancel an appointment:
Cancel [DD-MM-YYYY] [HH:MM]
Example: Cancel 15-08-2025 14:30

Business hours: 9:00 AM - 5:00 PM
Available slots: every 30 minutes

Need help? Just type "help" anytime!`

const unknownMessage = `Hi there! 👋 I'm your appointment booking assistant.

To book an appointment, send:
Book [Your Name] [DD-MM-YYYY] [HH:MM]

Example: Book John Doe 15-08-2025 14:30

Other commands:
• "My appointments" - view your bookings
• "Cancel [date] [time]" - cancel a booking
• "Help" - see all commands

How can I help you today?`

// RenderResult maps an engine result onto the WhatsApp reply text.
func RenderResult(res *entities.BotResult) string {
	switch res.Outcome {
	case entities.OutcomeNeedClarification:
		if res.Op == entities.OpCancel {
			return cancelClarificationMessage
		}
		return bookingClarificationMessage

	case entities.OutcomeInvalid:
		return fmt.Sprintf(
			"Sorry %s, the date/time you provided is not valid. ❌\n\n%s\n\nPlease try again with a valid date and time.",
			res.Name, violationHint(res.Violation),
		)

	case entities.OutcomeConfirmed:
		apt := res.Appointment
		return fmt.Sprintf(
			"Hello %s, your appointment for %s at %s is confirmed! ✅\n\n"+
				"Appointment details:\n"+
				"👤 Name: %s\n"+
				"📅 Date: %s\n"+
				"🕐 Time: %s\n"+
				"📱 Phone: %s\n\n"+
				"We look forward to seeing you! If you need to cancel, just let me know.",
			res.Name,
			bot.FormatDateForDisplay(res.Date), bot.FormatTimeForDisplay(res.Time),
			apt.Name,
			bot.FormatDateForDisplay(apt.Date), bot.FormatTimeForDisplay(apt.Time),
			apt.PhoneNumber,
		)

	case entities.OutcomeConflictAlternative:
		alt := res.Alternative
		return fmt.Sprintf(
			"Sorry %s, the slot on %s at %s is already booked. ❌\n\n"+
				"The next available slot is:\n"+
				"📅 %s at %s\n\n"+
				"Would you like to book this slot instead? If yes, please send:\n"+
				"Book %s %s %s",
			res.Name,
			bot.FormatDateForDisplay(res.Date), bot.FormatTimeForDisplay(res.Time),
			bot.FormatDateForDisplay(alt.Date), bot.FormatTimeForDisplay(alt.Time),
			res.Name, alt.Date, alt.Time,
		)

	case entities.OutcomeConflictExhausted:
		return fmt.Sprintf(
			"Sorry %s, the slot on %s at %s is not available, and I couldn't find any available slots in the next 7 days. ❌\n\n"+
				"Please try booking for a later date or contact us directly.",
			res.Name,
			bot.FormatDateForDisplay(res.Date), bot.FormatTimeForDisplay(res.Time),
		)

	case entities.OutcomeList:
		var b strings.Builder
		b.WriteString("Your upcoming appointments: 📅\n\n")
		for _, apt := range res.Appointments {
			fmt.Fprintf(&b, "👤 %s\n📅 %s\n🕐 %s\n📋 Status: %s\n─────────────────\n",
				apt.Name,
				bot.FormatDateForDisplay(apt.Date),
				bot.FormatTimeForDisplay(apt.Time),
				titleStatus(apt.Status),
			)
		}
		b.WriteString("\nTo cancel an appointment, send:\nCancel [DD-MM-YYYY] [HH:MM]")
		return b.String()

	case entities.OutcomeEmpty:
		return emptyListMessage

	case entities.OutcomeNotFound:
		return fmt.Sprintf(
			"No confirmed appointment found for %s at %s. ❌\n\nTo see your appointments, type \"My appointments\"",
			bot.FormatDateForDisplay(res.Date), bot.FormatTimeForDisplay(res.Time),
		)

	case entities.OutcomeCancelled:
		apt := res.Appointment
		return fmt.Sprintf(
			"Your appointment has been cancelled successfully! ✅\n\n"+
				"Cancelled appointment:\n"+
				"👤 Name: %s\n"+
				"📅 Date: %s\n"+
				"🕐 Time: %s\n\n"+
				"The slot is now available for other bookings. Thank you!",
			apt.Name,
			bot.FormatDateForDisplay(res.Date), bot.FormatTimeForDisplay(res.Time),
		)

	case entities.OutcomeHelp:
		return helpMessage

	default:
		return unknownMessage
	}
}

func titleStatus(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func violationHint(v bot.RuleViolation) string {
	switch v {
	case bot.RuleDateFormat:
		return "The date must be a real calendar date in DD-MM-YYYY format (e.g., 15-08-2025)."
	case bot.RuleDateInPast:
		return "That date has already passed."
	case bot.RuleTimeFormat:
		return "The time must be in 24-hour HH:MM format (e.g., 14:30)."
	case bot.RuleBusinessHours:
		return "Appointments must start between 9:00 and 16:30 (business hours: 9:00 AM - 5:00 PM)."
	case bot.RuleGranularity:
		return "Appointments start on the hour or half-hour only (9:00, 9:30, 10:00, etc.)."
	case bot.RuleLeadTime:
		return "Appointments must be booked at least 1 hour in advance."
	}
	return "Please check the date and time and try again."
}
