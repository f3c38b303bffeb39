package bot

import (
	"regexp"
	"strings"
)

// IntentKind classifies what the user is asking the bot to do.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentBook
	IntentViewAppointments
	IntentCancel
	IntentHelp
)

// Intent is the structured interpretation of one inbound message. Fields
// the matching rule could not extract are left empty; the caller decides
// how to ask for clarification.
type Intent struct {
	Kind IntentKind
	Name string
	Date string // DD-MM-YYYY
	Time string // HH:MM
}

var (
	strictBookRe   = regexp.MustCompile(`(?i)book\s+(.+?)\s+(\d{2}-\d{2}-\d{4})\s+(\d{1,2}:\d{2})`)
	dateTokenRe    = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)
	timeTokenRe    = regexp.MustCompile(`\d{1,2}:\d{2}`)
	fillerWordsRe  = regexp.MustCompile(`(?i)\b(book|appointment|for|my name is|i am|i'm|want to|need|on|at)\b`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	cancelPrefixRe = regexp.MustCompile(`(?i)^cancel\s+`)
	cancelSlotRe   = regexp.MustCompile(`(?i)(\d{2}-\d{2}-\d{4})\s+(?:at\s+)?(\d{1,2}:\d{1,2})`)
)

var listingKeywords = map[string]bool{
	"my appointments":   true,
	"appointments":      true,
	"my bookings":       true,
	"view appointments": true,
}

var helpKeywords = map[string]bool{
	"help":     true,
	"menu":     true,
	"commands": true,
}

// ParseMessage maps free-form text onto an Intent. The matchers run in a
// fixed priority order; the first one that applies wins. ParseMessage
// never fails: anything it cannot place becomes IntentUnknown.
func ParseMessage(text string) Intent {
	msg := strings.TrimSpace(text)
	lower := strings.ToLower(msg)

	if listingKeywords[lower] {
		return Intent{Kind: IntentViewAppointments}
	}
	if strings.HasPrefix(lower, "cancel") {
		date, timeStr := ParseCancelMessage(msg)
		return Intent{Kind: IntentCancel, Date: date, Time: timeStr}
	}
	if strings.Contains(lower, "book") ||
		strings.Contains(lower, "appointment") ||
		strings.Contains(lower, "schedule") ||
		strings.Contains(lower, "meeting") {
		name, date, timeStr := ExtractBookingDetails(msg)
		return Intent{Kind: IntentBook, Name: name, Date: date, Time: timeStr}
	}
	if helpKeywords[lower] {
		return Intent{Kind: IntentHelp}
	}
	return Intent{Kind: IntentUnknown}
}

// ExtractBookingDetails pulls (name, date, time) out of a booking message.
// It first tries the strict "book <name> <DD-MM-YYYY> <H(H):MM>" form,
// then falls back to locating date and time tokens anywhere in the text
// and treating the stripped-down text before the date as the name. All
// three results are empty when extraction fails.
func ExtractBookingDetails(text string) (name, date, timeStr string) {
	msg := strings.TrimSpace(text)

	if m := strictBookRe.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), m[2], NormalizeTime(m[3])
	}

	dateLoc := dateTokenRe.FindStringIndex(msg)
	timeTok := timeTokenRe.FindString(msg)
	if dateLoc == nil || timeTok == "" {
		return "", "", ""
	}

	beforeDate := strings.TrimSpace(msg[:dateLoc[0]])
	stripped := fillerWordsRe.ReplaceAllString(beforeDate, "")
	candidate := strings.TrimSpace(whitespaceRe.ReplaceAllString(stripped, " "))
	if len(candidate) < 2 {
		return "", "", ""
	}
	return candidate, msg[dateLoc[0]:dateLoc[1]], NormalizeTime(timeTok)
}

// ParseCancelMessage pulls (date, time) out of a cancellation message,
// accepting "Cancel DD-MM-YYYY HH:MM" with an optional "at" before the
// time. Both results are empty when extraction fails.
func ParseCancelMessage(text string) (date, timeStr string) {
	rest := cancelPrefixRe.ReplaceAllString(strings.TrimSpace(text), "")
	m := cancelSlotRe.FindStringSubmatch(rest)
	if m == nil {
		return "", ""
	}
	return m[1], NormalizeTime(m[2])
}

// NormalizeTime zero-pads hour and minute so "9:5" becomes "09:05".
func NormalizeTime(t string) string {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return t
	}
	hour, minute := parts[0], parts[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	if len(minute) == 1 {
		minute = "0" + minute
	}
	return hour + ":" + minute
}
