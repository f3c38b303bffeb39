package bot

import (
	"regexp"
	"strconv"
	"time"
)

// Clock supplies the current time so validation and slot search can be
// pinned to a fixed instant in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Booking rules. Slots start on the hour or half-hour between OpenHour
// and CloseHour, and must be booked at least LeadTime ahead.
const (
	OpenHour  = 9
	CloseHour = 17
	LeadTime  = time.Hour

	// DateLayout is the wire format for appointment dates (DD-MM-YYYY).
	DateLayout = "02-01-2006"
)

// RuleViolation identifies which booking rule a (date, time) pair breaks.
type RuleViolation int

const (
	RuleNone RuleViolation = iota
	RuleDateFormat
	RuleDateInPast
	RuleTimeFormat
	RuleBusinessHours
	RuleGranularity
	RuleLeadTime
)

func (v RuleViolation) String() string {
	switch v {
	case RuleNone:
		return "none"
	case RuleDateFormat:
		return "date format"
	case RuleDateInPast:
		return "date in past"
	case RuleTimeFormat:
		return "time format"
	case RuleBusinessHours:
		return "outside business hours"
	case RuleGranularity:
		return "off slot granularity"
	case RuleLeadTime:
		return "insufficient lead time"
	}
	return "unknown"
}

var (
	datePatternRe = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	timePatternRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// ParseDate parses a DD-MM-YYYY string. The returned time carries only
// the calendar components; its location is not meaningful.
func ParseDate(dateStr string) (time.Time, bool) {
	m := datePatternRe.FindStringSubmatch(dateStr)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (30-02 rolls into March), so a
	// round-trip mismatch means the calendar date does not exist.
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}

// ParseTime parses an H(H):MM 24-hour string.
func ParseTime(timeStr string) (hour, minute int, ok bool) {
	m := timePatternRe.FindStringSubmatch(timeStr)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// CheckDateTime validates a candidate slot against the calendar and the
// booking rules, relative to now. It returns RuleNone when the slot is
// bookable, otherwise the first rule the pair violates, checked in a
// fixed order: date shape, date not past, time shape, business hours,
// granularity, lead time.
func CheckDateTime(dateStr, timeStr string, now time.Time) RuleViolation {
	day, ok := ParseDate(dateStr)
	if !ok {
		return RuleDateFormat
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return RuleDateInPast
	}

	hour, minute, ok := ParseTime(timeStr)
	if !ok {
		return RuleTimeFormat
	}
	if hour < OpenHour || hour >= CloseHour {
		return RuleBusinessHours
	}
	if minute != 0 && minute != 30 {
		return RuleGranularity
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now.Add(LeadTime)) {
		return RuleLeadTime
	}
	return RuleNone
}
