package bot

import (
	"testing"
	"time"
)

// now pins validation to 2025-08-20 10:00.
var now = time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC)

func TestCheckDateTime_AcceptsValidSlot(t *testing.T) {
	cases := []struct{ date, time string }{
		{"20-08-2025", "12:00"},
		{"20-08-2025", "11:30"}, // exactly past the 1 hour lead
		{"20-08-2025", "16:30"}, // last bookable start of the day
		{"21-08-2025", "09:00"},
		{"27-08-2025", "14:30"},
	}
	for _, c := range cases {
		if v := CheckDateTime(c.date, c.time, now); v != RuleNone {
			t.Fatalf("%s %s: expected valid, got %v", c.date, c.time, v)
		}
	}
}

func TestCheckDateTime_LeadTime(t *testing.T) {
	// 10:30 is only 30 minutes ahead.
	if v := CheckDateTime("20-08-2025", "10:30", now); v != RuleLeadTime {
		t.Fatalf("expected lead time violation, got %v", v)
	}
	// Exactly now+1h is still too soon; the slot must be strictly later.
	if v := CheckDateTime("20-08-2025", "11:00", now); v != RuleLeadTime {
		t.Fatalf("expected lead time violation at the boundary, got %v", v)
	}
	if v := CheckDateTime("20-08-2025", "12:00", now); v != RuleNone {
		t.Fatalf("expected valid one hour past the boundary, got %v", v)
	}
}

func TestCheckDateTime_BusinessHours(t *testing.T) {
	for _, timeStr := range []string{"08:30", "17:00", "18:30", "00:00", "23:30"} {
		if v := CheckDateTime("21-08-2025", timeStr, now); v != RuleBusinessHours {
			t.Fatalf("%s: expected business hours violation, got %v", timeStr, v)
		}
	}
}

func TestCheckDateTime_Granularity(t *testing.T) {
	for _, timeStr := range []string{"09:15", "10:01", "14:45", "16:59"} {
		if v := CheckDateTime("21-08-2025", timeStr, now); v != RuleGranularity {
			t.Fatalf("%s: expected granularity violation, got %v", timeStr, v)
		}
	}
}

func TestCheckDateTime_DateFormat(t *testing.T) {
	for _, dateStr := range []string{"2025-08-21", "21/08/2025", "1-08-2025", "32-01-2026", "30-02-2026", "00-05-2026", "15-13-2025", "garbage"} {
		if v := CheckDateTime(dateStr, "10:00", now); v != RuleDateFormat {
			t.Fatalf("%q: expected date format violation, got %v", dateStr, v)
		}
	}
}

func TestCheckDateTime_DateInPast(t *testing.T) {
	if v := CheckDateTime("19-08-2025", "10:00", now); v != RuleDateInPast {
		t.Fatalf("expected past date violation, got %v", v)
	}
	// Same-day passes the date check; only the lead-time rule can reject it.
	if v := CheckDateTime("20-08-2025", "09:00", now); v != RuleLeadTime {
		t.Fatalf("expected lead time (not past date) for same-day morning, got %v", v)
	}
}

func TestCheckDateTime_TimeFormat(t *testing.T) {
	for _, timeStr := range []string{"9:5", "24:00", "12:60", "noon", "1230"} {
		if v := CheckDateTime("21-08-2025", timeStr, now); v != RuleTimeFormat {
			t.Fatalf("%q: expected time format violation, got %v", timeStr, v)
		}
	}
}

func TestParseDate_LeapYear(t *testing.T) {
	if _, ok := ParseDate("29-02-2028"); !ok {
		t.Fatal("29-02-2028 is a valid leap day")
	}
	if _, ok := ParseDate("29-02-2027"); ok {
		t.Fatal("29-02-2027 does not exist")
	}
}

func TestFormatForDisplay(t *testing.T) {
	if got := FormatDateForDisplay("15-08-2025"); got != "15 August 2025" {
		t.Fatalf("unexpected date display: %q", got)
	}
	if got := FormatTimeForDisplay("14:30"); got != "02:30 PM" {
		t.Fatalf("unexpected time display: %q", got)
	}
	if got := FormatTimeForDisplay("09:00"); got != "09:00 AM" {
		t.Fatalf("unexpected time display: %q", got)
	}
	// Unparseable input comes back untouched.
	if got := FormatDateForDisplay("soon"); got != "soon" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}
