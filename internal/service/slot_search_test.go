package service

import (
	"fmt"
	"testing"

	"citabot/internal/bot"
	"citabot/internal/db"
)

// occupySlot plants a confirmed appointment directly in the fake store.
func occupySlot(store *fakeStore, date, timeStr string) {
	store.appointments = append(store.appointments, db.Appointment{
		ID:          store.nextID,
		Name:        "Taken",
		PhoneNumber: "whatsapp:+000",
		Date:        date,
		Time:        timeStr,
		Status:      db.StatusConfirmed,
	})
	store.nextID++
}

// occupyBusinessDay books every on-the-hour slot of the date.
func occupyBusinessDay(store *fakeStore, date string) {
	for hour := bot.OpenHour; hour < bot.CloseHour; hour++ {
		occupySlot(store, date, fmt.Sprintf("%02d:00", hour))
	}
}

func dayOffset(base string, days int) string {
	d, _ := bot.ParseDate(base)
	return d.AddDate(0, 0, days).Format(bot.DateLayout)
}

func TestFindNextAvailableSlot_RescansCandidateDayFromOpening(t *testing.T) {
	store := newFakeStore()
	occupySlot(store, "20-08-2025", "14:00")

	searcher := NewSlotSearcher(store)
	slot, err := searcher.FindNextAvailableSlot("20-08-2025", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot == nil {
		t.Fatal("expected a slot")
	}
	// The scan starts at opening time, not after the requested slot.
	if slot.Date != "20-08-2025" || slot.Time != "09:00" {
		t.Fatalf("expected 20-08-2025 09:00, got %s %s", slot.Date, slot.Time)
	}
}

func TestFindNextAvailableSlot_RollsToNextDay(t *testing.T) {
	store := newFakeStore()
	occupyBusinessDay(store, "20-08-2025")

	searcher := NewSlotSearcher(store)
	slot, err := searcher.FindNextAvailableSlot("20-08-2025", "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot == nil {
		t.Fatal("expected a slot")
	}
	if slot.Date != "21-08-2025" || slot.Time != "09:00" {
		t.Fatalf("expected 21-08-2025 09:00, got %s %s", slot.Date, slot.Time)
	}
}

func TestFindNextAvailableSlot_CrossesMonthBoundary(t *testing.T) {
	store := newFakeStore()
	occupyBusinessDay(store, "31-08-2025")

	searcher := NewSlotSearcher(store)
	slot, err := searcher.FindNextAvailableSlot("31-08-2025", "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot == nil {
		t.Fatal("expected a slot")
	}
	if slot.Date != "01-09-2025" || slot.Time != "09:00" {
		t.Fatalf("expected 01-09-2025 09:00, got %s %s", slot.Date, slot.Time)
	}
}

func TestFindNextAvailableSlot_IgnoresHalfHourBookings(t *testing.T) {
	store := newFakeStore()
	// Half-past bookings do not occupy the on-the-hour probes.
	occupySlot(store, "20-08-2025", "09:30")
	occupySlot(store, "20-08-2025", "09:00")

	searcher := NewSlotSearcher(store)
	slot, err := searcher.FindNextAvailableSlot("20-08-2025", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot == nil || slot.Time != "10:00" {
		t.Fatalf("expected 10:00, got %+v", slot)
	}
}

func TestFindNextAvailableSlot_Exhaustion(t *testing.T) {
	store := newFakeStore()
	for offset := 0; offset < 7; offset++ {
		occupyBusinessDay(store, dayOffset("20-08-2025", offset))
	}

	searcher := NewSlotSearcher(store)
	slot, err := searcher.FindNextAvailableSlot("20-08-2025", "12:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot != nil {
		t.Fatalf("expected exhaustion, got %s %s", slot.Date, slot.Time)
	}

	// Freeing one probe inside the window makes it the answer again.
	day6 := dayOffset("20-08-2025", 6)
	if err := store.MarkCancelled(findSlotID(store, day6, "16:00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slot, err = searcher.FindNextAvailableSlot("20-08-2025", "12:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot == nil || slot.Date != day6 || slot.Time != "16:00" {
		t.Fatalf("expected %s 16:00, got %+v", day6, slot)
	}
}

func TestFindNextAvailableSlot_DoesNotSearchPastWindow(t *testing.T) {
	store := newFakeStore()
	for offset := 0; offset < 8; offset++ {
		occupyBusinessDay(store, dayOffset("20-08-2025", offset))
	}
	// Day 7 is outside the window even if free.
	day7 := dayOffset("20-08-2025", 7)
	for i := range store.appointments {
		if store.appointments[i].Date == day7 {
			store.appointments[i].Status = db.StatusCancelled
		}
	}

	searcher := NewSlotSearcher(store)
	slot, err := searcher.FindNextAvailableSlot("20-08-2025", "12:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot != nil {
		t.Fatalf("window is 7 days, got %s %s", slot.Date, slot.Time)
	}
}

func TestFindNextAvailableSlot_InvalidDate(t *testing.T) {
	searcher := NewSlotSearcher(newFakeStore())
	if _, err := searcher.FindNextAvailableSlot("not-a-date", "12:00"); err == nil {
		t.Fatal("expected error for invalid candidate date")
	}
}

func findSlotID(store *fakeStore, date, timeStr string) int {
	for _, apt := range store.appointments {
		if apt.Date == date && apt.Time == timeStr && apt.Status == db.StatusConfirmed {
			return apt.ID
		}
	}
	return 0
}
