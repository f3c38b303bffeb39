package service

import (
	"fmt"

	"citabot/internal/bot"
	"citabot/internal/entities"
	"citabot/internal/repository"
)

// searchWindowDays bounds the forward search: the candidate date plus the
// six following calendar days.
const searchWindowDays = 7

// SlotSearcher finds the nearest free slot after a booking collision. It
// only reads from the store; booking the suggestion is the user's call.
type SlotSearcher struct {
	Store repository.AppointmentStore
}

func NewSlotSearcher(store repository.AppointmentStore) *SlotSearcher {
	return &SlotSearcher{Store: store}
}

// FindNextAvailableSlot scans forward from the candidate date and returns
// the first free slot, or nil when the whole window is booked out. The
// scan probes on-the-hour starts only (9:00..16:00) and rescans each day
// from opening time, including the candidate's own day; the requested
// time does not constrain it.
//
// The hourly probe is coarser than the half-hour booking granularity, so
// half-past slots are never suggested even when free. Known discrepancy,
// kept pending product sign-off.
func (s *SlotSearcher) FindNextAvailableSlot(date, timeStr string) (*entities.Slot, error) {
	start, ok := bot.ParseDate(date)
	if !ok {
		return nil, fmt.Errorf("invalid candidate date %q", date)
	}

	for offset := 0; offset < searchWindowDays; offset++ {
		day := start.AddDate(0, 0, offset).Format(bot.DateLayout)
		for hour := bot.OpenHour; hour < bot.CloseHour; hour++ {
			probe := fmt.Sprintf("%02d:00", hour)
			free, err := s.Store.IsSlotAvailable(day, probe, 0)
			if err != nil {
				return nil, fmt.Errorf("error probing slot %s %s: %w", day, probe, err)
			}
			if free {
				return &entities.Slot{Date: day, Time: probe}, nil
			}
		}
	}
	return nil, nil
}
