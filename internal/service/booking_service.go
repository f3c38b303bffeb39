package service

import (
	"errors"

	"citabot/internal/bot"
	"citabot/internal/db"
	"citabot/internal/entities"
	"citabot/internal/repository"
)

// BookingService composes the parser, the time rules, the slot search and
// the store into the bot's three user-facing operations. Results cover
// everything a user can cause; only store failures surface as errors.
type BookingService struct {
	store    repository.AppointmentStore
	searcher *SlotSearcher
	clock    bot.Clock
	notifier *NotifyService
}

// NewBookingService wires the engine. notifier may be nil to disable
// owner notifications (tests do this).
func NewBookingService(store repository.AppointmentStore, clock bot.Clock, notifier *NotifyService) *BookingService {
	return &BookingService{
		store:    store,
		searcher: NewSlotSearcher(store),
		clock:    clock,
		notifier: notifier,
	}
}

// HandleMessage interprets one inbound message and runs the matching
// operation. This is the webhook's entry point.
func (s *BookingService) HandleMessage(text, phone string) (*entities.BotResult, error) {
	intent := bot.ParseMessage(text)
	switch intent.Kind {
	case bot.IntentViewAppointments:
		return s.ListAppointments(phone)
	case bot.IntentCancel:
		return s.cancelSlot(intent.Date, intent.Time, phone)
	case bot.IntentBook:
		return s.bookSlot(intent.Name, intent.Date, intent.Time, phone)
	case bot.IntentHelp:
		return &entities.BotResult{Outcome: entities.OutcomeHelp}, nil
	default:
		return &entities.BotResult{Outcome: entities.OutcomeUnknown}, nil
	}
}

// Book extracts booking details from free-form text and books the slot.
func (s *BookingService) Book(text, phone string) (*entities.BotResult, error) {
	name, date, timeStr := bot.ExtractBookingDetails(text)
	return s.bookSlot(name, date, timeStr, phone)
}

// Cancel extracts a (date, time) from free-form text and cancels the
// contact's confirmed appointment at that slot.
func (s *BookingService) Cancel(text, phone string) (*entities.BotResult, error) {
	date, timeStr := bot.ParseCancelMessage(text)
	return s.cancelSlot(date, timeStr, phone)
}

// ListAppointments returns the contact's confirmed appointments.
func (s *BookingService) ListAppointments(phone string) (*entities.BotResult, error) {
	appointments, err := s.store.ListConfirmedForPhone(phone)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return &entities.BotResult{Outcome: entities.OutcomeEmpty, Op: entities.OpList}, nil
	}
	return &entities.BotResult{
		Outcome:      entities.OutcomeList,
		Op:           entities.OpList,
		Appointments: appointments,
	}, nil
}

func (s *BookingService) bookSlot(name, date, timeStr, phone string) (*entities.BotResult, error) {
	if name == "" || date == "" || timeStr == "" {
		return &entities.BotResult{Outcome: entities.OutcomeNeedClarification, Op: entities.OpBook}, nil
	}

	now := s.clock.Now()
	if v := bot.CheckDateTime(date, timeStr, now); v != bot.RuleNone {
		return &entities.BotResult{
			Outcome:   entities.OutcomeInvalid,
			Op:        entities.OpBook,
			Name:      name,
			Date:      date,
			Time:      timeStr,
			Violation: v,
		}, nil
	}

	free, err := s.store.IsSlotAvailable(date, timeStr, 0)
	if err != nil {
		return nil, err
	}
	if !free {
		return s.resolveConflict(name, date, timeStr)
	}

	apt := &db.Appointment{
		Name:        name,
		PhoneNumber: phone,
		Date:        date,
		Time:        timeStr,
		Status:      db.StatusConfirmed,
		CreatedAt:   now.UTC(),
	}
	if err := s.store.Create(apt); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			// A concurrent booking won the slot between the check and
			// the insert; resolve it like any other collision.
			return s.resolveConflict(name, date, timeStr)
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.AppointmentBooked(apt)
	}
	return &entities.BotResult{
		Outcome:     entities.OutcomeConfirmed,
		Op:          entities.OpBook,
		Name:        name,
		Date:        date,
		Time:        timeStr,
		Appointment: apt,
	}, nil
}

func (s *BookingService) resolveConflict(name, date, timeStr string) (*entities.BotResult, error) {
	alt, err := s.searcher.FindNextAvailableSlot(date, timeStr)
	if err != nil {
		return nil, err
	}

	res := &entities.BotResult{Op: entities.OpBook, Name: name, Date: date, Time: timeStr}
	if alt == nil {
		res.Outcome = entities.OutcomeConflictExhausted
		return res, nil
	}
	res.Outcome = entities.OutcomeConflictAlternative
	res.Alternative = alt
	return res, nil
}

func (s *BookingService) cancelSlot(date, timeStr, phone string) (*entities.BotResult, error) {
	if date == "" || timeStr == "" {
		return &entities.BotResult{Outcome: entities.OutcomeNeedClarification, Op: entities.OpCancel}, nil
	}

	apt, err := s.store.FindConfirmedAppointment(phone, date, timeStr)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return &entities.BotResult{
				Outcome: entities.OutcomeNotFound,
				Op:      entities.OpCancel,
				Date:    date,
				Time:    timeStr,
			}, nil
		}
		return nil, err
	}

	if err := s.store.MarkCancelled(apt.ID); err != nil {
		return nil, err
	}
	apt.Status = db.StatusCancelled

	if s.notifier != nil {
		s.notifier.AppointmentCancelled(apt)
	}
	return &entities.BotResult{
		Outcome:     entities.OutcomeCancelled,
		Op:          entities.OpCancel,
		Name:        apt.Name,
		Date:        date,
		Time:        timeStr,
		Appointment: apt,
	}, nil
}
