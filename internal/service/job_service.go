package service

import (
	"fmt"
	"log"

	"citabot/internal/bot"
	"citabot/internal/repository"
)

type JobService struct {
	Repo  *repository.JobRepository
	clock bot.Clock
}

func NewJobService(repo *repository.JobRepository, clock bot.Clock) *JobService {
	return &JobService{Repo: repo, clock: clock}
}

// SendUpcomingReminders messages every contact holding a confirmed
// appointment tomorrow. Individual delivery failures are logged and do
// not stop the run.
func (s *JobService) SendUpcomingReminders() error {
	tomorrow := s.clock.Now().AddDate(0, 0, 1).Format(bot.DateLayout)

	appointments, err := s.Repo.GetConfirmedAppointmentsForDate(tomorrow)
	if err != nil {
		return fmt.Errorf("reminder job: failed to load appointments for %s: %w", tomorrow, err)
	}
	if len(appointments) == 0 {
		log.Println("Reminder job: no confirmed appointments for tomorrow.")
		return nil
	}

	log.Printf("Reminder job: sending %d reminders for %s", len(appointments), tomorrow)
	for _, apt := range appointments {
		msg := fmt.Sprintf(
			"Reminder: %s, your appointment is tomorrow, %s at %s.\nReply \"Cancel %s %s\" if you can no longer make it.",
			apt.Name,
			bot.FormatDateForDisplay(apt.Date),
			bot.FormatTimeForDisplay(apt.Time),
			apt.Date, apt.Time,
		)
		if err := SendWhatsAppMessage(apt.PhoneNumber, msg); err != nil {
			log.Printf("Reminder job: failed to remind %s about %s %s: %v", apt.PhoneNumber, apt.Date, apt.Time, err)
		}
	}
	return nil
}
