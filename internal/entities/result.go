package entities

import (
	"citabot/internal/bot"
	"citabot/internal/db"
)

// Outcome is the discriminant of a BotResult. Every outcome maps to
// exactly one reply category; the transport layer owns the prose.
type Outcome string

const (
	OutcomeNeedClarification   Outcome = "need_clarification"
	OutcomeInvalid             Outcome = "invalid"
	OutcomeConfirmed           Outcome = "confirmed"
	OutcomeConflictAlternative Outcome = "conflict_alternative"
	OutcomeConflictExhausted   Outcome = "conflict_exhausted"
	OutcomeList                Outcome = "list"
	OutcomeEmpty               Outcome = "empty"
	OutcomeNotFound            Outcome = "not_found"
	OutcomeCancelled           Outcome = "cancelled"
	OutcomeHelp                Outcome = "help"
	OutcomeUnknown             Outcome = "unknown"
)

// Op names the operation a result belongs to, so clarification replies
// can point at the right command format.
type Op string

const (
	OpBook   Op = "book"
	OpCancel Op = "cancel"
	OpList   Op = "list"
)

// Slot is a bookable (date, time) pair at the wire formats.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// BotResult is what the booking engine hands back for rendering. Which
// fields are set depends on Outcome: Violation accompanies OutcomeInvalid,
// Alternative accompanies OutcomeConflictAlternative, Appointment the
// confirmed/cancelled outcomes and Appointments the list outcome.
type BotResult struct {
	Outcome      Outcome
	Op           Op
	Name         string
	Date         string
	Time         string
	Violation    bot.RuleViolation
	Alternative  *Slot
	Appointment  *db.Appointment
	Appointments []db.Appointment
}
