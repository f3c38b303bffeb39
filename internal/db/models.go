package db

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment is the persisted booking record. Date and Time keep the
// wire formats the bot speaks (DD-MM-YYYY and HH:MM). Cancellation flips
// Status; nothing else changes after creation and rows are never deleted.
type Appointment struct {
	ID          int
	Name        string
	PhoneNumber string
	Date        string
	Time        string
	Status      string
	CreatedAt   time.Time
}
