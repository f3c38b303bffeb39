package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"citabot/internal/db"

	"github.com/lib/pq"
)

var (
	// ErrSlotTaken reports that another confirmed appointment already
	// holds the slot, including the case where a concurrent writer won
	// the race between the availability check and the insert.
	ErrSlotTaken = errors.New("slot already booked")

	ErrAppointmentNotFound = errors.New("appointment not found")
)

const uniqueViolation = pq.ErrorCode("23505")

// AppointmentStore is the persistence contract the booking engine
// consumes. Implementations must guarantee at most one confirmed
// appointment per (date, time) even under concurrent callers; Create
// returns ErrSlotTaken when that invariant would be broken.
type AppointmentStore interface {
	IsSlotAvailable(date, timeStr string, excludeID int) (bool, error)
	FindConfirmedAppointment(phone, date, timeStr string) (*db.Appointment, error)
	ListConfirmedForPhone(phone string) ([]db.Appointment, error)
	Create(apt *db.Appointment) error
	MarkCancelled(id int) error
}

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

// IsSlotAvailable reports whether no confirmed appointment occupies the
// exact (date, time). Pass excludeID > 0 to ignore one appointment, e.g.
// when rescheduling must not conflict with itself.
func (r *AppointmentRepository) IsSlotAvailable(date, timeStr string, excludeID int) (bool, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE date = $1 AND time = $2 AND status = $3`
	args := []interface{}{date, timeStr, db.StatusConfirmed}
	if excludeID > 0 {
		query += ` AND id <> $4`
		args = append(args, excludeID)
	}

	var count int
	if err := r.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("error checking slot availability: %w", err)
	}
	return count == 0, nil
}

func (r *AppointmentRepository) FindConfirmedAppointment(phone, date, timeStr string) (*db.Appointment, error) {
	query := `
		SELECT id, name, phone_number, date, time, status, created_at
		FROM appointments
		WHERE phone_number = $1 AND date = $2 AND time = $3 AND status = $4`

	var apt db.Appointment
	err := r.DB.QueryRow(query, phone, date, timeStr, db.StatusConfirmed).Scan(
		&apt.ID, &apt.Name, &apt.PhoneNumber, &apt.Date, &apt.Time, &apt.Status, &apt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}
	return &apt, nil
}

// ListConfirmedForPhone returns the contact's confirmed appointments
// ordered by date then time ascending. The date column holds DD-MM-YYYY
// strings, so ordering goes through to_date rather than text collation.
func (r *AppointmentRepository) ListConfirmedForPhone(phone string) ([]db.Appointment, error) {
	query := `
		SELECT id, name, phone_number, date, time, status, created_at
		FROM appointments
		WHERE phone_number = $1 AND status = $2
		ORDER BY to_date(date, 'DD-MM-YYYY'), time`

	rows, err := r.DB.Query(query, phone, db.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer rows.Close()

	var appointments []db.Appointment
	for rows.Next() {
		var apt db.Appointment
		if err := rows.Scan(&apt.ID, &apt.Name, &apt.PhoneNumber, &apt.Date, &apt.Time, &apt.Status, &apt.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning appointment: %w", err)
		}
		appointments = append(appointments, apt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating appointment rows: %w", err)
	}
	return appointments, nil
}

// Create inserts the appointment and fills in its assigned ID and
// creation timestamp. The partial unique index on confirmed (date, time)
// is the backstop for the check-then-insert race; its violation comes
// back as ErrSlotTaken.
func (r *AppointmentRepository) Create(apt *db.Appointment) error {
	query := `
		INSERT INTO appointments (name, phone_number, date, time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.DB.QueryRow(query,
		apt.Name, apt.PhoneNumber, apt.Date, apt.Time, apt.Status, apt.CreatedAt,
	).Scan(&apt.ID, &apt.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// MarkCancelled transitions a confirmed appointment to cancelled. The row
// is kept; cancellation only frees the slot.
func (r *AppointmentRepository) MarkCancelled(id int) error {
	result, err := r.DB.Exec(
		`UPDATE appointments SET status = $1 WHERE id = $2 AND status = $3`,
		db.StatusCancelled, id, db.StatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("error cancelling appointment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading cancellation result: %w", err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// ListAppointments backs the admin dashboard: optional date and status
// filters, newest first.
func (r *AppointmentRepository) ListAppointments(date, status string, limit, offset int) ([]db.Appointment, int64, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		where += ` AND date = $` + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if status != "" {
		where += ` AND status = $` + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}

	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM appointments`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting appointments: %w", err)
	}

	query := `
		SELECT id, name, phone_number, date, time, status, created_at
		FROM appointments` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(idx) + ` OFFSET $` + strconv.Itoa(idx+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing appointments: %w", err)
	}
	defer rows.Close()

	var appointments []db.Appointment
	for rows.Next() {
		var apt db.Appointment
		if err := rows.Scan(&apt.ID, &apt.Name, &apt.PhoneNumber, &apt.Date, &apt.Time, &apt.Status, &apt.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning appointment: %w", err)
		}
		appointments = append(appointments, apt)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error after iterating appointment rows: %w", err)
	}
	return appointments, total, nil
}
