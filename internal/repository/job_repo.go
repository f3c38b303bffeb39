package repository

import (
	"database/sql"
	"fmt"

	"citabot/internal/db"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetConfirmedAppointmentsForDate returns the confirmed appointments on
// the given DD-MM-YYYY date, earliest first. Used by the reminder job.
func (r *JobRepository) GetConfirmedAppointmentsForDate(date string) ([]db.Appointment, error) {
	query := `
		SELECT id, name, phone_number, date, time, status, created_at
		FROM appointments
		WHERE date = $1 AND status = $2
		ORDER BY time`

	rows, err := r.DB.Query(query, date, db.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments for %s: %w", date, err)
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
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return appointments, nil
}
