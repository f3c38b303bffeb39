package entities

import (
	"time"

	"citabot/internal/db"
)

type AppointmentResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AppointmentsList struct {
	Total        int64                 `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	Appointments []AppointmentResponse `json:"appointments"`
}

func AppointmentToResponse(apt db.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          apt.ID,
		Name:        apt.Name,
		PhoneNumber: apt.PhoneNumber,
		Date:        apt.Date,
		Time:        apt.Time,
		Status:      apt.Status,
		CreatedAt:   apt.CreatedAt,
	}
}
