package service

import (
	"citabot/internal/entities"
	"citabot/internal/repository"
)

type AdminService struct {
	Repo *repository.AppointmentRepository
}

func NewAdminService(repo *repository.AppointmentRepository) *AdminService {
	return &AdminService{Repo: repo}
}

// ListAppointments returns a filtered, paginated appointment listing for
// the dashboard.
func (s *AdminService) ListAppointments(date, status string, limit, offset int) (*entities.AppointmentsList, error) {
	appointments, total, err := s.Repo.ListAppointments(date, status, limit, offset)
	if err != nil {
		return nil, err
	}

	list := &entities.AppointmentsList{
		Total:        total,
		Limit:        limit,
		Offset:       offset,
		Appointments: []entities.AppointmentResponse{},
	}
	for _, apt := range appointments {
		list.Appointments = append(list.Appointments, entities.AppointmentToResponse(apt))
	}
	return list, nil
}
