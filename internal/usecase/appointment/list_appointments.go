package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

// ListAppointments devolve todos os turnos por (data, hora).
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]domain.Appointment, error) {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.Chronological(appointments), nil
}

// ListAppointmentsByPatient filtra pelo nome exato do paciente.
type ListAppointmentsByPatient struct {
	repo domain.Repository
}

func NewListAppointmentsByPatient(
	repo domain.Repository,
) *ListAppointmentsByPatient {
	return &ListAppointmentsByPatient{
		repo: repo,
	}
}

func (uc *ListAppointmentsByPatient) Execute(
	ctx context.Context,
	name string,
) ([]domain.Appointment, error) {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterByPatient(appointments, name), nil
}
