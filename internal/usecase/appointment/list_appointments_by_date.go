package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]domain.Appointment, error) {

	day, err := slot.ParseDate(date)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return domain.FilterByDate(appointments, day), nil
}
