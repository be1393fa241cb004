package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(
	repo domain.Repository,
) *GetAppointment {
	return &GetAppointment{
		repo: repo,
	}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*domain.Appointment, error) {
	return uc.repo.Get(ctx, id)
}
