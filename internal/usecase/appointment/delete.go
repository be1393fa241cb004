package appointment

import (
	"context"

	"github.com/BruksfildServices01/turnera/internal/audit"
	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentDeleted,
		Entity:   audit.EntityAppointment,
		EntityID: &id,
	})

	return nil
}
