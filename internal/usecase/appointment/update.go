package appointment

import (
	"context"

	"github.com/BruksfildServices01/turnera/internal/audit"
	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

// UpdateAppointment substitui todos os campos do turno (last write wins).
type UpdateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	policy EmailPolicy
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	policy EmailPolicy,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		audit:  audit,
		policy: policy,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in AppointmentInput,
) (*Result, error) {

	if _, err := uc.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	ap, day, err := validate(in, uc.policy)
	if err != nil {
		return nil, err
	}
	ap.ID = id

	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// o próprio turno não conta como conflito
	conflict := domain.WouldConflict(existing, day, ap.Time, id)

	if err := uc.repo.Update(ctx, &ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentUpdated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":     ap.Date,
			"time":     ap.Time,
			"conflict": conflict,
		},
	})

	return &Result{Appointment: ap, Conflict: conflict}, nil
}
