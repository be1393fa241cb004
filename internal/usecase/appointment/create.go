package appointment

import (
	"context"

	"github.com/BruksfildServices01/turnera/internal/audit"
	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	policy EmailPolicy
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	policy EmailPolicy,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		policy: policy,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in AppointmentInput,
) (*Result, error) {

	// --------------------------------------------------
	// 1️⃣ Validação / normalização
	// --------------------------------------------------
	ap, day, err := validate(in, uc.policy)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Conflito (só aviso)
	// --------------------------------------------------
	existing, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	conflict := domain.WouldConflict(existing, day, ap.Time)

	// --------------------------------------------------
	// 3️⃣ Gravação
	// --------------------------------------------------
	if err := uc.repo.Create(ctx, &ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
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
