package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

// GetTimeline gera as barras do Gantt; com patient, só as daquele paciente.
type GetTimeline struct {
	repo domain.Repository
}

func NewGetTimeline(
	repo domain.Repository,
) *GetTimeline {
	return &GetTimeline{
		repo: repo,
	}
}

func (uc *GetTimeline) Execute(
	ctx context.Context,
	patient string,
) ([]domain.Bar, error) {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if patient != "" {
		appointments = domain.FilterByPatient(appointments, patient)
	}

	return domain.Timeline(appointments), nil
}
