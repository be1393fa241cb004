package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
)

// CheckConflict responde se (date, time) já está ocupado, antes de gravar.
type CheckConflict struct {
	repo domain.Repository
}

func NewCheckConflict(
	repo domain.Repository,
) *CheckConflict {
	return &CheckConflict{
		repo: repo,
	}
}

func (uc *CheckConflict) Execute(
	ctx context.Context,
	date string,
	hhmm string,
	ignore ...uint,
) (bool, error) {

	day, err := slot.ParseDate(date)
	if err != nil {
		return false, err
	}

	t, err := domain.NormalizeTime(hhmm)
	if err != nil {
		return false, err
	}

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return false, err
	}

	return domain.WouldConflict(appointments, day, t, ignore...), nil
}
