package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/session"
)

// Selection é o turno escolhido numa sessão de edição. Appointment é nil
// quando nada está selecionado.
type Selection struct {
	SessionID   string
	Appointment *domain.Appointment
}

type ManageSelection struct {
	repo  domain.Repository
	store session.Store
}

func NewManageSelection(
	repo domain.Repository,
	store session.Store,
) *ManageSelection {
	return &ManageSelection{
		repo:  repo,
		store: store,
	}
}

// Get resolve o id guardado contra os turnos atuais. Se o turno foi apagado
// a seleção é limpa.
func (uc *ManageSelection) Get(
	ctx context.Context,
	sid string,
) (*Selection, error) {

	if err := session.ValidateID(sid); err != nil {
		return nil, err
	}

	id, ok, err := uc.store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	sel := &Selection{SessionID: sid}
	if !ok {
		return sel, nil
	}

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	ap, found := domain.FindByID(appointments, id)
	if !found {
		if err := uc.store.Clear(ctx, sid); err != nil {
			return nil, err
		}
		return sel, nil
	}

	sel.Appointment = &ap
	return sel, nil
}

func (uc *ManageSelection) Select(
	ctx context.Context,
	sid string,
	id uint,
) (*Selection, error) {

	if err := session.ValidateID(sid); err != nil {
		return nil, err
	}

	ap, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Set(ctx, sid, id); err != nil {
		return nil, err
	}

	return &Selection{SessionID: sid, Appointment: ap}, nil
}

func (uc *ManageSelection) Clear(
	ctx context.Context,
	sid string,
) error {

	if err := session.ValidateID(sid); err != nil {
		return err
	}
	return uc.store.Clear(ctx, sid)
}
