package appointment

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

// ---------- Helper ----------

type memRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []domain.Appointment
}

func newMemRepo(seed ...domain.Appointment) *memRepo {
	r := &memRepo{}
	for _, ap := range seed {
		if ap.ID > r.nextID {
			r.nextID = ap.ID
		}
		r.rows = append(r.rows, ap)
	}
	return r
}

func (r *memRepo) Create(_ context.Context, ap *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ap.ID = r.nextID
	r.rows = append(r.rows, *ap)
	return nil
}

func (r *memRepo) List(_ context.Context) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.Appointment(nil), r.rows...), nil
}

func (r *memRepo) Get(_ context.Context, id uint) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.rows {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) Update(_ context.Context, ap *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == ap.ID {
			r.rows[i] = *ap
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ domain.Repository = (*memRepo)(nil)
