package appointment

import "context"

// Repository é o armazenamento de turnos. O núcleo nunca o chama; ele é
// injetado nos casos de uso, que passam os dados já lidos ao núcleo.
type Repository interface {
	Create(
		ctx context.Context,
		ap *Appointment,
	) error

	List(
		ctx context.Context,
	) ([]Appointment, error)

	Get(
		ctx context.Context,
		id uint,
	) (*Appointment, error)

	// Update grava por cima (last write wins).
	Update(
		ctx context.Context,
		ap *Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
