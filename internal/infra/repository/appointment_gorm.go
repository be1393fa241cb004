package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toDomain(m models.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:          m.ID,
		PatientName: m.Paciente,
		Email:       m.Email,
		Date:        m.Fecha,
		Time:        m.Hora,
		Notes:       m.Observaciones,
	}
}

func toModel(ap *domain.Appointment) models.Appointment {
	return models.Appointment{
		ID:            ap.ID,
		Paciente:      ap.PatientName,
		Email:         ap.Email,
		Fecha:         ap.Date,
		Hora:          ap.Time,
		Observaciones: ap.Notes,
	}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *domain.Appointment,
) error {

	m := toModel(ap)
	m.ID = 0

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}

	ap.ID = m.ID
	return nil
}

// List devolve todas as linhas, inclusive as com data ou hora ilegível.
func (r *AppointmentGormRepository) List(
	ctx context.Context,
) ([]domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("fecha ASC").
		Order("hora ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomain(m))
	}
	return out, nil
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uint,
) (*domain.Appointment, error) {

	var m models.Appointment
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	ap := toDomain(m)
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *domain.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"paciente":      ap.PatientName,
			"email":         ap.Email,
			"fecha":         ap.Date,
			"hora":          ap.Time,
			"observaciones": ap.Notes,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
