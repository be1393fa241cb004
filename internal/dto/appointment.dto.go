package dto

import (
	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

type AppointmentDTO struct {
	ID          uint   `json:"id"`
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

// AppointmentWriteDTO é a resposta de criação / edição.
type AppointmentWriteDTO struct {
	Appointment AppointmentDTO `json:"appointment"`
	Conflict    bool           `json:"conflict"`
}

type ConflictDTO struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Conflict bool   `json:"conflict"`
}

type SelectionDTO struct {
	SessionID   string          `json:"session_id"`
	Selected    bool            `json:"selected"`
	Appointment *AppointmentDTO `json:"appointment,omitempty"`
}

func FromAppointment(ap domain.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          ap.ID,
		PatientName: ap.PatientName,
		Email:       ap.Email,
		Date:        ap.Date,
		Time:        ap.Time,
		Notes:       ap.Notes,
	}
}

func FromAppointments(aps []domain.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
