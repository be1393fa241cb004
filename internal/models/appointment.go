package models

import "time"

// Appointment é a linha da tabela turnos. fecha e hora são texto livre:
// linhas antigas podem trazer segundos ou espaços.
type Appointment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Paciente      string `gorm:"column:paciente;type:text" json:"paciente"`
	Email         string `gorm:"column:email;type:text" json:"email"`
	Fecha         string `gorm:"column:fecha;type:text;index" json:"fecha"`
	Hora          string `gorm:"column:hora;type:text" json:"hora"`
	Observaciones string `gorm:"column:observaciones;type:text" json:"observaciones"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "turnos"
}
