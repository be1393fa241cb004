package appointment

import (
	"net/http"

	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// Appointment é a ocupação de um slot por um paciente. Date e Time guardam o
// texto como veio do armazenamento; o núcleo normaliza na leitura.
type Appointment struct {
	ID          uint   `json:"id"`
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

var ErrNotFound = httperr.NewBusiness("appointment_not_found", http.StatusNotFound, "Turno no encontrado.")

// ===============================
// Normalized view
// ===============================

// normalized devolve uma cópia com data e hora canônicas.
func (a Appointment) normalized() (Appointment, bool) {
	d, err := NormalizeDate(a.Date)
	if err != nil {
		return a, false
	}
	t, err := NormalizeTime(a.Time)
	if err != nil {
		return a, false
	}
	a.Date = d
	a.Time = t
	return a, true
}

func (a Appointment) key() string {
	return a.Date + " " + a.Time
}
