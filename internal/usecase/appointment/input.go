package appointment

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/httperr"
	"github.com/BruksfildServices01/turnera/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// AppointmentInput é o que chega do formulário de criação / edição.
type AppointmentInput struct {
	PatientName string
	Email       string
	Date        string
	Time        string
	Notes       string
}

// EmailPolicy vem da configuração (EMAIL_REQUIRED / EMAIL_CHECK_MX).
type EmailPolicy struct {
	Required    bool
	CheckDomain bool
}

// validate normaliza a entrada e devolve também o dia já interpretado.
// Hora ilegível é recusada: não existe hora padrão.
func validate(in AppointmentInput, policy EmailPolicy) (domain.Appointment, time.Time, error) {
	name := strings.TrimSpace(in.PatientName)
	if name == "" {
		return domain.Appointment{}, time.Time{}, httperr.ErrValidation("patient_name", "required", "")
	}

	day, err := slot.ParseDate(in.Date)
	if err != nil {
		return domain.Appointment{}, time.Time{}, err
	}

	hhmm, err := domain.NormalizeTime(in.Time)
	if err != nil {
		return domain.Appointment{}, time.Time{}, err
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "" && policy.Required:
		return domain.Appointment{}, time.Time{}, httperr.ErrValidation("email", "required", "")
	case email != "":
		if err := validators.ValidateEmail(email, policy.CheckDomain); err != nil {
			return domain.Appointment{}, time.Time{}, err
		}
	}

	return domain.Appointment{
		PatientName: name,
		Email:       email,
		Date:        day.Format(slot.DateLayout),
		Time:        hhmm,
		Notes:       strings.TrimSpace(in.Notes),
	}, day, nil
}

// Result acompanha a gravação com o aviso de conflito. O conflito nunca
// bloqueia.
type Result struct {
	Appointment domain.Appointment
	Conflict    bool
}
