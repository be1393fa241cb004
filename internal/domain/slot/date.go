package slot

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// ParseDate interpreta uma data "YYYY-MM-DD" estrita e devolve a meia-noite UTC
// correspondente. Espaços nas pontas são tolerados.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, httperr.ErrValidation("date", "invalid_date", s)
	}
	return d, nil
}

// Civil descarta hora e fuso, mantendo só o dia do calendário.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf devolve a segunda-feira igual ou anterior a d (segunda = 0).
func MondayOf(d time.Time) time.Time {
	d = Civil(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
