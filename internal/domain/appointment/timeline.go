package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/turnera/internal/domain/slot"
)

// SlotDuration é a duração de cada turno nas vistas de linha do tempo.
const SlotDuration = time.Hour

// Bar é uma barra do Gantt semanal / linha do tempo por paciente.
type Bar struct {
	AppointmentID uint      `json:"appointment_id"`
	Patient       string    `json:"patient"`
	Label         string    `json:"label"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
}

// Timeline converte os turnos legíveis em barras de uma hora, ordenadas por
// início.
func Timeline(appointments []Appointment) []Bar {
	bars := make([]Bar, 0, len(appointments))
	for _, ap := range appointments {
		norm, ok := ap.normalized()
		if !ok {
			continue
		}

		start, err := time.Parse(slot.DateLayout+" "+slot.TimeLayout, norm.key())
		if err != nil {
			continue
		}

		bars = append(bars, Bar{
			AppointmentID: norm.ID,
			Patient:       norm.PatientName,
			Label:         norm.PatientName + " - " + norm.Time,
			Start:         start,
			End:           start.Add(SlotDuration),
		})
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Start.Before(bars[j].Start)
	})
	return bars
}
